package estimator

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

var (
	ErrNegativeAmount        = eris.New("amount must be non-negative")
	ErrFaultOutOfRange       = eris.New("fault percent must be between 0 and 100")
	ErrUnknownSeverity       = eris.New("unknown injury severity")
	ErrUnknownLocation       = eris.New("unknown accident location")
	ErrInvalidLiabilityLimit = eris.New("liability limit must be positive")
	ErrUnknownInjury         = eris.New("unknown injury type")
)

// Violation codes, reported alongside calculation messages.
const (
	CodeNegativeAmount        = "NEGATIVE_AMOUNT"
	CodeFaultOutOfRange       = "FAULT_OUT_OF_RANGE"
	CodeUnknownSeverity       = "UNKNOWN_SEVERITY"
	CodeUnknownLocation       = "UNKNOWN_LOCATION"
	CodeInvalidLiabilityLimit = "INVALID_LIABILITY_LIMIT"
	CodeUnknownInjury         = "UNKNOWN_INJURY"
)

// Violation is a single rejected input field. It unwraps to one of the
// package's sentinel errors.
type Violation struct {
	Field string
	Code  string
	Err   error
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Err.Error())
}

func (v Violation) Unwrap() error {
	return v.Err
}

func checkAmount(field string, v float64) *Violation {
	if v < 0 || math.IsNaN(v) {
		return &Violation{Field: field, Code: CodeNegativeAmount, Err: ErrNegativeAmount}
	}
	return nil
}

func checkFault(v float64) *Violation {
	if v < 0 || v > 100 || math.IsNaN(v) {
		return &Violation{Field: "faultPercent", Code: CodeFaultOutOfRange, Err: ErrFaultOutOfRange}
	}
	return nil
}

func collect(checks ...*Violation) []Violation {
	var out []Violation
	for _, c := range checks {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// Violations lists every field of the input that strict mode would reject.
func (in SettlementInput) Violations() []Violation {
	var sev, loc *Violation
	if !in.Severity.Valid() {
		sev = &Violation{Field: "severity", Code: CodeUnknownSeverity, Err: ErrUnknownSeverity}
	}
	if _, ok := LocationFactor(in.Location); !ok {
		loc = &Violation{Field: "location", Code: CodeUnknownLocation, Err: ErrUnknownLocation}
	}
	return collect(
		checkAmount("medicalExpenses", in.MedicalExpenses),
		checkAmount("lostWages", in.LostWages),
		checkFault(in.FaultPercent),
		sev,
		loc,
	)
}

// Validate returns the first violation, or nil.
func (in SettlementInput) Validate() error {
	if vs := in.Violations(); len(vs) > 0 {
		return vs[0]
	}
	return nil
}

// Sanitize maps the input into the domain the formula assumes, the way the
// settlement form does: amounts floored at 0, fault clamped to [0,100] and an
// unknown tier replaced with DefaultSeverity. Unknown locations are left as is
// because the formula already treats them as neutral.
func (in SettlementInput) Sanitize() SettlementInput {
	in.MedicalExpenses = nonNegative(in.MedicalExpenses)
	in.LostWages = nonNegative(in.LostWages)
	in.FaultPercent = clampFault(in.FaultPercent)
	if !in.Severity.Valid() {
		in.Severity = DefaultSeverity
	}
	return in
}

// Violations lists every field of the input that strict mode would reject.
func (in InsuranceInput) Violations() []Violation {
	var limit *Violation
	if !(in.LiabilityLimit > 0) {
		limit = &Violation{Field: "liabilityLimit", Code: CodeInvalidLiabilityLimit, Err: ErrInvalidLiabilityLimit}
	}
	return collect(
		checkAmount("medicalExpenses", in.MedicalExpenses),
		checkAmount("propertyDamage", in.PropertyDamage),
		checkFault(in.FaultPercent),
		limit,
	)
}

// Validate returns the first violation, or nil.
func (in InsuranceInput) Validate() error {
	if vs := in.Violations(); len(vs) > 0 {
		return vs[0]
	}
	return nil
}

// Sanitize floors amounts at 0, clamps fault to [0,100] and falls back to
// DefaultLiabilityLimit when no usable limit was given.
func (in InsuranceInput) Sanitize() InsuranceInput {
	in.MedicalExpenses = nonNegative(in.MedicalExpenses)
	in.PropertyDamage = nonNegative(in.PropertyDamage)
	in.FaultPercent = clampFault(in.FaultPercent)
	if !(in.LiabilityLimit > 0) {
		in.LiabilityLimit = DefaultLiabilityLimit
	}
	return in
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func clampFault(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

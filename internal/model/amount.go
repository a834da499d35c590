package model

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"

	"slipfall-engine/internal/estimator"
)

// Amount is a dollar figure that accepts either a JSON number or the text a
// user typed into a form field ("15,000", "$2,500"). Text goes through
// estimator.ParseAmount, so anything unparseable becomes 0.
type Amount struct {
	Value float64
	Set   bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount{Value: estimator.ParseAmount(s), Set: s != ""}
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*a = Amount{Value: v, Set: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, a.Value, 'f', -1, 64), nil
}

// Or returns the amount, or def when it was never given.
func (a Amount) Or(def float64) float64 {
	if !a.Set {
		return def
	}
	return a.Value
}

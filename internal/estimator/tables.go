package estimator

// Severity is an injury severity tier.
type Severity string

const (
	SeverityMinor        Severity = "minor"
	SeverityModerate     Severity = "moderate"
	SeveritySevere       Severity = "severe"
	SeverityCatastrophic Severity = "catastrophic"
)

// DefaultSeverity is used when a tier is missing or unrecognized in lenient mode.
const DefaultSeverity = SeverityModerate

// Severities lists the tiers from least to most serious.
var Severities = []Severity{SeverityMinor, SeverityModerate, SeveritySevere, SeverityCatastrophic}

// LocationKey names an accident location category.
type LocationKey string

const (
	LocationGrocery        LocationKey = "grocery"
	LocationRestaurant     LocationKey = "restaurant"
	LocationRetail         LocationKey = "retail"
	LocationWorkplace      LocationKey = "workplace"
	LocationPublicProperty LocationKey = "publicProperty"
	LocationResidential    LocationKey = "residential"
	LocationParking        LocationKey = "parking"
	LocationStairs         LocationKey = "stairs"
	LocationSidewalk       LocationKey = "sidewalk"
)

// DefaultLocation is the location preselected on the settlement form.
const DefaultLocation = LocationRetail

// Multiplier is a pain-and-suffering multiplier band applied to medical expenses.
type Multiplier struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Range is an inclusive dollar range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the rounded average of the range bounds.
func (r Range) Midpoint() float64 {
	return Round((r.Min + r.Max) / 2)
}

var multipliers = map[Severity]Multiplier{
	SeverityMinor:        {Min: 1.5, Max: 3, Avg: 2},  // bruises, minor sprains
	SeverityModerate:     {Min: 3, Max: 5, Avg: 4},    // fractures, ligament tears
	SeveritySevere:       {Min: 5, Max: 10, Avg: 7},   // surgery, long recovery
	SeverityCatastrophic: {Min: 10, Max: 20, Avg: 15}, // TBI, spinal injury, permanent disability
}

var locationFactors = map[LocationKey]float64{
	LocationGrocery:        1.1, // higher insurance limits
	LocationRestaurant:     1.0,
	LocationRetail:         1.0,
	LocationWorkplace:      1.2, // workers comp may apply
	LocationPublicProperty: 0.9, // government immunity
	LocationResidential:    0.85,
	LocationParking:        1.0,
}

// Contingency fee rates.
const (
	PreSettlementFeeRate = 0.33
	PostTrialFeeRate     = 0.40

	// PostFeeShare is what a claimant keeps after a pre-settlement contingency fee.
	PostFeeShare = 0.67

	// MedCoverageShare caps medical coverage at a share of the liability limit.
	MedCoverageShare = 0.8

	// ComparativeFaultThreshold is the fault percent above which negligence
	// evidence becomes the main concern of an insurance claim.
	ComparativeFaultThreshold = 20.0
)

// Caller-side defaults used by the settlement and insurance forms.
const (
	DefaultMedicalExpenses float64 = 15000
	DefaultLiabilityLimit  float64 = 100000
)

var liabilityLimitOptions = []float64{50000, 100000, 300000, 500000, 1000000}

// LiabilityLimitOptions returns the policy limits offered on the insurance form.
func LiabilityLimitOptions() []float64 {
	return append([]float64(nil), liabilityLimitOptions...)
}

// treatment cost ranges, informational only
var injuryCosts = map[InjuryKey]Range{
	InjuryBrokenHip:      {Min: 30000, Max: 150000},
	InjuryBrokenWrist:    {Min: 5000, Max: 40000},
	InjuryBackInjury:     {Min: 15000, Max: 200000},
	InjuryHeadInjury:     {Min: 20000, Max: 300000},
	InjuryKneeInjury:     {Min: 10000, Max: 80000},
	InjuryAnkleInjury:    {Min: 5000, Max: 50000},
	InjuryShoulderInjury: {Min: 8000, Max: 60000},
}

// Statistics are headline figures shown alongside the calculators.
type Statistics struct {
	AvgSettlement      float64 `json:"avgSettlement"`
	AvgMedicalCost     float64 `json:"avgMedicalCost"`
	AnnualCases        int     `json:"annualCases"`
	HipFracturePercent float64 `json:"hipFracturePercent"`
	AvgDailyWage       float64 `json:"avgDailyWage"`
}

var stats = Statistics{
	AvgSettlement:      45000,
	AvgMedicalCost:     30000,
	AnnualCases:        1000000,
	HipFracturePercent: 5,
	AvgDailyWage:       220,
}

// Stats returns the headline statistics.
func Stats() Statistics {
	return stats
}

// InjuryCosts returns a copy of the typical treatment cost table.
func InjuryCosts() map[InjuryKey]Range {
	out := make(map[InjuryKey]Range, len(injuryCosts))
	for k, v := range injuryCosts {
		out[k] = v
	}
	return out
}

// MultiplierFor returns the multiplier band for a tier.
func MultiplierFor(s Severity) (Multiplier, bool) {
	m, ok := multipliers[s]
	return m, ok
}

// Multipliers returns a copy of the severity multiplier table.
func Multipliers() map[Severity]Multiplier {
	out := make(map[Severity]Multiplier, len(multipliers))
	for k, v := range multipliers {
		out[k] = v
	}
	return out
}

// LocationFactor returns the factor for a location. Unknown locations get 1.0.
func LocationFactor(loc LocationKey) (float64, bool) {
	f, ok := locationFactors[loc]
	if !ok {
		return 1.0, false
	}
	return f, true
}

// LocationFactors returns a copy of the location factor table.
func LocationFactors() map[LocationKey]float64 {
	out := make(map[LocationKey]float64, len(locationFactors))
	for k, v := range locationFactors {
		out[k] = v
	}
	return out
}

// Valid reports whether s is one of the four tiers.
func (s Severity) Valid() bool {
	_, ok := multipliers[s]
	return ok
}

// Label returns the display label, e.g. "Moderate Injury".
func (s Severity) Label() string {
	switch s {
	case SeverityMinor:
		return "Minor Injury"
	case SeverityModerate:
		return "Moderate Injury"
	case SeveritySevere:
		return "Severe Injury"
	case SeverityCatastrophic:
		return "Catastrophic Injury"
	}
	return string(s)
}

// RangeLabel renders the multiplier band, e.g. "3-5x".
func (s Severity) RangeLabel() string {
	switch s {
	case SeverityMinor:
		return "1.5-3x"
	case SeverityModerate:
		return "3-5x"
	case SeveritySevere:
		return "5-10x"
	case SeverityCatastrophic:
		return "10-20x"
	}
	return ""
}

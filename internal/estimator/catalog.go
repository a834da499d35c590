package estimator

// InjuryKey names an entry in the injury type catalog.
type InjuryKey string

const (
	InjuryBrokenHip      InjuryKey = "brokenHip"
	InjuryBrokenWrist    InjuryKey = "brokenWrist"
	InjuryBackInjury     InjuryKey = "backInjury"
	InjuryHeadInjury     InjuryKey = "headInjury"
	InjuryKneeInjury     InjuryKey = "kneeInjury"
	InjuryAnkleInjury    InjuryKey = "ankleInjury"
	InjuryShoulderInjury InjuryKey = "shoulderInjury"
	InjurySoftTissue     InjuryKey = "softTissue"
)

// InjuryType describes a common slip and fall injury.
type InjuryType struct {
	Key           InjuryKey `json:"key"`
	Name          string    `json:"name"`
	Severity      Severity  `json:"severity"`
	AvgSettlement Range     `json:"avgSettlement"`
	RecoveryTime  string    `json:"recoveryTime"`
	Description   string    `json:"description"`
}

// FallLocation describes a common accident location.
type FallLocation struct {
	Key           LocationKey `json:"key"`
	Name          string      `json:"name"`
	Examples      string      `json:"examples"`
	AvgSettlement Range       `json:"avgSettlement"`
}

// LocationOption is a location choice on the settlement form.
type LocationOption struct {
	Key    LocationKey `json:"key"`
	Label  string      `json:"label"`
	Factor float64     `json:"factor"`
}

// InjuryEstimate is the quick estimate shown in the injury guide.
type InjuryEstimate struct {
	Injury       InjuryType `json:"injury"`
	Average      float64    `json:"average"`
	WithAttorney float64    `json:"withAttorney"`
}

// Formatted returns the estimate amounts as display strings.
func (e InjuryEstimate) Formatted() map[string]string {
	return map[string]string{
		"average":      FormatUSD(e.Average),
		"withAttorney": FormatUSD(e.WithAttorney),
		"rangeMin":     FormatUSD(e.Injury.AvgSettlement.Min),
		"rangeMax":     FormatUSD(e.Injury.AvgSettlement.Max),
	}
}

// injuries is kept in display order.
var injuries = []InjuryType{
	{
		Key:           InjuryBrokenHip,
		Name:          "Broken Hip / Hip Fracture",
		Severity:      SeverityCatastrophic,
		AvgSettlement: Range{Min: 75000, Max: 500000},
		RecoveryTime:  "6-12 months",
		Description:   "Common in elderly victims. Often requires surgery and extensive rehabilitation.",
	},
	{
		Key:           InjuryBrokenWrist,
		Name:          "Broken Wrist / Arm",
		Severity:      SeverityModerate,
		AvgSettlement: Range{Min: 15000, Max: 75000},
		RecoveryTime:  "6-12 weeks",
		Description:   "Occurs when trying to break the fall. May require surgery for complex fractures.",
	},
	{
		Key:           InjuryBackInjury,
		Name:          "Back / Spinal Injury",
		Severity:      SeveritySevere,
		AvgSettlement: Range{Min: 50000, Max: 300000},
		RecoveryTime:  "3-12 months",
		Description:   "Herniated discs, compression fractures, chronic pain from impact.",
	},
	{
		Key:           InjuryHeadInjury,
		Name:          "Head Injury / TBI",
		Severity:      SeverityCatastrophic,
		AvgSettlement: Range{Min: 100000, Max: 1000000},
		RecoveryTime:  "Months to permanent",
		Description:   "Concussion to severe TBI. Can occur even without direct head impact.",
	},
	{
		Key:           InjuryKneeInjury,
		Name:          "Knee Injury / ACL Tear",
		Severity:      SeverityModerate,
		AvgSettlement: Range{Min: 25000, Max: 150000},
		RecoveryTime:  "4-9 months",
		Description:   "Ligament tears, meniscus damage, may require reconstructive surgery.",
	},
	{
		Key:           InjuryAnkleInjury,
		Name:          "Ankle Sprain / Fracture",
		Severity:      SeverityMinor,
		AvgSettlement: Range{Min: 10000, Max: 50000},
		RecoveryTime:  "4-12 weeks",
		Description:   "Sprains to fractures. Common in uneven surface or stair falls.",
	},
	{
		Key:           InjuryShoulderInjury,
		Name:          "Shoulder Injury / Rotator Cuff",
		Severity:      SeverityModerate,
		AvgSettlement: Range{Min: 20000, Max: 100000},
		RecoveryTime:  "3-6 months",
		Description:   "Rotator cuff tears, dislocations from impact or bracing during fall.",
	},
	{
		Key:           InjurySoftTissue,
		Name:          "Soft Tissue / Bruising",
		Severity:      SeverityMinor,
		AvgSettlement: Range{Min: 5000, Max: 25000},
		RecoveryTime:  "2-6 weeks",
		Description:   "Sprains, strains, bruises, minor cuts. Quick recovery expected.",
	},
}

var fallLocations = []FallLocation{
	{Key: LocationGrocery, Name: "Grocery Store", Examples: "Wet floors, spilled products, uneven mats", AvgSettlement: Range{Min: 25000, Max: 150000}},
	{Key: LocationRestaurant, Name: "Restaurant / Bar", Examples: "Wet floors, grease, inadequate lighting", AvgSettlement: Range{Min: 20000, Max: 100000}},
	{Key: LocationRetail, Name: "Retail Store", Examples: "Merchandise on floor, wet entrance, torn carpet", AvgSettlement: Range{Min: 20000, Max: 125000}},
	{Key: LocationWorkplace, Name: "Workplace", Examples: "Wet floors, cables, construction hazards", AvgSettlement: Range{Min: 30000, Max: 200000}},
	{Key: LocationParking, Name: "Parking Lot / Garage", Examples: "Potholes, ice, poor lighting, oil spills", AvgSettlement: Range{Min: 15000, Max: 100000}},
	{Key: LocationStairs, Name: "Stairs / Escalator", Examples: "Broken handrails, uneven steps, poor lighting", AvgSettlement: Range{Min: 30000, Max: 175000}},
	{Key: LocationSidewalk, Name: "Sidewalk / Public Property", Examples: "Cracked pavement, tree roots, ice", AvgSettlement: Range{Min: 10000, Max: 75000}},
}

var locationLabels = []struct {
	key   LocationKey
	label string
}{
	{LocationGrocery, "Grocery Store"},
	{LocationRestaurant, "Restaurant"},
	{LocationRetail, "Retail Store"},
	{LocationWorkplace, "Workplace"},
	{LocationParking, "Parking Lot"},
	{LocationPublicProperty, "Public Property"},
}

var (
	injuryIndex   = make(map[InjuryKey]int, len(injuries))
	locationIndex = make(map[LocationKey]int, len(fallLocations))
)

func init() {
	for i, in := range injuries {
		injuryIndex[in.Key] = i
	}
	for i, l := range fallLocations {
		locationIndex[l.Key] = i
	}
}

// Injuries returns the injury catalog in display order.
func Injuries() []InjuryType {
	return append([]InjuryType(nil), injuries...)
}

// LookupInjury returns the catalog entry for key.
func LookupInjury(key InjuryKey) (InjuryType, bool) {
	i, ok := injuryIndex[key]
	if !ok {
		return InjuryType{}, false
	}
	return injuries[i], true
}

// FallLocations returns the location catalog in display order.
func FallLocations() []FallLocation {
	return append([]FallLocation(nil), fallLocations...)
}

// LookupFallLocation returns the catalog entry for key.
func LookupFallLocation(key LocationKey) (FallLocation, bool) {
	i, ok := locationIndex[key]
	if !ok {
		return FallLocation{}, false
	}
	return fallLocations[i], true
}

// LocationOptions returns the settlement form's location choices with their factors.
func LocationOptions() []LocationOption {
	out := make([]LocationOption, 0, len(locationLabels))
	for _, l := range locationLabels {
		f, _ := LocationFactor(l.key)
		out = append(out, LocationOption{Key: l.key, Label: l.label, Factor: f})
	}
	return out
}

// EstimateInjury computes the injury guide's quick estimate: the midpoint of
// the catalog range, and that midpoint net of a pre-settlement contingency fee.
func EstimateInjury(key InjuryKey) (InjuryEstimate, error) {
	in, ok := LookupInjury(key)
	if !ok {
		return InjuryEstimate{}, Violation{Field: "injury", Code: CodeUnknownInjury, Err: ErrUnknownInjury}
	}
	avg := in.AvgSettlement.Midpoint()
	return InjuryEstimate{
		Injury:       in,
		Average:      avg,
		WithAttorney: Round(avg * PostFeeShare),
	}, nil
}

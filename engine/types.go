package engine

import "encoding/json"

// Input types for Compute. The caller owns all of them; the engine never
// mutates or retains its arguments.

type RoastLevel string

const (
	RoastLight       RoastLevel = "light"
	RoastMediumLight RoastLevel = "medium-light"
	RoastMedium      RoastLevel = "medium"
	RoastMediumDark  RoastLevel = "medium-dark"
	RoastDark        RoastLevel = "dark"
)

type ProcessMethod string

const (
	ProcessWashed    ProcessMethod = "washed"
	ProcessNatural   ProcessMethod = "natural"
	ProcessHoney     ProcessMethod = "honey"
	ProcessAnaerobic ProcessMethod = "anaerobic"
	ProcessOther     ProcessMethod = "other"
)

type BeanType string

const (
	BeanSingleOrigin BeanType = "single-origin"
	BeanBlend        BeanType = "blend"
)

type TastePreference string

const (
	TasteBalanced  TastePreference = "balanced"
	TasteBody      TastePreference = "body"
	TasteSweetness TastePreference = "sweetness"
	TasteBright    TastePreference = "bright"
)

type MachineType string

const (
	MachineManualLever MachineType = "manual-lever"
	MachineSpringLever MachineType = "spring-lever"
	MachineE61         MachineType = "e61"
	MachineHX          MachineType = "hx"
	MachineSaturated   MachineType = "saturated"
	MachineOther       MachineType = "other"
)

type BasketType string

const (
	BasketPressurized    BasketType = "pressurized"
	BasketNonPressurized BasketType = "non-pressurized"
	BasketPrecision      BasketType = "precision"
)

type BurrType string

const (
	BurrConical BurrType = "conical"
	BurrFlat    BurrType = "flat"
)

// Machine describes the espresso machine half of the equipment profile.
type Machine struct {
	Type               MachineType `json:"type" bson:"type"`
	BoilerType         string      `json:"boilerType,omitempty" bson:"boilerType,omitempty"`
	PumpPressureBars   float64     `json:"pumpPressureBars" bson:"pumpPressureBars"`
	HasPID             bool        `json:"hasPid" bson:"hasPid"`
	HasPreInfusion     bool        `json:"hasPreInfusion" bson:"hasPreInfusion"`
	WaterDebitMlPerMin float64     `json:"waterDebitMlPerMin,omitempty" bson:"waterDebitMlPerMin,omitempty"`
}

// IsLever reports whether the machine drives pressure with a lever instead
// of a pump.
func (m Machine) IsLever() bool {
	return m.Type == MachineManualLever || m.Type == MachineSpringLever
}

// Grinder describes the grinder half of the equipment profile.
// EspressoRangeMin/Max bound the settings usable for espresso, in the
// grinder's own setting-number units. MicronsPerStep is 0 when unknown; the
// engine then estimates it from the range width.
type Grinder struct {
	BurrType         BurrType `json:"burrType,omitempty" bson:"burrType,omitempty"`
	BurrSizeMM       float64  `json:"burrSizeMm,omitempty" bson:"burrSizeMm,omitempty"`
	RPM              float64  `json:"rpm,omitempty" bson:"rpm,omitempty"`
	EspressoRangeMin float64  `json:"espressoRangeMin" bson:"espressoRangeMin"`
	EspressoRangeMax float64  `json:"espressoRangeMax" bson:"espressoRangeMax"`
	Stepped          bool     `json:"stepped" bson:"stepped"`
	MicronsPerStep   float64  `json:"micronsPerStep,omitempty" bson:"micronsPerStep,omitempty"`
}

// Basket describes the portafilter basket.
type Basket struct {
	Type         BasketType `json:"type" bson:"type"`
	DiameterMM   float64    `json:"diameterMm" bson:"diameterMm"`
	CapacityMinG float64    `json:"capacityMinG" bson:"capacityMinG"`
	CapacityMaxG float64    `json:"capacityMaxG" bson:"capacityMaxG"`
	Bottomless   bool       `json:"bottomless" bson:"bottomless"`
}

// EquipmentProfile is the fixed hardware setup a recipe is computed for.
type EquipmentProfile struct {
	Machine Machine `json:"machine" bson:"machine"`
	Grinder Grinder `json:"grinder" bson:"grinder"`
	Basket  Basket  `json:"basket" bson:"basket"`
}

// BeanInfo carries the per-session bean attributes. Origin/varietal/blend
// identifiers are optional foreign keys into the caller's reference tables;
// unknown ids contribute no adjustment.
type BeanInfo struct {
	BeanType         BeanType      `json:"beanType"`
	RoastLevel       RoastLevel    `json:"roastLevel"`
	ProcessMethod    ProcessMethod `json:"processMethod"`
	RoastDateDaysAgo int           `json:"roastDateDaysAgo"`

	// Single-origin branch.
	OriginID   string `json:"originId,omitempty"`
	VarietalID string `json:"varietalId,omitempty"`

	// Blend branch.
	BlendProfile     string `json:"blendProfile,omitempty"`
	DominantOriginID string `json:"dominantOriginId,omitempty"`
}

// BrewTargets is what the user wants out of the shot.
type BrewTargets struct {
	Ratio           float64         `json:"ratio"`
	BrewTimeMinSec  float64         `json:"brewTimeMinSec"`
	BrewTimeMaxSec  float64         `json:"brewTimeMaxSec"`
	TastePreference TastePreference `json:"tastePreference"`
}

// WeatherData is a resolved ambient snapshot. The caller substitutes the
// neutral default (20°C, 50%) when real weather is unavailable; the engine
// never fetches anything itself.
type WeatherData struct {
	TemperatureC float64 `json:"temperatureC"`
	Humidity     float64 `json:"humidity"`
}

// DefaultWeather is the neutral snapshot used when no real weather is known.
func DefaultWeather() WeatherData {
	return WeatherData{TemperatureC: 20, Humidity: 50}
}

// ModifierLookup resolves origin/varietal/blend identifiers to extraction
// modifiers (percentage points). A nil lookup or a missing id means "no
// adjustment", never an error.
type ModifierLookup interface {
	OriginModifier(id string) (float64, bool)
	VarietalModifier(id string) (float64, bool)
	BlendModifier(id string) (float64, bool)
}

// Adjustment is one entry of the per-call log explaining a numeric nudge.
type Adjustment struct {
	Factor string `json:"factor"`
	Effect string `json:"effect"`
}

// Confidence grades how much the recommendation can be trusted as a
// starting point.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// GrindSetting is the recommended grinder position. Stepped grinders get a
// single integer-valued setting; stepless grinders get a half-step window.
type GrindSetting struct {
	Stepless bool    `json:"-"`
	Value    float64 `json:"-"` // stepped only
	Min      float64 `json:"-"` // stepless only
	Max      float64 `json:"-"` // stepless only
}

type steplessRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MarshalJSON emits a bare number for stepped grinders and a {min,max}
// object for stepless ones, matching what frontends expect.
func (g GrindSetting) MarshalJSON() ([]byte, error) {
	if g.Stepless {
		return json.Marshal(steplessRange{Min: g.Min, Max: g.Max})
	}
	return json.Marshal(g.Value)
}

// UnmarshalJSON accepts either shape. An object must carry both min and
// max to count as a stepless range; anything else falls through to the
// number branch and errors there.
func (g *GrindSetting) UnmarshalJSON(data []byte) error {
	var r struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &r); err == nil && r.Min != nil && r.Max != nil {
		g.Stepless = true
		g.Min, g.Max = *r.Min, *r.Max
		g.Value = 0
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	g.Stepless = false
	g.Value = v
	g.Min, g.Max = 0, 0
	return nil
}

// TimeRange is an expected brew-time window in seconds.
type TimeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Reasoning pairs the numeric outputs with human-readable rationale.
type Reasoning struct {
	DoseReasoning  string       `json:"doseReasoning"`
	GrindReasoning string       `json:"grindReasoning"`
	Adjustments    []Adjustment `json:"adjustments"`
}

// Recommendation is the assembled output of one Compute call.
type Recommendation struct {
	RecommendedDoseG        float64      `json:"recommendedDoseG"`
	RecommendedGrindSetting GrindSetting `json:"recommendedGrindSetting"`
	ExpectedYieldG          float64      `json:"expectedYieldG"`
	ExpectedBrewTimeSec     TimeRange    `json:"expectedBrewTimeSec"`
	RecommendedTempC        float64      `json:"recommendedTempC"`
	Confidence              Confidence   `json:"confidence"`
	Tips                    []string     `json:"tips"`
	Reasoning               Reasoning    `json:"reasoning"`
}

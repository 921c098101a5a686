// Package engine computes an espresso brewing recipe from an equipment
// profile, per-session bean attributes, brew targets and ambient weather.
//
// Compute is a pure function: no I/O, no clocks, no randomness, no state
// shared between calls. Given identical inputs it returns identical output.
// The only failure mode is structurally invalid input; past validation every
// anomaly degrades to a neutral adjustment so a usable recipe always comes
// out.
package engine

// Compute runs the full pipeline: validate, derive the dose, derive the
// grind setting, compute the dependent outputs and assemble the tips and
// reasoning. refs may be nil; unknown reference ids contribute no
// adjustment.
func Compute(profile EquipmentProfile, bean BeanInfo, targets BrewTargets, weather WeatherData, refs ModifierLookup) (*Recommendation, error) {
	if err := validate(profile, bean, targets); err != nil {
		return nil, err
	}

	// Per-call adjustment log, threaded through dose and grind calculation.
	adjustments := make([]Adjustment, 0, 8)

	dose, doseReasoning := calcDose(profile.Basket, bean.RoastLevel, &adjustments)
	grind := calcGrind(profile, bean, targets, weather, refs, &adjustments)

	return &Recommendation{
		RecommendedDoseG:        dose,
		RecommendedGrindSetting: grind.setting,
		ExpectedYieldG:          calcYield(dose, targets.Ratio),
		ExpectedBrewTimeSec:     calcBrewTime(profile.Grinder, grind.raw, targets),
		RecommendedTempC:        calcBrewTemp(bean.RoastLevel, bean.ProcessMethod),
		Confidence:              calcConfidence(profile, bean),
		Tips:                    buildTips(profile, bean, weather),
		Reasoning: Reasoning{
			DoseReasoning:  doseReasoning,
			GrindReasoning: grind.reasoning,
			Adjustments:    adjustments,
		},
	}, nil
}

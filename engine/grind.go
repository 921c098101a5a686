package engine

import (
	"fmt"
	"math"
)

// Grinder espresso ranges are not centered on usable espresso settings; the
// midpoint of most ranges is far too coarse. The engine therefore anchors at
// 25% into the range (the "fine espresso zone") and applies adjustments in
// microns of particle size, converted per grinder into setting steps.
// Percentage-of-range nudges are too weak on small ranges to overcome a
// wrong baseline; micron shifts are comparable across grinders.
const fineZoneAnchor = 0.25

// stepsForMicrons converts a particle-size shift in microns into grinder
// setting steps. Grinders that declare MicronsPerStep use it directly;
// otherwise the total traversable microns of the espresso range is estimated
// (wide ranges resolve finer per step). Non-finite or degenerate inputs
// contribute zero steps rather than poisoning the running setting.
func stepsForMicrons(g Grinder, microns float64) float64 {
	if math.IsNaN(microns) || math.IsInf(microns, 0) {
		return 0
	}
	rangeSize := g.EspressoRangeMax - g.EspressoRangeMin
	if rangeSize <= 0 {
		return 0
	}
	perStep := g.MicronsPerStep
	if perStep <= 0 {
		totalMicrons := 300.0
		if rangeSize > 30 {
			totalMicrons = 400.0
		}
		perStep = totalMicrons / rangeSize
	}
	return microns / perStep
}

// grindResult carries the raw (pre-format) setting alongside the formatted
// output so the brew-time estimator can reuse the exact position.
type grindResult struct {
	setting   GrindSetting
	raw       float64
	reasoning string
}

// calcGrind anchors the baseline and walks the ordered adjustment list.
// Every nonzero micron shift is converted to steps, applied additively and
// logged with a human-readable factor/effect pair.
func calcGrind(profile EquipmentProfile, bean BeanInfo, targets BrewTargets, weather WeatherData, refs ModifierLookup, log *[]Adjustment) grindResult {
	g := profile.Grinder
	rangeMin, rangeMax := g.EspressoRangeMin, g.EspressoRangeMax
	rangeSize := rangeMax - rangeMin

	setting := rangeMin + fineZoneAnchor*rangeSize
	adjCount := 0

	apply := func(microns float64, factor, effect string) {
		steps := stepsForMicrons(g, microns)
		if steps == 0 {
			return
		}
		setting += steps
		adjCount++
		*log = append(*log, Adjustment{Factor: factor, Effect: effect})
	}
	coarserFiner := func(microns float64) string {
		if microns > 0 {
			return "coarser"
		}
		return "finer"
	}
	applyMicrons := func(microns float64, factor string) {
		apply(microns, factor, fmt.Sprintf("%+.0f microns (%s)", microns, coarserFiner(microns)))
	}

	// Roast level: darker roasts are more soluble and brittle, so they grind
	// coarser; light roasts need to go finer.
	switch bean.RoastLevel {
	case RoastLight:
		applyMicrons(-40, "light roast")
	case RoastMediumLight:
		applyMicrons(-20, "medium-light roast")
	case RoastMediumDark:
		applyMicrons(40, "medium-dark roast")
	case RoastDark:
		applyMicrons(80, "dark roast")
	}

	// Freshness: degassing CO2 inflates the puck, so fresh beans grind
	// coarser; stale beans have lost gas and flavor and go finer.
	days := bean.RoastDateDaysAgo
	var freshShift float64
	var freshFactor string
	switch {
	case days <= 4:
		freshShift, freshFactor = 60, fmt.Sprintf("very fresh beans (%d days off roast)", days)
	case days <= 6:
		freshShift, freshFactor = 30, fmt.Sprintf("fresh beans (%d days off roast)", days)
	case days <= 14:
		// Peak window, no shift.
	case days <= 35:
		freshShift, freshFactor = -20, fmt.Sprintf("aging beans (%d days off roast)", days)
	default:
		freshShift, freshFactor = -40, fmt.Sprintf("stale beans (%d days off roast)", days)
	}
	// Naturals degas faster, so the fresh-window correction is damped.
	if bean.ProcessMethod == ProcessNatural && days <= 6 && freshShift != 0 {
		freshShift *= 0.8
		freshFactor += ", natural process degasses faster"
	}
	if freshShift != 0 {
		applyMicrons(freshShift, freshFactor)
	}

	// Process method.
	switch bean.ProcessMethod {
	case ProcessNatural:
		applyMicrons(20, "natural process")
	case ProcessHoney:
		applyMicrons(10, "honey process")
	case ProcessAnaerobic:
		applyMicrons(-10, "anaerobic process")
	}

	// Origin/varietal extraction modifiers, 10 microns per percentage point.
	if refs != nil {
		switch bean.BeanType {
		case BeanSingleOrigin:
			if bean.VarietalID != "" {
				if mod, ok := refs.VarietalModifier(bean.VarietalID); ok && mod != 0 {
					applyMicrons(mod*10, fmt.Sprintf("varietal %s extraction profile", bean.VarietalID))
				}
			}
			if bean.OriginID != "" {
				if mod, ok := refs.OriginModifier(bean.OriginID); ok && mod != 0 {
					applyMicrons(mod*10, fmt.Sprintf("origin %s extraction profile", bean.OriginID))
				}
			}
		case BeanBlend:
			if bean.BlendProfile != "" {
				if mod, ok := refs.BlendModifier(bean.BlendProfile); ok && mod != 0 {
					applyMicrons(mod*10, fmt.Sprintf("%s blend profile", bean.BlendProfile))
				}
			}
			// The dominant origin only part-defines a blend, so its modifier
			// lands at half strength.
			if bean.DominantOriginID != "" {
				if mod, ok := refs.OriginModifier(bean.DominantOriginID); ok && mod != 0 {
					applyMicrons(mod*10*0.5, fmt.Sprintf("dominant origin %s (half strength)", bean.DominantOriginID))
				}
			}
		}
	}

	// High pump pressure pushes water through faster, so the puck must offer
	// more resistance: finer, not coarser.
	if profile.Machine.PumpPressureBars >= 15 {
		applyMicrons(-40, fmt.Sprintf("%.0f bar pump pressure", profile.Machine.PumpPressureBars))
	}

	// Lever machines build pressure gradually and gently.
	if profile.Machine.IsLever() {
		applyMicrons(30, "lever machine")
	}

	// A slow water debit already throttles flow, so the grind can back off.
	if d := profile.Machine.WaterDebitMlPerMin; d > 0 && d < 220 {
		applyMicrons(20, fmt.Sprintf("slow water debit (%.0f ml/min)", d))
	}

	// Basket construction dominates flow behavior.
	switch profile.Basket.Type {
	case BasketPressurized:
		applyMicrons(160, "pressurized basket creates its own resistance")
	case BasketPrecision:
		applyMicrons(-10, "precision basket extracts more evenly")
	}

	// Small baskets concentrate flow through a narrower bed.
	if profile.Basket.DiameterMM <= 51 && profile.Basket.Type != BasketPressurized {
		applyMicrons(-20, "small basket diameter")
	}

	// Ambient conditions: grounds absorb moisture and swell in humid air.
	if weather.Humidity > 70 {
		applyMicrons(15, fmt.Sprintf("high humidity (%.0f%%)", weather.Humidity))
	} else if weather.Humidity < 30 {
		applyMicrons(-15, fmt.Sprintf("dry air (%.0f%%)", weather.Humidity))
	}
	if weather.TemperatureC > 30 {
		applyMicrons(10, fmt.Sprintf("hot ambient temperature (%.0f°C)", weather.TemperatureC))
	} else if weather.TemperatureC < 15 {
		applyMicrons(-10, fmt.Sprintf("cold ambient temperature (%.0f°C)", weather.TemperatureC))
	}

	// Taste preference.
	switch targets.TastePreference {
	case TasteBody:
		applyMicrons(-20, "taste preference: more body")
	case TasteBright, TasteSweetness:
		applyMicrons(20, fmt.Sprintf("taste preference: %s", targets.TastePreference))
	}

	// Ratio: lungo-leaning ratios run longer, so coarsen; ristretto ratios
	// need the extra resistance of a finer grind.
	if targets.Ratio > 2.5 {
		applyMicrons(20, fmt.Sprintf("long ratio (1:%.1f)", targets.Ratio))
	} else if targets.Ratio < 1.8 {
		applyMicrons(-20, fmt.Sprintf("short ratio (1:%.1f)", targets.Ratio))
	}

	// Fast burrs generate more fines.
	if g.RPM > 1200 {
		applyMicrons(10, fmt.Sprintf("high grinder RPM (%.0f)", g.RPM))
	}

	// Compound: fresh dark roasts in hot weather degas aggressively.
	if days < 7 && (bean.RoastLevel == RoastDark || bean.RoastLevel == RoastMediumDark) &&
		weather.TemperatureC > 28 {
		applyMicrons(20, "fresh dark roast in hot weather")
	}

	// Compound: humid air plus an already very fine position risks choking.
	if weather.Humidity > 65 && rangeSize > 0 && (setting-rangeMin)/rangeSize < 0.15 {
		applyMicrons(10, "humidity safeguard near the fine end of the range")
	}

	raw := math.Min(math.Max(setting, rangeMin), rangeMax)

	reasoning := fmt.Sprintf(
		"Anchored at %.1f, 25%% into your grinder's espresso range (%g–%g) where most shots dial in,",
		rangeMin+fineZoneAnchor*rangeSize, rangeMin, rangeMax)
	if adjCount == 0 {
		reasoning += " with no adjustments needed for your beans and conditions."
	} else {
		reasoning += fmt.Sprintf(" then applied %d adjustment(s) for your beans, equipment and conditions, landing at %.1f.", adjCount, raw)
	}

	return grindResult{
		setting:   formatGrind(g, raw),
		raw:       raw,
		reasoning: reasoning,
	}
}

// formatGrind turns the clamped raw position into the user-facing setting:
// stepped grinders round to the nearest whole setting (never below the range
// minimum); stepless grinders report a ±0.5 window, each bound clamped to
// the range independently and rounded to one decimal.
func formatGrind(g Grinder, raw float64) GrindSetting {
	if g.Stepped {
		v := math.Round(raw)
		// Fractional range bounds: rounding must not escape the range on
		// either side.
		if v < g.EspressoRangeMin {
			v = math.Ceil(g.EspressoRangeMin)
		}
		if v > g.EspressoRangeMax {
			v = math.Floor(g.EspressoRangeMax)
		}
		return GrindSetting{Value: v}
	}
	clamp := func(x float64) float64 {
		return math.Min(math.Max(x, g.EspressoRangeMin), g.EspressoRangeMax)
	}
	return GrindSetting{
		Stepless: true,
		Min:      math.Round(clamp(raw-0.5)*10) / 10,
		Max:      math.Round(clamp(raw+0.5)*10) / 10,
	}
}

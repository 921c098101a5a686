package engine

import "math"

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// calcYield is plain arithmetic: dose times ratio, one decimal.
func calcYield(doseG, ratio float64) float64 {
	return round1(doseG * ratio)
}

// calcBrewTime shifts the user's target window by how far the chosen grind
// sits from the middle of the espresso range, then by the target ratio.
// Finer-than-middle positions flow slower (longer shots), coarser positions
// faster. The returned bounds are order-safe and floored at 15s/20s.
func calcBrewTime(g Grinder, rawGrind float64, targets BrewTargets) TimeRange {
	rangeSize := g.EspressoRangeMax - g.EspressoRangeMin
	position := 0.5
	if rangeSize > 0 {
		position = (rawGrind - g.EspressoRangeMin) / rangeSize
	}

	var shift float64
	switch {
	case position < 0.4:
		shift = 3 + (0.4-position)*10
	case position > 0.6:
		shift = -(3 + (position-0.6)*10)
	}

	if targets.Ratio < 1.8 {
		shift -= 3
	} else if targets.Ratio > 2.5 {
		shift += 5
	}

	lo := math.Max(math.Round(targets.BrewTimeMinSec+shift), 15)
	hi := math.Max(math.Round(targets.BrewTimeMaxSec+shift), 20)
	return TimeRange{Min: math.Min(lo, hi), Max: math.Max(lo, hi)}
}

// calcBrewTemp looks up the base temperature by roast level; darker roasts
// scorch at light-roast temperatures. Anaerobic lots run a degree cooler to
// keep their ferment character in check.
func calcBrewTemp(roast RoastLevel, process ProcessMethod) float64 {
	temp := 93.0
	switch roast {
	case RoastLight:
		temp = 95
	case RoastMediumLight:
		temp = 94
	case RoastMedium:
		temp = 93
	case RoastMediumDark:
		temp = 91
	case RoastDark:
		temp = 89
	}
	if process == ProcessAnaerobic {
		temp -= 1
	}
	return temp
}

// calcConfidence scores how predictable this setup is. Stable equipment
// earns points; unknowns and extremes cost them.
func calcConfidence(profile EquipmentProfile, bean BeanInfo) Confidence {
	score := 70

	m := profile.Machine
	if m.HasPID {
		score += 8
	}
	if m.HasPreInfusion {
		score += 5
	}
	if profile.Grinder.BurrSizeMM >= 50 {
		score += 5
	}
	if mps := profile.Grinder.MicronsPerStep; mps > 0 && mps <= 15 {
		score += 5
	}

	if bean.BeanType == BeanBlend && bean.BlendProfile == "" {
		score -= 15
	}
	if bean.RoastDateDaysAgo < 5 {
		score -= 10
	}
	if bean.RoastDateDaysAgo > 35 {
		score -= 8
	}
	if m.PumpPressureBars >= 15 && !m.HasPID {
		score -= 8
	}
	if profile.Basket.Type == BasketPressurized {
		score -= 5
	}

	switch {
	case score >= 75:
		return ConfidenceHigh
	case score >= 55:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

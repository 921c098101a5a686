package engine

import (
	"fmt"
	"math"
	"strings"
)

// calcDose derives the coffee dose from the basket and roast level.
// Baseline is the capacity midpoint; roast density and small-basket
// compensation nudge it; the result is rounded to 0.5g and clamped into the
// basket's capacity range. Applied nudges are appended to the shared log.
func calcDose(basket Basket, roast RoastLevel, log *[]Adjustment) (float64, string) {
	baseline := (basket.CapacityMinG + basket.CapacityMaxG) / 2
	dose := baseline

	var notes []string

	// Darker roasts are less dense, so the same basket holds fewer grams.
	var densityShift float64
	switch roast {
	case RoastDark:
		densityShift = -1
	case RoastMediumDark:
		densityShift = -0.5
	case RoastLight:
		densityShift = 0.5
	}
	if densityShift != 0 {
		dose += densityShift
		*log = append(*log, Adjustment{
			Factor: fmt.Sprintf("%s roast density", roast),
			Effect: fmt.Sprintf("%+.1fg dose", densityShift),
		})
		notes = append(notes, fmt.Sprintf("%+.1fg for %s roast density", densityShift, roast))
	}

	// Small non-pressurized baskets benefit from a slight updose for headspace,
	// but never past the basket's capacity.
	if basket.DiameterMM <= 51 && basket.Type != BasketPressurized && dose+0.5 <= basket.CapacityMaxG {
		dose += 0.5
		*log = append(*log, Adjustment{
			Factor: "small basket",
			Effect: "+0.5g dose for even extraction in a 51mm basket",
		})
		notes = append(notes, "+0.5g for the small basket")
	}

	dose = math.Round(dose*2) / 2
	dose = math.Min(math.Max(dose, basket.CapacityMinG), basket.CapacityMaxG)

	reasoning := fmt.Sprintf("Started from %.1fg, the midpoint of your %.0f–%.0fg basket.",
		baseline, basket.CapacityMinG, basket.CapacityMaxG)
	if len(notes) > 0 {
		reasoning += " Adjusted " + strings.Join(notes, ", ") + "."
	}
	reasoning += fmt.Sprintf(" Final dose %.1fg, rounded to the nearest 0.5g and kept within basket capacity.", dose)

	return dose, reasoning
}

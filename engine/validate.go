package engine

import (
	"fmt"
	"math"
)

// InvalidInputError is the engine's only failure class. Everything past
// validation degrades to a zero-effect adjustment instead of failing.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// validate runs the structural checks every later stage relies on. It has no
// side effects and reports the first violation with both offending values.
func validate(profile EquipmentProfile, bean BeanInfo, targets BrewTargets) error {
	b := profile.Basket
	if b.CapacityMinG > b.CapacityMaxG {
		return invalidf("basket.capacity", "capacityMinG %.1f exceeds capacityMaxG %.1f", b.CapacityMinG, b.CapacityMaxG)
	}
	g := profile.Grinder
	if g.EspressoRangeMin >= g.EspressoRangeMax {
		return invalidf("grinder.espressoRange", "espressoRangeMin %g must be below espressoRangeMax %g", g.EspressoRangeMin, g.EspressoRangeMax)
	}
	if bean.RoastDateDaysAgo < 0 {
		return invalidf("bean.roastDateDaysAgo", "got %d, beans cannot be roasted in the future", bean.RoastDateDaysAgo)
	}
	if targets.Ratio <= 0 || math.IsNaN(targets.Ratio) || math.IsInf(targets.Ratio, 0) {
		return invalidf("targets.ratio", "got %v, must be a finite number above 0", targets.Ratio)
	}
	if targets.BrewTimeMinSec >= targets.BrewTimeMaxSec {
		return invalidf("targets.brewTime", "brewTimeMinSec %g must be below brewTimeMaxSec %g", targets.BrewTimeMinSec, targets.BrewTimeMaxSec)
	}
	return nil
}

package engine

import "fmt"

// maxTips is a hard cap; earlier, higher-priority tips win.
const maxTips = 4

// buildTips assembles contextual advice in priority order and truncates to
// the cap. Compound risks come first, generic caveats last.
func buildTips(profile EquipmentProfile, bean BeanInfo, weather WeatherData) []string {
	tips := make([]string, 0, maxTips)

	days := bean.RoastDateDaysAgo
	veryFresh := days < 5
	highHumidity := weather.Humidity > 70
	smallConical := profile.Grinder.BurrType == BurrConical && profile.Grinder.BurrSizeMM > 0 && profile.Grinder.BurrSizeMM < 50

	// Channeling risk compounds when several clump-inducing factors stack.
	riskFactors := 0
	if veryFresh {
		riskFactors++
	}
	if highHumidity {
		riskFactors++
	}
	if smallConical {
		riskFactors++
	}
	if riskFactors >= 2 {
		tips = append(tips, "Elevated channeling risk today: very fresh beans, humidity and small conical burrs all promote clumping. Use WDT and a gentle, level tamp.")
	}

	if bean.BeanType == BeanBlend && bean.BlendProfile == "" {
		tips = append(tips, "Unknown blend composition, so treat this recipe as a rough starting point and expect an extra shot or two to dial in.")
	}

	switch {
	case veryFresh:
		tips = append(tips, fmt.Sprintf("At %d days off roast these beans are still degassing heavily; shots will run fast and crema will be unstable. Resting to day 7–14 improves consistency.", days))
	case days <= 6:
		tips = append(tips, "These beans are almost at peak; expect to tighten the grind slightly over the next few days as degassing slows.")
	case days > 35:
		tips = append(tips, fmt.Sprintf("At %d days off roast the beans have lost most CO2; shots run faster and flatter. Grind finer than usual and consider a shorter ratio.", days))
	}

	m := profile.Machine
	if m.PumpPressureBars >= 15 && !m.HasPID {
		tips = append(tips, "High pump pressure without PID control amplifies temperature swings; pull a blank shot to warm the group before brewing.")
	}
	if m.Type == MachineHX {
		tips = append(tips, "Heat-exchanger machine: do a short cooling flush before the shot to avoid scorching the puck.")
	}
	if m.Type == MachineE61 {
		tips = append(tips, "Give the E61 group a full 20–30 minutes to warm up; an underheated group sours otherwise good shots.")
	}

	if smallConical && profile.Basket.Bottomless {
		tips = append(tips, "Small conical burrs clump more; with a bottomless portafilter any channeling will show as spritzers. WDT before tamping.")
	}

	switch bean.RoastLevel {
	case RoastLight:
		tips = append(tips, "Light roasts resist extraction: if the shot tastes sour or thin, go finer or raise the temperature before changing the dose.")
	case RoastDark, RoastMediumDark:
		tips = append(tips, "Dark roasts over-extract easily: if the shot tastes bitter or ashy, go coarser or drop the temperature a degree.")
	}

	if highHumidity {
		tips = append(tips, "High humidity makes grounds swell and slow the shot; if flow keeps tightening through the session, back the grind off a step.")
	} else if weather.Humidity < 30 {
		tips = append(tips, "Very dry air increases static and fines migration; a drop of water on the beans before grinding (RDT) helps.")
	}

	if !m.HasPID {
		tips = append(tips, "Without PID the brew temperature drifts shot to shot; keep your routine (flush, timing) identical for comparable results.")
	}

	if profile.Basket.Type == BasketPressurized {
		tips = append(tips, "A pressurized basket masks grind quality; switching to a non-pressurized basket is the single biggest upgrade for this setup.")
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

package engine

import (
	"math"
	"testing"
)

func TestStepsForMicrons_DeclaredPerStep(t *testing.T) {
	g := Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, MicronsPerStep: 20}
	if got := stepsForMicrons(g, 40); got != 2 {
		t.Errorf("steps = %v, want 2", got)
	}
	if got := stepsForMicrons(g, -40); got != -2 {
		t.Errorf("steps = %v, want -2", got)
	}
}

func TestStepsForMicrons_EstimatedNarrowRange(t *testing.T) {
	// 10-step range estimates 300 total microns: 30 per step.
	g := Grinder{EspressoRangeMin: 0, EspressoRangeMax: 10}
	if got := stepsForMicrons(g, 60); got != 2 {
		t.Errorf("steps = %v, want 2", got)
	}
}

func TestStepsForMicrons_EstimatedWideRange(t *testing.T) {
	// 35-step range estimates 400 total microns.
	g := Grinder{EspressoRangeMin: 10, EspressoRangeMax: 45}
	want := 40.0 / (400.0 / 35.0)
	if got := stepsForMicrons(g, 40); math.Abs(got-want) > 1e-9 {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestStepsForMicrons_GuardsDegenerateInput(t *testing.T) {
	g := Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, MicronsPerStep: 20}
	if got := stepsForMicrons(g, math.NaN()); got != 0 {
		t.Errorf("NaN microns contributed %v steps, want 0", got)
	}
	if got := stepsForMicrons(g, math.Inf(1)); got != 0 {
		t.Errorf("Inf microns contributed %v steps, want 0", got)
	}
	flat := Grinder{EspressoRangeMin: 5, EspressoRangeMax: 5}
	if got := stepsForMicrons(flat, 40); got != 0 {
		t.Errorf("zero-size range contributed %v steps, want 0", got)
	}
}

func TestCalcGrind_AnchorsAtQuarterOfRange(t *testing.T) {
	p := EquipmentProfile{
		Machine: Machine{Type: MachineOther, PumpPressureBars: 9, WaterDebitMlPerMin: 250},
		Grinder: Grinder{EspressoRangeMin: 0, EspressoRangeMax: 10},
		Basket:  Basket{Type: BasketNonPressurized, DiameterMM: 58, CapacityMinG: 16, CapacityMaxG: 20},
	}
	b := BeanInfo{BeanType: BeanSingleOrigin, RoastLevel: RoastMedium, ProcessMethod: ProcessWashed, RoastDateDaysAgo: 10}
	tg := BrewTargets{Ratio: 2, BrewTimeMinSec: 25, BrewTimeMaxSec: 30, TastePreference: TasteBalanced}

	var log []Adjustment
	res := calcGrind(p, b, tg, DefaultWeather(), nil, &log)
	if res.raw != 2.5 {
		t.Errorf("raw setting = %v, want the 25%% anchor 2.5", res.raw)
	}
	if len(log) != 0 {
		t.Errorf("neutral setup logged %d adjustments, want 0", len(log))
	}
}

func TestCalcGrind_NaturalProcessDampsFreshShift(t *testing.T) {
	p := EquipmentProfile{
		Machine: Machine{Type: MachineOther, PumpPressureBars: 9, WaterDebitMlPerMin: 250},
		Grinder: Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, MicronsPerStep: 20},
		Basket:  Basket{Type: BasketNonPressurized, DiameterMM: 58, CapacityMinG: 16, CapacityMaxG: 20},
	}
	tg := BrewTargets{Ratio: 2, BrewTimeMinSec: 25, BrewTimeMaxSec: 30, TastePreference: TasteBalanced}

	settingFor := func(process ProcessMethod) float64 {
		var log []Adjustment
		b := BeanInfo{BeanType: BeanSingleOrigin, RoastLevel: RoastMedium, ProcessMethod: process, RoastDateDaysAgo: 3}
		return calcGrind(p, b, tg, DefaultWeather(), nil, &log).raw
	}

	washed := settingFor(ProcessWashed)   // +60 microns fresh
	natural := settingFor(ProcessNatural) // +60*0.8 fresh, +20 process

	anchor := 1 + 0.25*19
	if got, want := washed-anchor, 3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("washed fresh shift = %v steps, want %v", got, want)
	}
	if got, want := natural-anchor, (60*0.8+20)/20.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("natural fresh shift = %v steps, want %v", got, want)
	}
}

func TestCalcGrind_PressurizedBasketDominates(t *testing.T) {
	p := EquipmentProfile{
		Machine: Machine{Type: MachineOther, PumpPressureBars: 9, WaterDebitMlPerMin: 250},
		Grinder: Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, MicronsPerStep: 20},
		Basket:  Basket{Type: BasketPressurized, DiameterMM: 51, CapacityMinG: 14, CapacityMaxG: 16},
	}
	b := BeanInfo{BeanType: BeanSingleOrigin, RoastLevel: RoastMedium, ProcessMethod: ProcessWashed, RoastDateDaysAgo: 10}
	tg := BrewTargets{Ratio: 2, BrewTimeMinSec: 25, BrewTimeMaxSec: 30, TastePreference: TasteBalanced}

	var log []Adjustment
	res := calcGrind(p, b, tg, DefaultWeather(), nil, &log)
	// +160 microns is +8 steps from the 5.75 anchor. The small-basket
	// tightening does not apply to pressurized baskets.
	if res.raw != 13.75 {
		t.Errorf("raw = %v, want 13.75", res.raw)
	}
}

func TestCalcGrind_HighPressureGoesFiner(t *testing.T) {
	base := EquipmentProfile{
		Machine: Machine{Type: MachineOther, PumpPressureBars: 9, WaterDebitMlPerMin: 250},
		Grinder: Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, MicronsPerStep: 20},
		Basket:  Basket{Type: BasketNonPressurized, DiameterMM: 58, CapacityMinG: 16, CapacityMaxG: 20},
	}
	b := BeanInfo{BeanType: BeanSingleOrigin, RoastLevel: RoastMedium, ProcessMethod: ProcessWashed, RoastDateDaysAgo: 10}
	tg := BrewTargets{Ratio: 2, BrewTimeMinSec: 25, BrewTimeMaxSec: 30, TastePreference: TasteBalanced}

	var log1, log2 []Adjustment
	nine := calcGrind(base, b, tg, DefaultWeather(), nil, &log1).raw
	base.Machine.PumpPressureBars = 15
	fifteen := calcGrind(base, b, tg, DefaultWeather(), nil, &log2).raw

	// Higher pressure needs more puck resistance: finer, not coarser.
	if fifteen >= nine {
		t.Errorf("15 bar setting %v not finer than 9 bar setting %v", fifteen, nine)
	}
	if got := nine - fifteen; got != 2 {
		t.Errorf("pressure shift = %v steps, want 2", got)
	}
}

func TestCalcGrind_HumiditySafeguardNearFineEnd(t *testing.T) {
	// High pump pressure alone drops the anchor to 3.75, under 15% of the
	// 1–20 range; humidity above 65% then triggers the safeguard.
	p := EquipmentProfile{
		Machine: Machine{Type: MachineOther, PumpPressureBars: 15, WaterDebitMlPerMin: 250},
		Grinder: Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, MicronsPerStep: 20},
		Basket:  Basket{Type: BasketNonPressurized, DiameterMM: 58, CapacityMinG: 16, CapacityMaxG: 20},
	}
	b := BeanInfo{BeanType: BeanSingleOrigin, RoastLevel: RoastMedium, ProcessMethod: ProcessWashed, RoastDateDaysAgo: 10}
	tg := BrewTargets{Ratio: 2, BrewTimeMinSec: 25, BrewTimeMaxSec: 30, TastePreference: TasteBalanced}

	var dryLog, humidLog []Adjustment
	dry := calcGrind(p, b, tg, WeatherData{TemperatureC: 20, Humidity: 50}, nil, &dryLog)
	humid := calcGrind(p, b, tg, WeatherData{TemperatureC: 20, Humidity: 68}, nil, &humidLog)

	// 68% humidity is below the 70% threshold for the plain humidity shift,
	// so any difference comes from the fine-end safeguard alone.
	if got := humid.raw - dry.raw; got != 0.5 {
		t.Errorf("safeguard shift = %v steps, want +0.5", got)
	}
}

func TestFormatGrind_SteppedRoundsAndFloors(t *testing.T) {
	g := Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20, Stepped: true}
	if got := formatGrind(g, 3.75).Value; got != 4 {
		t.Errorf("formatted = %v, want 4", got)
	}
	if got := formatGrind(g, 1.2).Value; got != 1 {
		t.Errorf("formatted = %v, want 1", got)
	}
}

func TestFormatGrind_FractionalRangeMax(t *testing.T) {
	// Rounding a clamped value near a fractional maximum must not escape
	// the range: 20.5 would otherwise round up to 21.
	g := Grinder{EspressoRangeMin: 1, EspressoRangeMax: 20.5, Stepped: true}
	if got := formatGrind(g, 20.5).Value; got != 20 {
		t.Errorf("formatted = %v, want 20", got)
	}
	if got := formatGrind(g, 19.7).Value; got != 20 {
		t.Errorf("formatted = %v, want 20", got)
	}
}

func TestFormatGrind_SteplessWindow(t *testing.T) {
	g := Grinder{EspressoRangeMin: 0, EspressoRangeMax: 10}

	mid := formatGrind(g, 5)
	if !mid.Stepless {
		t.Fatal("stepless grinder formatted as stepped")
	}
	if mid.Min != 4.5 || mid.Max != 5.5 {
		t.Errorf("window = [%v,%v], want [4.5,5.5]", mid.Min, mid.Max)
	}

	// Clamped edge narrows asymmetrically.
	edge := formatGrind(g, 0.2)
	if edge.Min != 0 {
		t.Errorf("clamped min = %v, want 0", edge.Min)
	}
	if edge.Max != 0.7 {
		t.Errorf("max = %v, want 0.7", edge.Max)
	}
}

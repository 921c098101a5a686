package catalog

import "dialin/engine"

// Equipment presets back the frontend's dropdowns so users can pick their
// gear instead of typing numbers. The engine only ever sees the resolved
// engine.* values.

type GrinderPreset struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Grinder engine.Grinder `json:"grinder"`
}

type MachinePreset struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Machine engine.Machine `json:"machine"`
}

type BasketPreset struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Basket engine.Basket `json:"basket"`
}

// Grinders returns the built-in grinder presets.
func Grinders() []GrinderPreset {
	return []GrinderPreset{
		{ID: "baratza-encore-esp", Name: "Baratza Encore ESP", Grinder: engine.Grinder{
			BurrType: engine.BurrConical, BurrSizeMM: 40, RPM: 550,
			EspressoRangeMin: 1, EspressoRangeMax: 20, Stepped: true, MicronsPerStep: 20,
		}},
		{ID: "df64", Name: "DF64", Grinder: engine.Grinder{
			BurrType: engine.BurrFlat, BurrSizeMM: 64, RPM: 1400,
			EspressoRangeMin: 5, EspressoRangeMax: 25, Stepped: false,
		}},
		{ID: "niche-zero", Name: "Niche Zero", Grinder: engine.Grinder{
			BurrType: engine.BurrConical, BurrSizeMM: 63, RPM: 330,
			EspressoRangeMin: 5, EspressoRangeMax: 25, Stepped: false,
		}},
		{ID: "eureka-mignon-specialita", Name: "Eureka Mignon Specialità", Grinder: engine.Grinder{
			BurrType: engine.BurrFlat, BurrSizeMM: 55, RPM: 1350,
			EspressoRangeMin: 0, EspressoRangeMax: 10, Stepped: false,
		}},
		{ID: "1zpresso-jx-pro", Name: "1Zpresso JX-Pro", Grinder: engine.Grinder{
			BurrType: engine.BurrConical, BurrSizeMM: 48, RPM: 60,
			EspressoRangeMin: 10, EspressoRangeMax: 45, Stepped: true, MicronsPerStep: 12.5,
		}},
		{ID: "sage-smart-grinder-pro", Name: "Sage Smart Grinder Pro", Grinder: engine.Grinder{
			BurrType: engine.BurrConical, BurrSizeMM: 40, RPM: 450,
			EspressoRangeMin: 1, EspressoRangeMax: 30, Stepped: true,
		}},
	}
}

// Machines returns the built-in machine presets.
func Machines() []MachinePreset {
	return []MachinePreset{
		{ID: "delonghi-stilosa", Name: "De'Longhi Stilosa", Machine: engine.Machine{
			Type: engine.MachineOther, BoilerType: "thermoblock",
			PumpPressureBars: 15, WaterDebitMlPerMin: 184,
		}},
		{ID: "gaggia-classic-pro", Name: "Gaggia Classic Pro", Machine: engine.Machine{
			Type: engine.MachineOther, BoilerType: "single",
			PumpPressureBars: 15, WaterDebitMlPerMin: 250,
		}},
		{ID: "rancilio-silvia", Name: "Rancilio Silvia", Machine: engine.Machine{
			Type: engine.MachineOther, BoilerType: "single",
			PumpPressureBars: 9, WaterDebitMlPerMin: 250,
		}},
		{ID: "breville-bambino-plus", Name: "Breville Bambino Plus", Machine: engine.Machine{
			Type: engine.MachineOther, BoilerType: "thermojet",
			PumpPressureBars: 9, HasPID: true, HasPreInfusion: true, WaterDebitMlPerMin: 230,
		}},
		{ID: "lelit-bianca", Name: "Lelit Bianca", Machine: engine.Machine{
			Type: engine.MachineE61, BoilerType: "dual",
			PumpPressureBars: 9, HasPID: true, HasPreInfusion: true, WaterDebitMlPerMin: 260,
		}},
		{ID: "rocket-appartamento", Name: "Rocket Appartamento", Machine: engine.Machine{
			Type: engine.MachineHX, BoilerType: "heat-exchanger",
			PumpPressureBars: 9, WaterDebitMlPerMin: 260,
		}},
		{ID: "la-pavoni-europiccola", Name: "La Pavoni Europiccola", Machine: engine.Machine{
			Type: engine.MachineManualLever, BoilerType: "single",
			PumpPressureBars: 8,
		}},
		{ID: "flair-58", Name: "Flair 58", Machine: engine.Machine{
			Type: engine.MachineManualLever, BoilerType: "none",
			PumpPressureBars: 9, HasPreInfusion: true,
		}},
	}
}

// Baskets returns the built-in basket presets.
func Baskets() []BasketPreset {
	return []BasketPreset{
		{ID: "51-pressurized", Name: "51mm pressurized (stock)", Basket: engine.Basket{
			Type: engine.BasketPressurized, DiameterMM: 51, CapacityMinG: 14, CapacityMaxG: 16,
		}},
		{ID: "51-non-pressurized", Name: "51mm non-pressurized", Basket: engine.Basket{
			Type: engine.BasketNonPressurized, DiameterMM: 51, CapacityMinG: 16, CapacityMaxG: 18,
		}},
		{ID: "54-non-pressurized", Name: "54mm non-pressurized", Basket: engine.Basket{
			Type: engine.BasketNonPressurized, DiameterMM: 54, CapacityMinG: 17, CapacityMaxG: 19,
		}},
		{ID: "58-non-pressurized", Name: "58mm non-pressurized", Basket: engine.Basket{
			Type: engine.BasketNonPressurized, DiameterMM: 58, CapacityMinG: 16, CapacityMaxG: 20,
		}},
		{ID: "58-vst-18", Name: "58mm VST 18g precision", Basket: engine.Basket{
			Type: engine.BasketPrecision, DiameterMM: 58, CapacityMinG: 17, CapacityMaxG: 19,
		}},
		{ID: "58-ims-20", Name: "58mm IMS 20g precision", Basket: engine.Basket{
			Type: engine.BasketPrecision, DiameterMM: 58, CapacityMinG: 19, CapacityMaxG: 21,
		}},
	}
}

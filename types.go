package main

import (
	"dialin/engine"
)

// Request/response DTOs. Keep them minimal and explicit.

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// location optionally pins the request to a place so real weather can be
// resolved; without it the engine gets the neutral default.
type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type recipeReq struct {
	Profile engine.EquipmentProfile `json:"profile"`
	Bean    engine.BeanInfo         `json:"bean"`
	Targets engine.BrewTargets      `json:"targets"`

	// Exactly one of these may be set. Weather wins when both are present.
	Location *location           `json:"location,omitempty"`
	Weather  *engine.WeatherData `json:"weather,omitempty"`
}

type recipeResp struct {
	Recipe  *engine.Recommendation `json:"recipe"`
	Weather engine.WeatherData     `json:"weather"` // what the engine actually saw
}

type createProfileReq struct {
	Name      string                  `json:"name"`
	Equipment engine.EquipmentProfile `json:"equipment"`
	Notes     string                  `json:"notes,omitempty"`
}

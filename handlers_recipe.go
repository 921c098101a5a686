package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dialin/catalog"
	"dialin/engine"
)

// handleRecipe computes a brewing recommendation. Weather resolution order:
// explicit weather in the request, then a lookup for the given location,
// then the neutral default. The engine itself never fetches anything.
func (a *App) handleRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	weather := engine.DefaultWeather()
	switch {
	case req.Weather != nil:
		weather = *req.Weather
	case req.Location != nil:
		ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
		defer cancel()
		wd, err := a.weather.Current(ctx, req.Location.Latitude, req.Location.Longitude)
		if err != nil {
			// Weather is a nice-to-have; a recipe still comes out.
			log.Println("weather lookup failed, using defaults:", err)
		} else {
			weather = wd
		}
	}

	rec, err := engine.Compute(req.Profile, req.Bean, req.Targets, weather, a.catalog)
	if err != nil {
		var inv *engine.InvalidInputError
		if errors.As(err, &inv) {
			http.Error(w, inv.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "compute error", http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(recipeResp{Recipe: rec, Weather: weather})
}

// ---- reference data ----

func (a *App) handleListOrigins(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(a.catalog.Origins())
}

func (a *App) handleListVarietals(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(a.catalog.Varietals())
}

func (a *App) handleListBlends(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(a.catalog.Blends())
}

func (a *App) handleListGrinders(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(catalog.Grinders())
}

func (a *App) handleListMachines(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(catalog.Machines())
}

func (a *App) handleListBaskets(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(catalog.Baskets())
}

// ---- weather proxies (frontend convenience) ----

// handleWeather resolves current conditions for lat/lon query params.
func (a *App) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err1 != nil || err2 != nil {
		http.Error(w, "lat and lon query params are required", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	wd, err := a.weather.Current(ctx, lat, lon)
	if err != nil {
		http.Error(w, "weather service unavailable", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(wd)
}

// handleGeocode resolves a city name to candidate coordinates.
func (a *App) handleGeocode(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		http.Error(w, "city query param is required", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	places, err := a.weather.Geocode(ctx, city)
	if err != nil {
		http.Error(w, "geocoding service unavailable", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(places)
}

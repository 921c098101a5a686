package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWeatherClient_CurrentAveragesHourly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("path = %s, want /v1/forecast", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly":{"temperature_2m":[20,22,24],"relative_humidity_2m":[40,50,60]}}`))
	}))
	defer srv.Close()

	c := newWeatherClient(srv.URL, srv.URL)
	wd, err := c.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if wd.TemperatureC != 22 {
		t.Errorf("temperature = %v, want mean 22", wd.TemperatureC)
	}
	if wd.Humidity != 50 {
		t.Errorf("humidity = %v, want mean 50", wd.Humidity)
	}
}

func TestWeatherClient_CurrentEmptyForecastFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly":{"temperature_2m":[],"relative_humidity_2m":[]}}`))
	}))
	defer srv.Close()

	c := newWeatherClient(srv.URL, srv.URL)
	if _, err := c.Current(context.Background(), 0, 0); err == nil {
		t.Error("expected error for empty hourly arrays")
	}
}

func TestWeatherClient_CurrentNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newWeatherClient(srv.URL, srv.URL)
	if _, err := c.Current(context.Background(), 0, 0); err == nil {
		t.Error("expected error for non-2xx response")
	}
}

func TestWeatherClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("path = %s, want /v1/search", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "São Paulo" {
			t.Errorf("name = %q, want São Paulo", got)
		}
		w.Write([]byte(`{"results":[{"name":"São Paulo","latitude":-23.55,"longitude":-46.63,"country":"Brazil"}]}`))
	}))
	defer srv.Close()

	c := newWeatherClient(srv.URL, srv.URL)
	places, err := c.Geocode(context.Background(), "São Paulo")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if len(places) != 1 || places[0].Latitude != -23.55 {
		t.Errorf("places = %+v, want one São Paulo result", places)
	}
}

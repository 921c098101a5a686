// file: weather_client.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"dialin/engine"

	"github.com/montanaflynn/stats"
)

// WeatherClient talks to Open-Meteo compatible forecast and geocoding
// endpoints. It reduces the hourly arrays for the next few hours to one
// snapshot, which is all the engine consumes.
type WeatherClient struct {
	httpc      *http.Client
	weatherURI string
	geocodeURI string
}

func newWeatherClient(weatherURI, geocodeURI string) *WeatherClient {
	return &WeatherClient{
		httpc:      &http.Client{Timeout: 10 * time.Second},
		weatherURI: weatherURI,
		geocodeURI: geocodeURI,
	}
}

type forecastResp struct {
	Hourly struct {
		Temperature2m      []float64 `json:"temperature_2m"`
		RelativeHumidity2m []float64 `json:"relative_humidity_2m"`
	} `json:"hourly"`
}

// GeoPlace is one geocoding candidate.
type GeoPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
}

type geocodeResp struct {
	Results []GeoPlace `json:"results"`
}

// Current fetches the next hours' forecast and averages it into a single
// temperature/humidity pair.
func (c *WeatherClient) Current(ctx context.Context, lat, lon float64) (engine.WeatherData, error) {
	u := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&hourly=temperature_2m,relative_humidity_2m&forecast_hours=6",
		c.weatherURI, lat, lon)

	var out forecastResp
	if err := c.getJSON(ctx, u, &out); err != nil {
		return engine.WeatherData{}, fmt.Errorf("forecast call failed: %w", err)
	}

	temp, err := stats.Mean(out.Hourly.Temperature2m)
	if err != nil {
		return engine.WeatherData{}, fmt.Errorf("forecast returned no temperature data")
	}
	hum, err := stats.Mean(out.Hourly.RelativeHumidity2m)
	if err != nil {
		return engine.WeatherData{}, fmt.Errorf("forecast returned no humidity data")
	}
	return engine.WeatherData{TemperatureC: temp, Humidity: hum}, nil
}

// Geocode resolves a city name to candidate places.
func (c *WeatherClient) Geocode(ctx context.Context, city string) ([]GeoPlace, error) {
	u := fmt.Sprintf("%s/v1/search?name=%s&count=5", c.geocodeURI, url.QueryEscape(city))

	var out geocodeResp
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("geocode call failed: %w", err)
	}
	return out.Results, nil
}

func (c *WeatherClient) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2xx: %s, body: %s", resp.Status, string(data))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

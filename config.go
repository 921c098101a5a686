package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	WeatherURI string
	GeocodeURI string
	JWTSecret  string
	Port       string
}

func mustConfig() Config {
	// Local development keeps settings in .env; absence is fine in prod.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:   getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getenv("MONGO_DB", "dialin"),
		WeatherURI: getenv("WEATHER_URL", "https://api.open-meteo.com"),
		GeocodeURI: getenv("GEOCODE_URL", "https://geocoding-api.open-meteo.com"),
		JWTSecret:  getenv("JWT_SECRET", "change_me"),
		Port:       getenv("PORT", "8080"),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

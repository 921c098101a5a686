package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000", "https://*.run.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", a.handleRegister)
		api.Post("/auth/login", a.handleLogin)

		// Computing a recipe needs no account.
		api.Post("/recipe", a.handleRecipe)

		api.Route("/reference", func(rr chi.Router) {
			rr.Get("/origins", a.handleListOrigins)
			rr.Get("/varietals", a.handleListVarietals)
			rr.Get("/blends", a.handleListBlends)
			rr.Get("/grinders", a.handleListGrinders)
			rr.Get("/machines", a.handleListMachines)
			rr.Get("/baskets", a.handleListBaskets)
		})

		api.Get("/weather", a.handleWeather)
		api.Get("/geocode", a.handleGeocode)

		api.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me", a.handleMe)

			pr.Route("/profiles", func(fr chi.Router) {
				fr.Get("/", a.handleListProfiles)
				fr.Post("/", a.handleCreateProfile)
				fr.Get("/{id}", a.handleGetProfile)
				fr.Put("/{id}", a.handleUpdateProfile)
				fr.Delete("/{id}", a.handleDeleteProfile)
			})
		})
	})

	return r
}

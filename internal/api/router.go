/**
 * @description
 * This file sets up the HTTP router for the banking service using the `chi`
 * routing library. It defines all the API routes and applies the shared
 * middleware: CORS, security headers, request logging, rate limiting, and
 * authentication for the account endpoints.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: The routing library.
 * - github.com/go-chi/cors: CORS middleware.
 * - The service's internal packages for handlers and middleware.
 */
package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/oriemcapital/banking-service/internal/app"
	"github.com/oriemcapital/banking-service/internal/config"
	"github.com/oriemcapital/banking-service/pkg/middleware"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(cfg *config.Config, db Pinger, accounts *app.AccountService, auth *app.AuthService) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(secureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	limiter := middleware.NewRateLimiter(100, 100*time.Millisecond)

	r.Get("/health", healthHandler(db))
	r.Get("/version", versionHandler(cfg))

	authHandler := NewAuthHandler(auth)
	accountHandler := NewAccountHandler(accounts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		// Group routes that require authentication. The rate limiter sits
		// behind auth so it can key buckets by user instead of IP.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTSecret))
			r.Use(limiter.Middleware)

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", accountHandler.OpenAccount)
				r.Get("/", accountHandler.ListAccounts)
				r.Get("/{id}", accountHandler.GetAccount)
				r.Put("/{id}", accountHandler.UpdateAccount)
				r.Delete("/{id}", accountHandler.CloseAccount)
			})
		})
	})

	return r
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if db == nil || db.Ping(ctx) != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "error",
				"database": "unavailable",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "connected",
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func versionHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version":     config.Version,
			"environment": cfg.AppEnv,
		})
	}
}

// requestLogger logs method, path, and duration of each HTTP request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s - %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

// secureHeaders attaches basic security headers to all responses.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		next.ServeHTTP(w, r)
	})
}

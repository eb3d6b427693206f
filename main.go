// SwiftFix server entry point: loads configuration, connects to Postgres,
// runs migrations, wires the services and handlers, and serves the HTTP API
// until interrupted.
//
// @title SwiftFix API
// @version 1.0
// @description Job marketplace API: account credentials, worker application intake with clearance-certificate upload, and the redacted public application listing.
// @contact.name API Support
// @contact.email support@swiftfix.example
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/swiftfix/swiftfix-go/apperror"
	"github.com/swiftfix/swiftfix-go/applications"
	"github.com/swiftfix/swiftfix-go/auth"
	"github.com/swiftfix/swiftfix-go/config"
	"github.com/swiftfix/swiftfix-go/db"
	_ "github.com/swiftfix/swiftfix-go/docs" // generated Swagger spec, registered via init
	"github.com/swiftfix/swiftfix-go/uploads"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store, err := uploads.NewFileStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	authService := auth.NewService(pool, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	applicationRepo := applications.NewRepository(pool)
	applicationService := applications.NewService(applicationRepo, store)
	applicationHandler := applications.NewHandler(applicationService)

	r := newRouter(cfg.Upload.Dir, authHandlers, applicationHandler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// newRouter assembles the middleware stack and routes around the two handler
// sets. uploadDir backs the static certificate route.
func newRouter(uploadDir string, authHandlers *auth.Handlers, applicationHandler *applications.Handler) chi.Router {
	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers with the apperror JSON shape instead of an
	// empty 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					auth.WriteError(ww, r, apperror.NewInternalError("Server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/signup", authHandlers.HandleSignup())
	r.Post("/login", authHandlers.HandleLogin())
	r.Post("/apply", applicationHandler.HandleSubmit())
	r.Get("/applications", applicationHandler.HandleList())

	// Stored clearance certificates, served by their persisted names.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return r
}

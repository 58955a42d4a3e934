package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/philiapseudo/jikoni-backoffice/internal/config"
	"github.com/philiapseudo/jikoni-backoffice/internal/modules/analytics"
	"github.com/philiapseudo/jikoni-backoffice/internal/modules/auth"
	"github.com/philiapseudo/jikoni-backoffice/internal/modules/feedback"
	"github.com/philiapseudo/jikoni-backoffice/internal/modules/menu"
	"github.com/philiapseudo/jikoni-backoffice/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Accounts & Auth ─────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	authorizer := auth.NewAuthorizer(cfg.AllowedEmails)

	// ── Dashboard (whitelist-gated) ─────────────────────────
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.JWTSecret, authorizer))

		menuRepo := menu.NewPostgresRepository(db)
		menuService := menu.NewService(menuRepo)
		menu.NewHandler(menuService).RegisterRoutes(r)

		feedbackRepo := feedback.NewPostgresRepository(db)
		feedbackService := feedback.NewService(feedbackRepo)
		feedback.NewHandler(feedbackService).RegisterRoutes(r)

		analyticsRepo := analytics.NewPostgresRepository(db)
		analyticsService := analytics.NewService(analyticsRepo, cfg.UTCOffsetMinutes)
		analytics.NewHandler(analyticsService).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("Jikoni back-office API starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

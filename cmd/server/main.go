package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"solbooking/internal/api"
	"solbooking/internal/auth"
	"solbooking/internal/config"
	"solbooking/internal/service"
	"solbooking/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	st := openStore(cfg)

	if err := st.EnsureHeaders(context.Background()); err != nil {
		log.Printf("WARNING: could not ensure sheet headers at startup: %v", err)
	}

	bookingSvc := service.NewBookingService(st)
	notifier := service.NewNotificationService(cfg.SMSEnabled)
	authSvc := service.NewAdminAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)

	sheetHandler := api.NewSheetHandler(bookingSvc, notifier)
	adminAuthHandler := api.NewAdminAuthHandler(authSvc)
	adminHandler := api.NewAdminHandler(bookingSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/exec", sheetHandler.Actions).Methods("GET", "POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")

	startSweep(st)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(r)))
}

// openStore picks the storage backend: Google Sheets when configured,
// then Postgres, then an in-memory sheet that loses data on restart.
func openStore(cfg config.Config) store.SheetStore {
	if cfg.SpreadsheetID != "" && cfg.GoogleCredentialsFile != "" {
		st, err := store.NewGoogleSheetsStore(context.Background(), cfg.GoogleCredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			log.Fatalf("Failed to open Google Sheets store: %v", err)
		}
		log.Printf("Using Google Sheets store (spreadsheet %s)", cfg.SpreadsheetID)
		return st
	}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		log.Println("Using Postgres store")
		return store.NewPostgresStore(db)
	}
	log.Println("WARNING: no SPREADSHEET_ID or DATABASE_URL set, using in-memory store")
	return store.NewMemoryStore()
}

// startSweep schedules the hourly job that flips past appointments to
// Completed, for backends that can list and update by row id.
func startSweep(st store.SheetStore) {
	sweepable, ok := st.(store.SweepStore)
	if !ok {
		log.Println("Store does not support the completion sweep, skipping cron setup")
		return
	}
	sweep := service.NewSweepService(sweepable)
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		if err := sweep.CompletePastAppointments(context.Background()); err != nil {
			log.Printf("Completion sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule completion sweep: %v", err)
		return
	}
	c.Start()
}

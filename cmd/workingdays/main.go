package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"github.com/Jdash99/workingdays-back/internal/app"
	"github.com/Jdash99/workingdays-back/internal/commands"
)

func main() {
	// Check for subcommands
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		commands.HashPassword(os.Args[2:])
		return
	}

	// Parse flags
	port := flag.Int("port", 8080, "Port to listen on")
	flag.BoolVar(&app.EditMode, "edit", false, "Enable edit mode (custom holiday overrides)")
	flag.Parse()

	// Load and validate auth credentials (if edit mode)
	if app.EditMode {
		if err := app.LoadAuthCredentials(); err != nil {
			log.Fatalf("Failed to load auth credentials: %v", err)
		}
	}

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/config", app.GetConfig)
	mux.HandleFunc("/api/analyze", app.HandleAnalyze)
	mux.HandleFunc("/api/add-working-days", app.HandleAddWorkingDays)
	mux.HandleFunc("/api/holidays", app.HandleHolidays)
	mux.HandleFunc("/api/download", app.HandleDownload)
	mux.HandleFunc("/api/subscribe/", app.HandleSubscribe)

	// Edit mode routes (protected with Basic Auth)
	if app.EditMode {
		mux.HandleFunc("/api/holidays/add", app.RequireAuth(app.AddHoliday))
		mux.HandleFunc("/api/holidays/delete", app.RequireAuth(app.DeleteHoliday))
	}

	// The API is consumed from browser frontends on other origins
	handler := cors.AllowAll().Handler(mux)

	mode := app.ModeServe
	if app.EditMode {
		mode = app.ModeEdit
	}

	log.Printf("Starting workingdays backend in %s mode on http://localhost:%d", mode, *port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), handler); err != nil {
		log.Fatal(err)
	}
}

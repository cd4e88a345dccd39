package main

import (
	"log"
	"net/http"

	"github.com/Aayush-jas123/vcloak-platform/internal/config"
	"github.com/Aayush-jas123/vcloak-platform/internal/logger"
	"github.com/Aayush-jas123/vcloak-platform/internal/middleware"
	"github.com/Aayush-jas123/vcloak-platform/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and seed the default admin
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

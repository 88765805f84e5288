package main

import (
	"log"
	"os"

	"github.com/existflow/ironcal/internal/db"
	"github.com/existflow/ironcal/server"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		path, err := db.DefaultDBPath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
		dsn = path
	}

	database, err := db.Open(dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	srv := server.New(database)
	defer func() {
		if err := srv.Close(); err != nil {
			log.Printf("Error closing server: %v", err)
		}
	}()

	log.Printf("IronCal server starting on :%s", port)
	if err := srv.Start(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

package main

import (
	"database/sql"
	"log"
	"traverse-adjustment-service/internal/adapters/cache"
	"traverse-adjustment-service/internal/config"
	"traverse-adjustment-service/internal/platform/db"
)

func main() {
	if !config.Load() {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		conn *sql.DB
		err  error
	)

	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err = db.Open(databaseURL)
	} else {
		sqlitePath := config.Get("SQLITE_PATH", "data/cache.db")
		log.Printf("DATABASE_URL not set, using sqlite path=%s", sqlitePath)
		conn, err = db.OpenSQLite(sqlitePath)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing adjustment cache schema...")
	if err := cache.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}

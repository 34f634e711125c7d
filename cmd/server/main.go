package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"traverse-adjustment-service/internal/adapters/cache"
	"traverse-adjustment-service/internal/api"
	"traverse-adjustment-service/internal/config"
	"traverse-adjustment-service/internal/platform/db"
	"traverse-adjustment-service/internal/ports"
	"traverse-adjustment-service/internal/services"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires the optional adjustment cache behind its port and starts the HTTP server.
func main() {
	if !config.Load() {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	backend := strings.ToLower(config.Get("CACHE_BACKEND", "none"))

	lengthMode, err := services.ParseLengthMode(config.Get("LENGTH_MODE", string(services.LengthByDistance)))
	if err != nil {
		log.Fatal(err)
	}
	propagationMode, err := services.ParsePropagationMode(config.Get("PROPAGATION_MODE", string(services.PropagateCumulative)))
	if err != nil {
		log.Fatal(err)
	}
	defaults := services.AdjustOptions{LengthMode: lengthMode, PropagationMode: propagationMode}

	ttl, err := config.GetDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	adjCache, closeCache, err := openCache(backend, ttl)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	router := api.NewRouter(services.NewAdjuster(adjCache), defaults)

	log.Printf("Server listening addr=:%s cache=%s length_mode=%s propagation_mode=%s", port, backend, lengthMode, propagationMode)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCache builds the configured adjustment cache. A nil cache disables memoisation.
func openCache(backend string, ttl time.Duration) (ports.AdjustmentCache, func(), error) {
	switch backend {
	case "", "none":
		return nil, func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.Get("REDIS_ADDR", "localhost:6379"),
			Password: config.Get("REDIS_PASSWORD", ""),
		})
		return cache.NewRedisAdjustmentCache(client, ttl), func() { _ = client.Close() }, nil

	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			return nil, nil, fmt.Errorf("open cache: DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		return sqlCache(conn, db.DriverPostgres, ttl)

	case "sqlite":
		conn, err := db.OpenSQLite(config.Get("SQLITE_PATH", "data/cache.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		return sqlCache(conn, db.DriverSQLite, ttl)

	default:
		return nil, nil, fmt.Errorf("open cache: unknown CACHE_BACKEND %q", backend)
	}
}

func sqlCache(conn *sql.DB, driver string, ttl time.Duration) (ports.AdjustmentCache, func(), error) {
	// Create the table on startup so local runs work without dbtool.
	if err := cache.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	return cache.NewSQLAdjustmentCache(conn, driver, ttl), func() { _ = conn.Close() }, nil
}

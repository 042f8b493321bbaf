package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "transactionanalytics/docs"
)

// api holds the engine handle the handlers query. No package-level
// database state: the store is wired in at construction.
type api struct {
	engine *Engine
}

// @title Transaction Analytics API
// @version 1.0
// @description Month-scoped transaction listing and aggregation API for a dashboard frontend
// @BasePath /
func main() {
	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Database connection with defaults
	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "transactionanalytics")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	ctx := context.Background()

	// Connect to database with retry logic
	var pool *pgxpool.Pool
	var err error
	maxRetries := 30
	retryInterval := time.Second * 2

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, connStr)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = pool.Ping(ctx); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			pool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer pool.Close()

	// Run database migrations over a database/sql connection
	migrationsPath := filepath.Join(".", "db", "migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}

		log.Println("Running database migrations...")
		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		migrationDB.Close()
		log.Println("Database migrations completed successfully")
	}

	store := newPostgresStore(pool)

	// One-time dataset load; a populated store makes this a no-op
	seedURL := getEnvOrDefault("SEED_URL", defaultSeedURL)
	if err := seedTransactions(ctx, store, seedURL); err != nil {
		log.Fatal("Error seeding transactions: ", err)
	}

	r := newRouter(NewEngine(store))

	port := getEnvOrDefault("PORT", "8080")

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// newRouter configures the gin engine with CORS, all API routes and the
// swagger UI. Tests build their router through the same function so the
// wiring never diverges.
func newRouter(engine *Engine) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	a := &api{engine: engine}

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})
	r.GET("/api/transactions", a.getTransactions)
	r.GET("/api/statistics", a.getStatistics)
	r.GET("/api/bar-chart", a.getBarChart)
	r.GET("/api/pie-chart", a.getPieChart)
	r.GET("/api/summary", a.getSummary)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

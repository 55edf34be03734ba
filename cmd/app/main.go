package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dispatchops/cmd"
	"dispatchops/internal/adapters/out/postgres/auditrepo"
	"dispatchops/internal/adapters/out/postgres/clientrepo"
	"dispatchops/internal/adapters/out/postgres/executorrepo"
	"dispatchops/internal/adapters/out/postgres/orderrepo"
	"dispatchops/internal/adapters/out/postgres/revokedrepo"
	"dispatchops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	var gormDB *gorm.DB
	if configs.StorageDriver == "postgres" {
		gormDB = mustConnectDB(configs)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := jobs.NewJobManager(root.NewExpireVouchersCommandHandler(), slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		StorageDriver:   envOrDefault("STORAGE_DRIVER", "memory"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		AssistantAPIURL: os.Getenv("ASSISTANT_API_URL"),
		AssistantAPIKey: os.Getenv("ASSISTANT_API_KEY"),
		AssistantModel:  os.Getenv("ASSISTANT_MODEL"),
		SeedDemoData:    os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&clientrepo.ClientDTO{},
		&executorrepo.ExecutorDTO{},
		&auditrepo.EntryDTO{},
		&revokedrepo.RevokedTokenDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.NewHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

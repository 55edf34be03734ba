package cmd

// Config carries every environment-driven setting the application needs.
// Assembled from .env / process environment in cmd/app.
type Config struct {
	HTTPPort string

	// StorageDriver selects the persistence backend: "memory" or "postgres".
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AssistantAPIURL string
	AssistantAPIKey string
	AssistantModel  string

	// SeedDemoData loads the demo roster and orders into the memory
	// driver on startup. Ignored for postgres.
	SeedDemoData bool
}

package internal

const (
	DotEnvPath          = "./.env"
	MigrationsDir       = "migrations"
	DefaultManifestPath = "algosnip.yml"
	APIKeyHeader        = "X-Algosnip-API-Key"
)

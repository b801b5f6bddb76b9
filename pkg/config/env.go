package config

// EnvPrefix scopes every environment variable consumed by the app.
const EnvPrefix = "MEMORYWALL"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "MEMORYWALL_DB_DSN"
	EnvDBHost = "MEMORYWALL_DB_HOST"
	EnvDBUser = "MEMORYWALL_DB_USER"
	EnvDBName = "MEMORYWALL_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

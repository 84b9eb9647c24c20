package config

// EnvPrefix is the envconfig prefix for all LocalLink settings.
const EnvPrefix = "LOCALLINK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names, kept in one place so tests and deployment
// manifests reference the same strings.
const (
	EnvAppEnv     = "LOCALLINK_APP_ENV"
	EnvPort       = "LOCALLINK_APP_PORT"
	EnvLogLevel   = "LOCALLINK_LOG_LEVEL"
	EnvDBDSN      = "LOCALLINK_DB_DSN"
	EnvDBHost     = "LOCALLINK_DB_HOST"
	EnvDBUser     = "LOCALLINK_DB_USER"
	EnvDBName     = "LOCALLINK_DB_NAME"
	EnvRedisURL   = "LOCALLINK_REDIS_URL"
	EnvJWTSecret  = "LOCALLINK_JWT_SECRET"
	EnvJWTIssuer  = "LOCALLINK_JWT_ISSUER"
	EnvJWTExpMins = "LOCALLINK_JWT_EXPIRATION_MINUTES"
	EnvUseSQLite  = "LOCALLINK_USE_SQLITE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

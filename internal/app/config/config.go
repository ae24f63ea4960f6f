package config

import (
	"annuaire-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			SearchMaxPageSize:       utils.GetEnvInt("APP_SEARCH_MAX_PAGE_SIZE", 50),
		},
		Annuaire: Annuaire{
			// Base URL and credential are required: startup fails fast
			// instead of degrading to a placeholder at call time.
			BaseUrl:            utils.MustGetEnvString("ANNUAIRE_BASE_URL"),
			APIKey:             utils.MustGetEnvString("ANNUAIRE_API_KEY"),
			CallsPerSecond:     utils.GetEnvFloat("ANNUAIRE_CALLS_PER_SECOND", 5),
			CallQuotaWindowSec: utils.GetEnvInt("ANNUAIRE_CALL_QUOTA_WINDOW_SEC", 60),
			CallQuotaMax:       utils.GetEnvInt("ANNUAIRE_CALL_QUOTA_MAX", 200),
		},
	}
}

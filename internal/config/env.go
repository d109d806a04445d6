package config

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "FMP_"

// Full environment variable names, for error messages and documentation.
//
//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "FMP_PORT"
	EnvLogLevel        = "FMP_LOG_LEVEL"
	EnvShutdownTimeout = "FMP_SHUTDOWN_TIMEOUT"
	EnvCORSOrigins     = "FMP_CORS_ORIGINS"

	// Data
	EnvDataDir      = "FMP_DATA_DIR"
	EnvDatabasePath = "FMP_DATABASE_PATH"

	// Catalog
	EnvCatalogSeedFile       = "FMP_CATALOG_SEED_FILE"
	EnvCatalogSeedKey        = "FMP_CATALOG_SEED_KEY"
	EnvCatalogReloadInterval = "FMP_CATALOG_RELOAD_INTERVAL"
	EnvCatalogMinScore       = "FMP_CATALOG_MIN_SCORE"
	EnvCatalogReloadBurst    = "FMP_CATALOG_RELOAD_BURST"
	EnvCatalogReloadRefill   = "FMP_CATALOG_RELOAD_REFILL"

	// Chat
	EnvChatRateBurst        = "FMP_CHAT_RATE_BURST"
	EnvChatRateRefill       = "FMP_CHAT_RATE_REFILL"
	EnvChatRateDaily        = "FMP_CHAT_RATE_DAILY"
	EnvChatIPRateBurst      = "FMP_CHAT_IP_RATE_BURST"
	EnvChatIPRateRefill     = "FMP_CHAT_IP_RATE_REFILL"
	EnvChatIPRateDaily      = "FMP_CHAT_IP_RATE_DAILY"
	EnvChatMaxMessageLength = "FMP_CHAT_MAX_MESSAGE_LENGTH"

	// R2 attachment links
	EnvR2Enabled         = "FMP_R2_ENABLED"
	EnvR2Endpoint        = "FMP_R2_ENDPOINT"
	EnvR2AccessKeyID     = "FMP_R2_ACCESS_KEY_ID"
	EnvR2SecretAccessKey = "FMP_R2_SECRET_ACCESS_KEY"
	EnvR2BucketName      = "FMP_R2_BUCKET_NAME"
	EnvR2PresignTTL      = "FMP_R2_PRESIGN_TTL"

	// Sentry
	EnvSentryDSN         = "FMP_SENTRY_DSN"
	EnvSentryToken       = "FMP_SENTRY_TOKEN"
	EnvSentryHost        = "FMP_SENTRY_HOST"
	EnvSentryEnvironment = "FMP_SENTRY_ENVIRONMENT"
	EnvSentryRelease     = "FMP_SENTRY_RELEASE"
	EnvSentrySampleRate  = "FMP_SENTRY_SAMPLE_RATE"

	// Better Stack
	EnvBetterStackToken   = "FMP_BETTERSTACK_TOKEN"
	EnvBetterStackTimeout = "FMP_BETTERSTACK_TIMEOUT"
	EnvBetterStackQueue   = "FMP_BETTERSTACK_QUEUE_SIZE"

	// Metrics auth
	EnvMetricsUsername = "FMP_METRICS_USERNAME"
	EnvMetricsPassword = "FMP_METRICS_PASSWORD"
)

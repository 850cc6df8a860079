package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySFDBType string = "SF_DB_TYPE"
	EnvKeySFDbPath string = "SF_DB_PATH"
	EnvKeySFDbDSN  string = "SF_DB_DSN"

	EnvKeySFHttpHostPort string = "SF_HTTP_HOST_PORT"
	EnvKeySFGrpcHostPort string = "SF_GRPC_HOST_PORT"

	EnvKeySFDefaultRate  string = "SF_DEFAULT_RATE"
	EnvKeySFDefaultBurst string = "SF_DEFAULT_BURST"

	EnvKeySFLookbackMinutes string = "SF_LOOKBACK_MINUTES"

	EnvKeySFLogDir        string = "SF_LOG_DIR"
	EnvKeySFLogMaxSizeMB  string = "SF_LOG_MAX_SIZE_MB"
	EnvKeySFLogMaxBackups string = "SF_LOG_MAX_BACKUPS"
	EnvKeySFLogMaxAgeDays string = "SF_LOG_MAX_AGE_DAYS"

	EnvKeySFRedisAddr     string = "SF_REDIS_ADDR"
	EnvKeySFRedisPassword string = "SF_REDIS_PASSWORD"
	EnvKeySFRedisDB       string = "SF_REDIS_DB"
	EnvKeySFRedisStateTTL string = "SF_REDIS_STATE_TTL"

	EnvKeySFInfluxURL    string = "SF_INFLUX_URL"
	EnvKeySFInfluxToken  string = "SF_INFLUX_TOKEN"
	EnvKeySFInfluxOrg    string = "SF_INFLUX_ORG"
	EnvKeySFInfluxBucket string = "SF_INFLUX_BUCKET"

	EnvKeySFKafkaBrokers       string = "SF_KAFKA_BROKERS"
	EnvKeySFKafkaReadingsTopic string = "SF_KAFKA_READINGS_TOPIC"
	EnvKeySFKafkaAlertsTopic   string = "SF_KAFKA_ALERTS_TOPIC"
	EnvKeySFKafkaGroupID       string = "SF_KAFKA_GROUP_ID"

	EnvKeySFMqttBroker   string = "SF_MQTT_BROKER"
	EnvKeySFMqttClientID string = "SF_MQTT_CLIENT_ID"

	DefaultBuildingID string = "A"
	MinFloor          int    = 1
	MaxFloor          int    = 3

	ServiceName    string = "SmartFloors"
	ServiceVersion string = "1.0.0"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameStream        string = "stream"
	LoggerNameSink          string = "sink"
	LoggerFieldCategory     string = "category"

	LoggerCategoryReading    string = "reading"
	LoggerCategoryAlert      string = "alert"
	LoggerCategoryPrediction string = "prediction"
	LoggerCategoryKafka      string = "kafka"
	LoggerCategoryMqtt       string = "mqtt"
	LoggerCategoryRedis      string = "redis"
	LoggerCategoryInflux     string = "influx"
)

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"liyu1981.xyz/smartfloors-service/pkg/cache"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/db"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
	"liyu1981.xyz/smartfloors-service/pkg/stream"
	"liyu1981.xyz/smartfloors-service/pkg/tsdb"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultHttpHostPort = ":1080"
	DefaultRate         = 5.0
	DefaultBurst        = 10
)

type Config struct {
	DBType       string
	HttpHostPort string
	GrpcHostPort string

	DefaultRate  float64
	DefaultBurst int
	Lookback     time.Duration

	Redis  cache.RedisConfig
	Influx tsdb.InfluxConfig
	Kafka  stream.KafkaConfig
	Mqtt   stream.MqttConfig
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

func (c *Config) InfluxEnabled() bool {
	return c.Influx.URL != ""
}

func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func (c *Config) MqttEnabled() bool {
	return c.Mqtt.Broker != ""
}

// Load reads the .env files (default ".env") and then the environment. A
// missing .env is only an error in development.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if common.IsDevelopment() || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load .env, copy .env.example to .env first if in development: %w", err)
		}
	}

	defaultRate, err := envFloat(common.EnvKeySFDefaultRate, DefaultRate)
	if err != nil {
		return nil, err
	}
	defaultBurst, err := envStrictInt(common.EnvKeySFDefaultBurst, DefaultBurst)
	if err != nil {
		return nil, err
	}
	lookbackMinutes, err := envStrictInt(common.EnvKeySFLookbackMinutes, int(monitor.DefaultLookback/time.Minute))
	if err != nil {
		return nil, err
	}
	redisDB, err := envStrictInt(common.EnvKeySFRedisDB, 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBType:       common.EnvString(common.EnvKeySFDBType, "file"),
		HttpHostPort: common.EnvString(common.EnvKeySFHttpHostPort, DefaultHttpHostPort),
		GrpcHostPort: common.EnvString(common.EnvKeySFGrpcHostPort, ""),
		DefaultRate:  defaultRate,
		DefaultBurst: defaultBurst,
		Lookback:     time.Duration(lookbackMinutes) * time.Minute,
		Redis: cache.RedisConfig{
			Addr:     common.EnvString(common.EnvKeySFRedisAddr, ""),
			Password: common.EnvString(common.EnvKeySFRedisPassword, ""),
			DB:       redisDB,
			StateTTL: common.EnvDuration(common.EnvKeySFRedisStateTTL, cache.DefaultStateTTL),
		},
		Influx: tsdb.InfluxConfig{
			URL:    common.EnvString(common.EnvKeySFInfluxURL, ""),
			Token:  common.EnvString(common.EnvKeySFInfluxToken, ""),
			Org:    common.EnvString(common.EnvKeySFInfluxOrg, ""),
			Bucket: common.EnvString(common.EnvKeySFInfluxBucket, "smartfloors"),
		},
		Kafka: stream.KafkaConfig{
			Brokers:       common.EnvList(common.EnvKeySFKafkaBrokers, nil),
			GroupID:       common.EnvString(common.EnvKeySFKafkaGroupID, "smartfloors-service"),
			ReadingsTopic: common.EnvString(common.EnvKeySFKafkaReadingsTopic, "smartfloors.readings"),
			AlertsTopic:   common.EnvString(common.EnvKeySFKafkaAlertsTopic, "smartfloors.alerts"),
		},
		Mqtt: stream.MqttConfig{
			Broker:   common.EnvString(common.EnvKeySFMqttBroker, ""),
			ClientID: common.EnvString(common.EnvKeySFMqttClientID, "smartfloors-service"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := db.Dialector(c.DBType); !ok {
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, common.EnvKeySFDBType, c.DBType)
	}
	if c.DBType == "postgres" && common.EnvString(common.EnvKeySFDbDSN, "") == "" {
		return fmt.Errorf("%w: %s=postgres needs %s", ErrInvalidConfig, common.EnvKeySFDBType, common.EnvKeySFDbDSN)
	}
	if c.DefaultRate < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, common.EnvKeySFDefaultRate)
	}
	if c.DefaultBurst < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, common.EnvKeySFDefaultBurst)
	}
	if c.Lookback <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, common.EnvKeySFLookbackMinutes)
	}
	if c.InfluxEnabled() && (c.Influx.Org == "" || c.Influx.Token == "") {
		return fmt.Errorf("%w: %s needs %s and %s", ErrInvalidConfig,
			common.EnvKeySFInfluxURL, common.EnvKeySFInfluxOrg, common.EnvKeySFInfluxToken)
	}
	return nil
}

func envFloat(key string, defaultValue float64) (float64, error) {
	raw := common.EnvString(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s should be a float64 value: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}

// envStrictInt differs from common.EnvInt by rejecting malformed values.
func envStrictInt(key string, defaultValue int) (int, error) {
	raw := common.EnvString(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s should be an int value: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

const DefaultStateTTL = 10 * time.Minute

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	StateTTL time.Duration
}

// RedisSink keeps the live state of each floor and publishes readings and
// alerts on pub/sub channels.
type RedisSink struct {
	client   *redis.Client
	stateTTL time.Duration
}

func NewRedisSink(ctx context.Context, cfg RedisConfig) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.StateTTL
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &RedisSink{client: client, stateTTL: ttl}, nil
}

func FloorStateKey(buildingID string, floor int) string {
	return fmt.Sprintf("floor:%s:%d:state", buildingID, floor)
}

func FloorReadingsChannel(buildingID string, floor int) string {
	return fmt.Sprintf("floor:%s:%d:readings", buildingID, floor)
}

func BuildingAlertsChannel(buildingID string) string {
	return fmt.Sprintf("building:%s:alerts", buildingID)
}

func stateFields(reading *models.Reading) map[string]any {
	return map[string]any{
		"reading_id":  reading.ID,
		"building":    reading.BuildingID,
		"floor":       reading.Floor,
		"temp_c":      reading.Temperature,
		"humedad_pct": reading.Humidity,
		"energia_kw":  reading.Power,
		"timestamp":   reading.Timestamp.UnixNano(),
	}
}

func (r *RedisSink) Name() string {
	return "redis"
}

func (r *RedisSink) WriteReading(ctx context.Context, reading *models.Reading) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	stateKey := FloorStateKey(reading.BuildingID, reading.Floor)

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, stateKey, stateFields(reading))
	pipe.Expire(ctx, stateKey, r.stateTTL)
	pipe.Publish(ctx, FloorReadingsChannel(reading.BuildingID, reading.Floor), payload)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline failed: %w", err)
	}
	return nil
}

func (r *RedisSink) WriteAlert(ctx context.Context, alert *models.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	return r.client.Publish(ctx, BuildingAlertsChannel(alert.BuildingID), payload).Err()
}

// GetFloorState returns the latest reading cached for a floor, or nil when
// the state expired or was never written.
func (r *RedisSink) GetFloorState(ctx context.Context, buildingID string, floor int) (*models.Reading, error) {
	values, err := r.client.HGetAll(ctx, FloorStateKey(buildingID, floor)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	reading, err := readingFromState(values)
	if err != nil {
		logger := common.GetCategoryLogger(common.LoggerNameSink, common.LoggerCategoryRedis)
		logger.Warn("Corrupt floor state", zap.String("key", FloorStateKey(buildingID, floor)), zap.Error(err))
		return nil, err
	}
	return reading, nil
}

func readingFromState(values map[string]string) (*models.Reading, error) {
	reading := &models.Reading{BuildingID: values["building"]}

	var err error
	parseFloat := func(name string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = strconv.ParseFloat(values[name], 64)
		return v
	}
	reading.Temperature = parseFloat("temp_c")
	reading.Humidity = parseFloat("humedad_pct")
	reading.Power = parseFloat("energia_kw")
	if err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	if reading.Floor, err = strconv.Atoi(values["floor"]); err != nil {
		return nil, fmt.Errorf("parse floor: %w", err)
	}
	id, err := strconv.ParseUint(values["reading_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse reading_id: %w", err)
	}
	reading.ID = uint(id)
	ts, err := strconv.ParseInt(values["timestamp"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	reading.Timestamp = time.Unix(0, ts).UTC()

	return reading, nil
}

func (r *RedisSink) Close() error {
	return r.client.Close()
}

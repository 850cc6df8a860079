package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func EnvString(key string, defaultValue string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return defaultValue
}

// EnvInt falls back to defaultValue when the key is unset or not an int.
func EnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(EnvString(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func EnvList(key string, defaultValue []string) []string {
	raw := EnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func EnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(EnvString(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := 0; i < len(items); i++ {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := 0; i < len(items); i++ {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// FloorKey identifies one building floor in limiter maps, cache keys and topics.
func FloorKey(buildingID string, floor int) string {
	return buildingID + ":" + strconv.Itoa(floor)
}

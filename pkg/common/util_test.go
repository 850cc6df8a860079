package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SF_TEST_STRING", "  value ")
	t.Setenv("SF_TEST_INT", "42")
	t.Setenv("SF_TEST_BAD_INT", "forty-two")
	t.Setenv("SF_TEST_LIST", "a:9092, b:9092,,")
	t.Setenv("SF_TEST_DURATION", "250ms")

	assert.Equal(t, "value", EnvString("SF_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", EnvString("SF_TEST_UNSET", "fallback"))
	assert.Equal(t, 42, EnvInt("SF_TEST_INT", 1))
	assert.Equal(t, 1, EnvInt("SF_TEST_BAD_INT", 1))
	assert.Equal(t, []string{"a:9092", "b:9092"}, EnvList("SF_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, EnvList("SF_TEST_UNSET", []string{"x"}))
	assert.Equal(t, 250*time.Millisecond, EnvDuration("SF_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, EnvDuration("SF_TEST_UNSET", time.Second))
}

func TestMapperReducer(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := Reducer([]int{1, 2, 3}, func(acc int, i int) int { return acc + i }, 0)
	assert.Equal(t, 6, sum)
}

func TestFloorKey(t *testing.T) {
	assert.Equal(t, "A:3", FloorKey("A", 3))
}

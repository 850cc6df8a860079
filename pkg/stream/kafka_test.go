package stream

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
	"liyu1981.xyz/smartfloors-service/pkg/monitor/mocks"
)

type fakeFetcher struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	fetchErrs []error
	closed    bool
}

func (f *fakeFetcher) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if len(f.fetchErrs) > 0 {
		err := f.fetchErrs[0]
		f.fetchErrs = f.fetchErrs[1:]
		f.mu.Unlock()
		return kafka.Message{}, err
	}
	if len(f.messages) > 0 {
		msg := f.messages[0]
		f.messages = f.messages[1:]
		f.mu.Unlock()
		return msg, nil
	}
	f.mu.Unlock()

	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeFetcher) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeFetcher) committedOffsets() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return common.Mapper(f.committed, func(m kafka.Message) int64 { return m.Offset })
}

func TestDecodeReading(t *testing.T) {
	reading, err := DecodeReading([]byte(`{"timestamp":"2024-05-01T10:00:00Z","building":"B","floor":2,"temp_c":22.5,"humedad_pct":48,"energia_kw":3.1}`))
	require.NoError(t, err)
	assert.Equal(t, "B", reading.BuildingID)
	assert.Equal(t, 2, reading.Floor)
	assert.Equal(t, 22.5, reading.Temperature)
	assert.Equal(t, 48.0, reading.Humidity)
	assert.Equal(t, 3.1, reading.Power)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), reading.Timestamp.UTC())

	// zero is a valid value, only missing fields are rejected
	reading, err = DecodeReading([]byte(`{"building":"B","floor":1,"temp_c":0,"humedad_pct":0,"energia_kw":0}`))
	require.NoError(t, err)
	assert.True(t, reading.Timestamp.IsZero())
}

func TestDecodeReading_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed":        `{"building":`,
		"missing power":    `{"building":"B","floor":1,"temp_c":20,"humedad_pct":40}`,
		"humidity over":    `{"building":"B","floor":1,"temp_c":20,"humedad_pct":101,"energia_kw":1}`,
		"negative power":   `{"building":"B","floor":1,"temp_c":20,"humedad_pct":40,"energia_kw":-2}`,
		"floor out":        `{"building":"B","floor":9,"temp_c":20,"humedad_pct":40,"energia_kw":1}`,
		"missing building": `{"floor":1,"temp_c":20,"humedad_pct":40,"energia_kw":1}`,
	}
	for name, raw := range cases {
		_, err := DecodeReading([]byte(raw))
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidPayload), name)
	}
}

func TestKafkaConsumer_Run(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIReading := mocks.NewMockIReading(ctrl)

	fetcher := &fakeFetcher{
		fetchErrs: []error{errors.New("broker not available")},
		messages: []kafka.Message{
			{Offset: 1, Value: []byte(`{"building":"A","floor":1,"temp_c":21,"humedad_pct":45,"energia_kw":2}`)},
			{Offset: 2, Value: []byte(`not json`)},
			{Offset: 3, Value: []byte(`{"building":"A","floor":2,"temp_c":21,"humedad_pct":45,"energia_kw":2}`)},
			{Offset: 4, Value: []byte(`{"building":"A","floor":3,"temp_c":21,"humedad_pct":45,"energia_kw":2}`)},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		mockIReading.EXPECT().
			CreateReading(gomock.Any(), gomock.Eq("kafka"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r *models.Reading) (*models.Reading, error) {
				assert.Equal(t, 1, r.Floor)
				return r, nil
			}),
		mockIReading.EXPECT().
			CreateReading(gomock.Any(), gomock.Eq("kafka"), gomock.Any()).
			Return(nil, errors.New("database is locked")).
			Times(2),
		mockIReading.EXPECT().
			CreateReading(gomock.Any(), gomock.Eq("kafka"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r *models.Reading) (*models.Reading, error) {
				// the failed message comes back before anything later is fetched or committed
				assert.Equal(t, 2, r.Floor)
				assert.Equal(t, []int64{1, 2}, fetcher.committedOffsets())
				fetcher.mu.Lock()
				assert.Len(t, fetcher.messages, 1)
				fetcher.mu.Unlock()
				return r, nil
			}),
		mockIReading.EXPECT().
			CreateReading(gomock.Any(), gomock.Eq("kafka"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r *models.Reading) (*models.Reading, error) {
				assert.Equal(t, 3, r.Floor)
				return r, nil
			}),
	)

	consumer := newKafkaConsumer("readings", fetcher, mockIReading)
	consumer.backoff = time.Millisecond

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(fetcher.committedOffsets()) == 4
	}, 5*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Equal(t, []int64{1, 2, 3, 4}, fetcher.committedOffsets())
	assert.True(t, fetcher.closed)
}

func TestKafkaConsumer_StopsRetryingOnCancel(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIReading := mocks.NewMockIReading(ctrl)

	fetcher := &fakeFetcher{
		messages: []kafka.Message{
			{Offset: 7, Value: []byte(`{"building":"A","floor":1,"temp_c":21,"humedad_pct":45,"energia_kw":2}`)},
			{Offset: 8, Value: []byte(`{"building":"A","floor":2,"temp_c":21,"humedad_pct":45,"energia_kw":2}`)},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockIReading.EXPECT().
		CreateReading(gomock.Any(), gomock.Eq("kafka"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r *models.Reading) (*models.Reading, error) {
			assert.Equal(t, 1, r.Floor)
			return nil, errors.New("database is locked")
		}).
		MinTimes(1)

	consumer := newKafkaConsumer("readings", fetcher, mockIReading)
	consumer.backoff = time.Millisecond

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Empty(t, fetcher.committedOffsets())
	fetcher.mu.Lock()
	assert.Len(t, fetcher.messages, 1)
	fetcher.mu.Unlock()
}

func TestKafkaConsumer_InvalidReadingCommitted(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIReading := mocks.NewMockIReading(ctrl)
	mockIReading.EXPECT().
		CreateReading(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, monitor.ErrInvalidReading)

	consumer := newKafkaConsumer("readings", &fakeFetcher{}, mockIReading)
	err := consumer.handleMessage(context.Background(), kafka.Message{
		Value: []byte(`{"building":"A","floor":1,"temp_c":21,"humedad_pct":45,"energia_kw":2}`),
	})
	assert.NoError(t, err)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestAlertProducer(t *testing.T) {
	writer := &fakeWriter{}
	producer := &AlertProducer{writer: writer}

	assert.Equal(t, "kafka", producer.Name())
	assert.NoError(t, producer.WriteReading(context.Background(), &models.Reading{BuildingID: "A", Floor: 1}))
	assert.Empty(t, writer.messages)

	alert := &models.Alert{
		ID: 7, BuildingID: "A", Floor: 2, VariableKind: models.VariablePower,
		Severity: models.SeverityHigh, Message: "High risk forecast", Timestamp: time.Now().UTC(),
	}
	require.NoError(t, producer.WriteAlert(context.Background(), alert))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "A:2", string(writer.messages[0].Key))

	var decoded models.Alert
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, uint(7), decoded.ID)
	assert.Equal(t, models.VariablePower, decoded.VariableKind)

	writer.err = errors.New("leader not available")
	assert.Error(t, producer.WriteAlert(context.Background(), alert))
}

func TestNewKafka_Config(t *testing.T) {
	_, err := NewKafkaConsumer(KafkaConfig{ReadingsTopic: "readings"}, nil)
	assert.Error(t, err)

	_, err = NewAlertProducer(KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	producer, err := NewAlertProducer(KafkaConfig{Brokers: []string{"localhost:9092"}, AlertsTopic: "alerts"})
	require.NoError(t, err)
	assert.NoError(t, producer.Close())
}

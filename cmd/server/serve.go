package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"liyu1981.xyz/smartfloors-service/pkg/cache"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/config"
	"liyu1981.xyz/smartfloors-service/pkg/db"
	sfGrpc "liyu1981.xyz/smartfloors-service/pkg/grpc"
	pb "liyu1981.xyz/smartfloors-service/pkg/grpc/smartfloors_service"
	sfHttp "liyu1981.xyz/smartfloors-service/pkg/http"
	"liyu1981.xyz/smartfloors-service/pkg/monitor"
	"liyu1981.xyz/smartfloors-service/pkg/stream"
	"liyu1981.xyz/smartfloors-service/pkg/tsdb"
)

const shutdownTimeout = 10 * time.Second

// newMonitor opens the configured store and attaches every enabled sink.
// The returned cleanup closes the sinks.
func newMonitor(ctx context.Context, cfg *config.Config) (*monitor.Monitor, func(), error) {
	logger := common.GetLogger()

	dialector, _ := db.Dialector(cfg.DBType)
	core := monitor.New(*db.GetInstance(dialector)).WithLookback(cfg.Lookback)

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.RedisEnabled() {
		sink, err := cache.NewRedisSink(ctx, cfg.Redis)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		core.WithSinks(sink).WithFloorState(sink)
		closers = append(closers, func() { _ = sink.Close() })
		logger.Info("Redis sink enabled", zap.String("addr", cfg.Redis.Addr))
	}

	if cfg.InfluxEnabled() {
		sink, err := tsdb.NewInfluxSink(ctx, cfg.Influx)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		core.WithSinks(sink)
		closers = append(closers, sink.Close)
		logger.Info("InfluxDB sink enabled", zap.String("url", cfg.Influx.URL), zap.String("bucket", cfg.Influx.Bucket))
	}

	if cfg.KafkaEnabled() && cfg.Kafka.AlertsTopic != "" {
		producer, err := stream.NewAlertProducer(cfg.Kafka)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		core.WithSinks(producer)
		closers = append(closers, func() { _ = producer.Close() })
		logger.Info("Kafka alert producer enabled", zap.String("topic", cfg.Kafka.AlertsTopic))
	}

	return core, cleanup, nil
}

func defaultLimiterField(cfg *config.Config) zap.Field {
	return zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := common.GetLogger()
	logger.Info("Starting "+common.ServiceName, zap.String("version", common.ServiceVersion), zap.String("db_type", cfg.DBType))

	core, cleanup, err := newMonitor(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 2)

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		server := &sfGrpc.SmartFloorsServer{
			Monitor:          core,
			RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		}
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(server.CreateRateLimitInterceptor(sfGrpc.RateLimitedRequests())))
		pb.RegisterSmartFloorsServiceServer(grpcServer, server)
		logger.Info("gRPC server created with:", defaultLimiterField(cfg))

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.GrpcHostPort, err)
		}
		go func() {
			logger.Info("Starting gRPC server on: " + cfg.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				errCh <- fmt.Errorf("grpc server failed to serve: %w", err)
			}
		}()
	}

	if cfg.KafkaEnabled() {
		consumer, err := stream.NewKafkaConsumer(cfg.Kafka, core.Reading)
		if err != nil {
			return err
		}
		go consumer.Run(ctx)
		logger.Info("Kafka consumer started", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.ReadingsTopic))
	}

	if cfg.MqttEnabled() {
		subscriber, err := stream.NewMqttSubscriber(cfg.Mqtt, core.Reading)
		if err != nil {
			return err
		}
		if err := subscriber.Start(ctx); err != nil {
			return err
		}
		logger.Info("MQTT subscriber started", zap.String("broker", cfg.Mqtt.Broker))
	}

	rs := &sfHttp.RestfulServer{
		Server:           gin.Default(),
		Monitor:          core,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
	}
	rs.Setup()
	logger.Info("http server created with:", defaultLimiterField(cfg))

	httpServer := &http.Server{Addr: cfg.HttpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
		logger.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("HTTP shutdown", zap.Error(shutdownErr))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	_ = logger.Sync()
	return err
}

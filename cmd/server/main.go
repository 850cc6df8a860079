package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liyu1981.xyz/smartfloors-service/pkg/common"
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartfloors",
		Short: "SmartFloors trend forecast and risk service",
		Long: `SmartFloors stores per-floor sensor readings (temperature, humidity, power),
forecasts each variable 60 minutes ahead and raises alerts on high risk.

HTTP is always served. gRPC, Kafka, MQTT, Redis and InfluxDB are enabled by
their SF_* environment variables.`,
		Version:       common.ServiceVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the .env file")
	rootCmd.AddCommand(newPredictCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

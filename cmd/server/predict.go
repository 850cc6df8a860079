package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/config"
	"liyu1981.xyz/smartfloors-service/pkg/forecast"
)

func newPredictCmd() *cobra.Command {
	var (
		buildingID string
		floor      int
		variable   string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Forecast one variable for a floor and print the prediction as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if floor < common.MinFloor || floor > common.MaxFloor {
				return fmt.Errorf("floor must be between %d and %d", common.MinFloor, common.MaxFloor)
			}
			v, err := forecast.ParseVariable(variable)
			if err != nil {
				return err
			}

			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			core, cleanup, err := newMonitor(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			prediction, err := core.Prediction.Predict(cmd.Context(), buildingID, floor, v)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(prediction)
		},
	}

	cmd.Flags().StringVar(&buildingID, "building", common.DefaultBuildingID, "Building id")
	cmd.Flags().IntVar(&floor, "floor", common.MinFloor, "Floor number")
	cmd.Flags().StringVar(&variable, "variable", "temp_c", "One of temp_c, humedad_pct, energia_kw")
	return cmd
}

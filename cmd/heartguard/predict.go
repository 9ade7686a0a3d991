package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skufu/heartguard/internal/ml"
	"github.com/Skufu/heartguard/internal/stratification"
)

var (
	predictFile       string
	predictConditions []string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score a clinical record from a JSON file",
	Long: `Read a clinical record as JSON, score it and print the prediction as indented JSON.
With --conditions the stratification level is included as well.`,
	RunE: runPredictCmd,
}

func init() {
	predictCmd.Flags().StringVarP(&predictFile, "file", "f", "-", "Path to the clinical record JSON, or - for stdin")
	predictCmd.Flags().StringSliceVar(&predictConditions, "conditions", nil, "Comma-separated condition tags used for stratification")
	rootCmd.AddCommand(predictCmd)
}

type predictOutput struct {
	ml.PredictionResult
	StratificationLevel stratification.Level `json:"stratificationLevel,omitempty"`
}

func runPredictCmd(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	if predictFile != "-" {
		f, err := os.Open(predictFile)
		if err != nil {
			return fmt.Errorf("failed to open record file: %w", err)
		}
		defer f.Close()
		in = f
	}
	return runPredict(in, cmd.OutOrStdout(), predictConditions)
}

func runPredict(in io.Reader, out io.Writer, conditions []string) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read clinical record: %w", err)
	}

	record, err := ml.DecodeRecord(data)
	if err != nil {
		var verr *ml.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		return fmt.Errorf("failed to decode clinical record: %w", err)
	}

	result, err := ml.Predict(record)
	if err != nil {
		return err
	}

	output := predictOutput{PredictionResult: result}
	if len(conditions) > 0 {
		output.StratificationLevel = stratification.Stratify(
			stratification.ToPercent(result.Score), result.TopContributions, conditions)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

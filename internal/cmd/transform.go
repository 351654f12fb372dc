package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loglens/internal/transform"
)

var (
	transformTimeout int
	transformRetries int
)

var transformCmd = &cobra.Command{
	Use:   "transform <records.json>",
	Short: "Normalize a JSON file of key/value records",
	Long: `Transform reads a JSON array of objects, normalizes each record
(trims strings, clamps negative numbers to zero, drops null values and
null list elements), stamps it with a processing timestamp, and prints
the result as indented JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().IntVar(&transformTimeout, "timeout", 0, "processing timeout in seconds (default 30)")
	transformCmd.Flags().IntVar(&transformRetries, "max-retries", 0, "maximum retries (default 3)")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	var records []transform.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("invalid records file: %w", err)
	}

	p, err := transform.New(transform.Config{
		Timeout:    transformTimeout,
		MaxRetries: transformRetries,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(p.Process(records))
}

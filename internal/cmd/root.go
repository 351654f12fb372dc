package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loglens/internal/output"
)

var (
	cfgFile   string
	outputFmt string
	debugMode bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "loglens",
	Short: "Loglens — log file analyzer",
	Long: `Loglens analyzes fixed-format log files: it extracts timestamp, level,
and message from each line, tallies counts per severity level, collects
error lines, and reports the overall error rate.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.loglens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "log a diagnostic for every unparseable line")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".loglens")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newRenderer picks the renderer for the --output flag.
func newRenderer() output.Renderer {
	if outputFmt == "json" {
		return output.NewJSONRenderer()
	}
	return output.NewTextRenderer()
}

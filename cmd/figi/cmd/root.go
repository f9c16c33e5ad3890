// Package cmd implements the figi CLI commands.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	openfigi "github.com/tlouarn/openfigi-go"
)

var (
	apiKey  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "figi",
	Short: "Look up securities on the OpenFIGI API",
	Long: `Look up securities on the OpenFIGI API.

An API key is optional and raises the rate and batch limits. It is read from
the --api-key flag, the OPENFIGI_API_KEY environment variable, or a .env file
in the working directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initEnv()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "OpenFIGI API key (default $OPENFIGI_API_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(valuesCmd)
}

func initEnv() {
	// A .env file is optional; plain environment variables work either way.
	_ = godotenv.Load()

	if apiKey == "" {
		apiKey = os.Getenv("OPENFIGI_API_KEY")
	}
}

func newClient() *openfigi.Client {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return openfigi.NewClient(apiKey, openfigi.WithLogger(logger))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

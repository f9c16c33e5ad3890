package cmd

import (
	"github.com/spf13/cobra"

	openfigi "github.com/tlouarn/openfigi-go"
)

var (
	mapExchCode      string
	mapMicCode       string
	mapCurrency      string
	mapSecurityType  string
	mapSecurityType2 string
)

var mapCmd = &cobra.Command{
	Use:   "map <idType> <idValue>",
	Short: "Map a third-party identifier to FIGIs",
	Long: `Map a third-party identifier to FIGIs.

Examples:
  figi map TICKER IBM --exch-code US
  figi map ID_ISIN US4592001014
  figi map BASE_TICKER IBM --security-type-2 "Common Stock"`,
	Args: cobra.ExactArgs(2),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&mapExchCode, "exch-code", "", "exchange code filter")
	mapCmd.Flags().StringVar(&mapMicCode, "mic-code", "", "MIC code filter")
	mapCmd.Flags().StringVar(&mapCurrency, "currency", "", "currency filter")
	mapCmd.Flags().StringVar(&mapSecurityType, "security-type", "", "securityType filter")
	mapCmd.Flags().StringVar(&mapSecurityType2, "security-type-2", "", "securityType2 filter")
}

func runMap(cmd *cobra.Command, args []string) error {
	builder := openfigi.NewMappingJob(args[0], args[1])
	if mapExchCode != "" {
		builder.SetExchCode(mapExchCode)
	}
	if mapMicCode != "" {
		builder.SetMicCode(mapMicCode)
	}
	if mapCurrency != "" {
		builder.SetCurrency(mapCurrency)
	}
	if mapSecurityType != "" {
		builder.SetSecurityType(mapSecurityType)
	}
	if mapSecurityType2 != "" {
		builder.SetSecurityType2(mapSecurityType2)
	}

	job, err := builder.Build()
	if err != nil {
		return err
	}

	results, err := newClient().Map(cmd.Context(), []openfigi.MappingJob{job})
	if err != nil {
		return err
	}
	return printJSON(results)
}

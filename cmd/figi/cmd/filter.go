package cmd

import (
	"github.com/spf13/cobra"

	openfigi "github.com/tlouarn/openfigi-go"
)

var (
	filterExchCode      string
	filterCurrency      string
	filterSecurityType  string
	filterSecurityType2 string
	filterMarketSecDes  string
)

var filterCmd = &cobra.Command{
	Use:   "filter <query>",
	Short: "Search for FIGIs by keyword",
	Long: `Search for FIGIs by keyword, following the server cursor until the
last page. Without an API key, large result sets take a while: the client
waits between pages to stay under the anonymous search quota.

Examples:
  figi filter "IBM" --exch-code US
  figi filter "UKT" --security-type "UK GILT STOCK"`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

var totalCmd = &cobra.Command{
	Use:   "total <query>",
	Short: "Count the matches for a query without fetching them",
	Args:  cobra.ExactArgs(1),
	RunE:  runTotal,
}

func init() {
	for _, c := range []*cobra.Command{filterCmd, totalCmd} {
		c.Flags().StringVar(&filterExchCode, "exch-code", "", "exchange code filter")
		c.Flags().StringVar(&filterCurrency, "currency", "", "currency filter")
		c.Flags().StringVar(&filterSecurityType, "security-type", "", "securityType filter")
		c.Flags().StringVar(&filterSecurityType2, "security-type-2", "", "securityType2 filter")
		c.Flags().StringVar(&filterMarketSecDes, "market-sec-des", "", "market sector filter")
	}
}

func buildQuery(text string) (openfigi.Query, error) {
	builder := openfigi.NewQuery(text)
	if filterExchCode != "" {
		builder.SetExchCode(filterExchCode)
	}
	if filterCurrency != "" {
		builder.SetCurrency(filterCurrency)
	}
	if filterSecurityType != "" {
		builder.SetSecurityType(filterSecurityType)
	}
	if filterSecurityType2 != "" {
		builder.SetSecurityType2(filterSecurityType2)
	}
	if filterMarketSecDes != "" {
		builder.SetMarketSecDes(filterMarketSecDes)
	}
	return builder.Build()
}

func runFilter(cmd *cobra.Command, args []string) error {
	query, err := buildQuery(args[0])
	if err != nil {
		return err
	}

	results, err := newClient().Filter(cmd.Context(), query)
	if err != nil {
		return err
	}
	return printJSON(results)
}

func runTotal(cmd *cobra.Command, args []string) error {
	query, err := buildQuery(args[0])
	if err != nil {
		return err
	}

	total, err := newClient().GetTotalNumberOfMatches(cmd.Context(), query)
	if err != nil {
		return err
	}
	return printJSON(map[string]int{"total": total})
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var valueFields = []string{
	"idType",
	"exchCode",
	"micCode",
	"currency",
	"marketSecDes",
	"securityType",
	"securityType2",
	"stateCode",
}

var valuesCmd = &cobra.Command{
	Use:   "values <field>",
	Short: "List the accepted values for an enum-like request field",
	Long: `List the accepted values for an enum-like request field.

Fields: ` + strings.Join(valueFields, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: valueFields,
	RunE:      runValues,
}

func runValues(cmd *cobra.Command, args []string) error {
	client := newClient()

	var call func(context.Context) ([]string, error)
	switch args[0] {
	case "idType":
		call = client.GetIDTypes
	case "exchCode":
		call = client.GetExchCodes
	case "micCode":
		call = client.GetMicCodes
	case "currency":
		call = client.GetCurrencies
	case "marketSecDes":
		call = client.GetMarketSecDes
	case "securityType":
		call = client.GetSecurityTypes
	case "securityType2":
		call = client.GetSecurityTypes2
	case "stateCode":
		call = client.GetStateCodes
	default:
		return fmt.Errorf("unknown field %q, expected one of: %s", args[0], strings.Join(valueFields, ", "))
	}

	values, err := call(cmd.Context())
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Println(v)
	}
	return nil
}

// Package constants holds the enum-like values accepted by the OpenFIGI v3
// mapping endpoints.
//
// Only the stable, documented value lists are included here. The large
// exchange/currency/state code lists change over time and should be fetched
// live through the client's Get* accessors
// (e.g. https://api.openfigi.com/v3/mapping/values/exchCode).
package constants

import "k8s.io/apimachinery/pkg/util/sets"

// Third-party identifier types. See https://www.openfigi.com/api#v3-idType-values
const (
	IDTYPE_ID_ISIN                        = "ID_ISIN"
	IDTYPE_ID_BB_UNIQUE                   = "ID_BB_UNIQUE"
	IDTYPE_ID_SEDOL                       = "ID_SEDOL"
	IDTYPE_ID_COMMON                      = "ID_COMMON"
	IDTYPE_ID_WERTPAPIER                  = "ID_WERTPAPIER"
	IDTYPE_ID_CUSIP                       = "ID_CUSIP"
	IDTYPE_ID_BB                          = "ID_BB"
	IDTYPE_ID_ITALY                       = "ID_ITALY"
	IDTYPE_ID_EXCH_SYMBOL                 = "ID_EXCH_SYMBOL"
	IDTYPE_ID_FULL_EXCHANGE_SYMBOL        = "ID_FULL_EXCHANGE_SYMBOL"
	IDTYPE_COMPOSITE_ID_BB_GLOBAL         = "COMPOSITE_ID_BB_GLOBAL"
	IDTYPE_ID_BB_GLOBAL_SHARE_CLASS_LEVEL = "ID_BB_GLOBAL_SHARE_CLASS_LEVEL"
	IDTYPE_ID_BB_SEC_NUM_DES              = "ID_BB_SEC_NUM_DES"
	IDTYPE_ID_BB_GLOBAL                   = "ID_BB_GLOBAL"
	IDTYPE_TICKER                         = "TICKER"
	IDTYPE_ID_CUSIP_8_CHR                 = "ID_CUSIP_8_CHR"
	IDTYPE_OCC_SYMBOL                     = "OCC_SYMBOL"
	IDTYPE_UNIQUE_ID_FUT_OPT              = "UNIQUE_ID_FUT_OPT"
	IDTYPE_OPRA_SYMBOL                    = "OPRA_SYMBOL"
	IDTYPE_TRADING_SYSTEM_IDENTIFIER      = "TRADING_SYSTEM_IDENTIFIER"
	IDTYPE_ID_CINS                        = "ID_CINS"
	IDTYPE_ID_SHORT_CODE                  = "ID_SHORT_CODE"
	IDTYPE_BASE_TICKER                    = "BASE_TICKER"
	IDTYPE_VENDOR_INDEX_CODE              = "VENDOR_INDEX_CODE"
)

// Security type 2 values referenced by the mapping validation rules.
const (
	SECURITYTYPE2_CommonStock = "Common Stock"
	SECURITYTYPE2_Option      = "Option"
	SECURITYTYPE2_Warrant     = "Warrant"
	SECURITYTYPE2_Pool        = "Pool"
)

// Option types.
const (
	OPTIONTYPE_Call = "Call"
	OPTIONTYPE_Put  = "Put"
)

// IDTypes is the set of valid `idType` values.
var IDTypes = sets.New(
	IDTYPE_ID_ISIN,
	IDTYPE_ID_BB_UNIQUE,
	IDTYPE_ID_SEDOL,
	IDTYPE_ID_COMMON,
	IDTYPE_ID_WERTPAPIER,
	IDTYPE_ID_CUSIP,
	IDTYPE_ID_BB,
	IDTYPE_ID_ITALY,
	IDTYPE_ID_EXCH_SYMBOL,
	IDTYPE_ID_FULL_EXCHANGE_SYMBOL,
	IDTYPE_COMPOSITE_ID_BB_GLOBAL,
	IDTYPE_ID_BB_GLOBAL_SHARE_CLASS_LEVEL,
	IDTYPE_ID_BB_SEC_NUM_DES,
	IDTYPE_ID_BB_GLOBAL,
	IDTYPE_TICKER,
	IDTYPE_ID_CUSIP_8_CHR,
	IDTYPE_OCC_SYMBOL,
	IDTYPE_UNIQUE_ID_FUT_OPT,
	IDTYPE_OPRA_SYMBOL,
	IDTYPE_TRADING_SYSTEM_IDENTIFIER,
	IDTYPE_ID_CINS,
	IDTYPE_ID_SHORT_CODE,
	IDTYPE_BASE_TICKER,
	IDTYPE_VENDOR_INDEX_CODE,
)

// OptionTypes is the set of valid `optionType` values.
var OptionTypes = sets.New(
	OPTIONTYPE_Call,
	OPTIONTYPE_Put,
)

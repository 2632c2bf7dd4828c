/**
 * @description
 * Currency resolution for bank statement files. Each export begins with an
 * "Account Number : <digits>" declaration on its first line; the account
 * resolves through a fixed table to the settlement currency attached to
 * every row ingested from that file.
 */

package recon

import (
	"regexp"
	"strings"

	"github.com/vaultpay/reconciliation-service/internal/domain"
)

// statementAccounts maps the seven known collection accounts to their
// settlement currency. Anything else resolves to UNKNOWN.
var statementAccounts = map[string]domain.Currency{
	"1012004513601": domain.CurrencyAED,
	"1012004513702": domain.CurrencyUSD,
	"1012004513803": domain.CurrencyOMR,
	"1012004513904": domain.CurrencyQAR,
	"1012004514005": domain.CurrencySAR,
	"1012004514106": domain.CurrencyKWD,
	"1012004514207": domain.CurrencyBHD,
}

var accountDeclarationRe = regexp.MustCompile(`(?i)account\s*number\s*:\s*(\d+)`)

// resolveStatementCurrency extracts the account number from the first line
// of a bank statement file and maps it to a currency. Unknown or unmatched
// accounts resolve to UNKNOWN; this never fails.
func resolveStatementCurrency(raw string) domain.Currency {
	firstLine := raw
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		firstLine = raw[:idx]
	}

	m := accountDeclarationRe.FindStringSubmatch(firstLine)
	if m == nil {
		return domain.CurrencyUnknown
	}
	if currency, ok := statementAccounts[m[1]]; ok {
		return currency
	}
	return domain.CurrencyUnknown
}

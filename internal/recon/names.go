/**
 * @description
 * Heuristic counterparty-name extraction from free-text bank narration. An
 * ordered list of regex patterns is tried in sequence; the first candidate
 * that survives token cleanup wins. This is a best-effort heuristic, not a
 * named-entity recognizer: the contract is the exact rule ordering and
 * thresholds, and false positives are acceptable.
 *
 * Cleanup rules per token, in order:
 *   - stop word (business/banking noise) truncates the name
 *   - skip word (prepositions, reference fragments) is dropped, no truncation
 *   - a token with digits or punctuation truncates (the name has ended)
 *   - bare reference-code tokens (VAM, AE, ...) are dropped
 *   - single-character tokens are dropped
 *   - tokens longer than 3 chars with no vowel are dropped (codes, not names)
 *
 * @dependencies
 * - regexp, strings: Standard Go libraries.
 */

package recon

import (
	"regexp"
	"strings"
)

// NamePlaceholder is returned when no pattern yields an acceptable name. It
// is the literal placeholder the console renders in the name column.
const NamePlaceholder = "—"

// stopWords truncate the candidate at their first occurrence.
var stopWords = map[string]bool{
	"LTD": true, "LIMITED": true, "LLC": true, "LLP": true, "INC": true,
	"CORP": true, "CO": true, "COMPANY": true, "EST": true,
	"ESTABLISHMENT": true, "GROUP": true, "HOLDING": true, "HOLDINGS": true,
	"FZE": true, "FZC": true, "FZCO": true, "DMCC": true, "WLL": true,
	"BANK": true, "BRANCH": true, "ACCOUNT": true, "TRANSFER": true,
	"TRANSFERS": true, "REMITTANCE": true, "EXCHANGE": true,
	"INTERNATIONAL": true, "GENERAL": true, "TECHNICAL": true,
	"CONTRACTING": true, "TRADING": true, "INVESTMENT": true,
	"INVESTMENTS": true, "INVEST": true, "SERVICES": true, "SERVICE": true,
	"PAYMENT": true, "PAYMENTS": true, "SALARY": true, "PERSONAL": true,
	"FINANCIAL": true, "FUNDS": true, "FUND": true, "OWN": true,
	"DEPOSIT": true, "CHARGES": true, "COMMISSION": true, "PURPOSE": true,
	"ONLINE": true, "MOBILE": true,
}

// skipWords are dropped from the candidate without truncating it.
var skipWords = map[string]bool{
	"VA": true, "TT": true, "TRF": true, "REF": true, "IPI": true,
	"OF": true, "TO": true, "FROM": true, "BY": true, "FOR": true,
	"THE": true, "AND": true, "AT": true, "IN": true, "ON": true,
	"MR": true, "MRS": true, "MS": true, "DR": true,
}

var (
	// "REF NO 12345 JOHN SMITH ...": name segment after a reference number.
	refNumberNameRe = regexp.MustCompile(`\bREF[:\s]*(?:NO[:\s]*)?(\d+)\s+([A-Z][A-Z\s]+)`)
	// "AED 5,000 MOHAMMED ALI ...": name segment after a currency amount.
	currencyAmountNameRe = regexp.MustCompile(`\b(AED|USD|OMR|QAR|SAR|EUR|GBP|INR|PKR|BDT|PHP|EGP)\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s+([A-Z][A-Z\s]+)`)
	// "TRANSFER FROM JOHN SMITH ..." / "TRF FROM ...".
	transferFromNameRe = regexp.MustCompile(`\b(?:TRANSFER|TRF)\s+FROM\s+([A-Z][A-Z\s]+)`)
	// A 2-3 word all-caps run right before a semantic marker.
	beforeMarkerNameRe = regexp.MustCompile(`\b([A-Z]{2,}(?:\s+[A-Z]{2,}){1,2})\s+(?:PERSONAL|FINANCIAL|INVESTMENT|INVEST|OWN|FUNDS|PAYMENT|SALARY|SERVICES)\b`)

	referenceCodeRe = regexp.MustCompile(`^(VA|TT|TRF|REF|IPI|VAM|AE)\d*$`)
	nonNameCharRe   = regexp.MustCompile(`[^A-Z]`)
)

// namePattern pairs a regex with the index of its name capture group.
type namePattern struct {
	re    *regexp.Regexp
	group int
}

var namePatterns = []namePattern{
	{refNumberNameRe, 2},
	{currencyAmountNameRe, 3},
	{transferFromNameRe, 1},
	{beforeMarkerNameRe, 1},
}

// ExtractName derives a likely counterparty name from a bank narration. The
// patterns run in fixed order against the uppercased narration; the first
// candidate surviving cleanup is returned. Empty narration or no surviving
// candidate yields NamePlaceholder.
func ExtractName(narration string) string {
	narration = strings.TrimSpace(narration)
	if narration == "" {
		return NamePlaceholder
	}

	upper := strings.ToUpper(narration)
	for _, pattern := range namePatterns {
		m := pattern.re.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		if name, ok := cleanName(m[pattern.group]); ok {
			return name
		}
	}

	return NamePlaceholder
}

// cleanName applies the token rules to a raw pattern capture and reports
// whether the result is an acceptable name: 3-60 characters with at least
// two words, or a single word of 4-60 characters as fallback.
func cleanName(candidate string) (string, bool) {
	var kept []string

	for _, word := range strings.Fields(strings.ToUpper(candidate)) {
		if stopWords[word] {
			break
		}
		if skipWords[word] {
			continue
		}
		if nonNameCharRe.MatchString(word) {
			break
		}
		if referenceCodeRe.MatchString(word) {
			continue
		}
		if len(word) == 1 {
			continue
		}
		if len(word) > 3 && !strings.ContainsAny(word, "AEIOU") {
			continue
		}
		kept = append(kept, word)
	}

	name := strings.Join(kept, " ")
	if len(name) >= 3 && len(name) <= 60 && len(kept) >= 2 {
		return name, true
	}
	if len(name) >= 4 && len(name) <= 60 {
		return name, true
	}
	return "", false
}

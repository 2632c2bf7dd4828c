/**
 * @description
 * This file contains the CSV adapter for the reconciliation engine. It turns
 * raw delimited text into ordered records keyed by trimmed header name.
 *
 * Bank statement exports carry two non-tabular metadata lines (the account
 * number declaration and a blank/title line) before the real column header,
 * so the adapter skips exactly two lines for bank input. The MetaBase export
 * is tabular from line one.
 *
 * @dependencies
 * - encoding/csv, errors, fmt, strings: Standard Go libraries.
 */

package recon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for invalid reconcile requests. These are rejected before
// any parsing begins.
var (
	ErrMissingBankStatement  = errors.New("at least one bank statement file is required")
	ErrMissingMetaBaseExport = errors.New("a metabase export file is required")
	ErrInvalidValueDate      = errors.New("value date filter must be in dd/mm/yyyy format")
)

// ParseError reports a structurally unparsable CSV input. It wraps the
// underlying csv error and keeps the line/column detail so the API layer can
// build a useful message. A ParseError aborts the whole run; no partial
// result is returned.
type ParseError struct {
	Source string // which upload failed, e.g. "bank statement 2"
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed csv in %s at line %d, column %d: %v", e.Source, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("malformed csv in %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// record is one parsed CSV row keyed by trimmed header name.
type record map[string]string

// parseRecords parses raw CSV text into records. skipLines leading lines are
// discarded before the header row (2 for bank statements, 0 for the MetaBase
// export). Header names are trimmed of surrounding whitespace. Ragged rows
// and malformed quoting surface as *ParseError; rows are never silently
// dropped.
func parseRecords(raw string, skipLines int, source string) ([]record, error) {
	body := raw
	for i := 0; i < skipLines; i++ {
		idx := strings.IndexByte(body, '\n')
		if idx < 0 {
			// Fewer lines than the expected metadata block; nothing tabular left.
			return nil, nil
		}
		body = body[idx+1:]
	}

	reader := csv.NewReader(strings.NewReader(body))
	rows, err := reader.ReadAll()
	if err != nil {
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			return nil, &ParseError{Source: source, Line: csvErr.Line, Column: csvErr.Column, Err: csvErr.Err}
		}
		return nil, &ParseError{Source: source, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(header))
		for i, value := range row {
			if i < len(header) {
				rec[header[i]] = value
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

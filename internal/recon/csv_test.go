package recon

import (
	"errors"
	"testing"
)

func TestParseRecords_HeaderTrimming(t *testing.T) {
	raw := " name , amount \nalice,10\nbob,20\n"

	records, err := parseRecords(raw, 0, "test input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["name"] != "alice" || records[0]["amount"] != "10" {
		t.Errorf("trimmed headers must key the values, got %v", records[0])
	}
	if records[1]["name"] != "bob" {
		t.Errorf("expected ordered records, got %v", records[1])
	}
}

func TestParseRecords_SkipsMetadataLines(t *testing.T) {
	raw := "Account Number : 1012004513601\nStatement of Account\nref,credit\nTX1,100.00\n"

	records, err := parseRecords(raw, 2, "bank statement 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after skipping metadata, got %d", len(records))
	}
	if records[0]["ref"] != "TX1" {
		t.Errorf("expected header parsed from line 3, got %v", records[0])
	}
}

func TestParseRecords_TooFewLinesForMetadataBlock(t *testing.T) {
	records, err := parseRecords("only one line", 2, "bank statement 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestParseRecords_RaggedRowIsParseError(t *testing.T) {
	raw := "a,b,c\n1,2,3\n1,2\n"

	_, err := parseRecords(raw, 0, "metabase export")
	if err == nil {
		t.Fatal("expected a parse error for a ragged row")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Source != "metabase export" {
		t.Errorf("Source = %q, want %q", parseErr.Source, "metabase export")
	}
	if parseErr.Line != 3 {
		t.Errorf("Line = %d, want 3", parseErr.Line)
	}
}

func TestParseRecords_MalformedQuotingIsParseError(t *testing.T) {
	raw := "a,b\n\"unterminated,2\n"

	_, err := parseRecords(raw, 0, "bank statement 1")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestParseRecords_EmptyInput(t *testing.T) {
	records, err := parseRecords("", 0, "metabase export")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

package config

import (
	"strings"
	"testing"
)

func TestValidateAgainstSchema_Valid(t *testing.T) {
	cfg := Config{File: "contacts.txt", LogFile: "/tmp/contactbook.log"}
	if err := ValidateAgainstSchema(cfg); err != nil {
		t.Fatalf("expected valid schema, got error: %v", err)
	}
}

func TestValidateAgainstSchema_EmptyFile(t *testing.T) {
	err := ValidateAgainstSchema(Config{})
	if err == nil {
		t.Fatalf("expected schema error for empty file path")
	}
	if !strings.Contains(err.Error(), "contactbook config is invalid") || !strings.Contains(err.Error(), "file") {
		t.Fatalf("error should name the config and the field, got: %v", err)
	}
}

package cmd

import (
	"testing"
)

func TestEnvOr(t *testing.T) {
	t.Setenv(EnvVestedPDF, "")
	if got := envOr(EnvVestedPDF, "fallback.pdf"); got != "fallback.pdf" {
		t.Errorf("envOr with unset variable = %q, want %q", got, "fallback.pdf")
	}

	t.Setenv(EnvVestedPDF, "override.pdf")
	if got := envOr(EnvVestedPDF, "fallback.pdf"); got != "override.pdf" {
		t.Errorf("envOr with set variable = %q, want %q", got, "override.pdf")
	}
}

func TestLoadCertificateMissingFile(t *testing.T) {
	if _, err := loadCertificate("does-not-exist.pdf"); err == nil {
		t.Fatal("expected an error for a missing document")
	}
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	if _, err := loadTransactions("does-not-exist.pdf"); err == nil {
		t.Fatal("expected an error for a missing document")
	}
}

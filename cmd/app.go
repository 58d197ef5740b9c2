// Package cmd implements the CLI application to extract tax figures from stock plan documents.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/pdftext"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&vestedCmd{}, "reports")
	c.Register(&soldCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&AssistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global vaariables.

var Verbose = flag.Bool("v", false, "Enable verbose parsing diagnostics")
var vestedPDF = flag.String("vested-pdf", envOr(EnvVestedPDF, defaultVestedPDF), "Path to the salary certificate annex PDF (vested awards and stock purchase plan)")
var soldPDF = flag.String("sold-pdf", envOr(EnvSoldPDF, defaultSoldPDF), "Path to the brokerage transaction export PDF (sold shares)")
var noVested = flag.Bool("no-vested", false, "Skip the vested stocks document")
var noSold = flag.Bool("no-sold", false, "Skip the sold stocks document")

// Environment variables overriding the default document locations.
const (
	EnvVestedPDF = "STF_VESTED_PDF"
	EnvSoldPDF   = "STF_SOLD_PDF"
)

// Default document locations, relative to the working directory.
const (
	defaultVestedPDF = "taxes/vested_stocks.pdf"
	defaultSoldPDF   = "taxes/sold_stocks.pdf"
)

// envOr returns the value of the environment variable key, or def when unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadCertificate reads the salary certificate annex at path and extracts
// its vested award and purchase plan entries.
func loadCertificate(path string) (*taxform.Certificate, error) {
	doc, err := pdftext.Load(path)
	if err != nil {
		return nil, err
	}
	return taxform.ParseCertificate(doc.Text()), nil
}

// loadTransactions reads the brokerage transaction export at path and
// extracts its sold share transactions.
func loadTransactions(path string) ([]taxform.SoldTransaction, error) {
	doc, err := pdftext.Load(path)
	if err != nil {
		return nil, err
	}
	return taxform.ParseTransactions(doc.Text()), nil
}

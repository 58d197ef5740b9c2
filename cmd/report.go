package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	individual bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "extract and display every figure the tax form needs" }
func (*reportCmd) Usage() string {
	return `stf [-vested-pdf <path>] [-sold-pdf <path>] [-no-vested] [-no-sold] report [-individual]

  Extracts the vested awards, the stock purchase plan buys and the sold
  shares from both documents, aggregates them by date, and displays the
  tables to copy into the tax form. When both documents are processed, a
  net position summary follows.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.individual, "individual", false, "Also display the individual transactions next to the aggregated tables.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var vested *taxform.VestedReport
	var sold *taxform.SoldReport

	if !*noVested {
		cert, err := loadCertificate(*vestedPDF)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading vested stocks document %q: %v\n", *vestedPDF, err)
			return subcommands.ExitFailure
		}
		vested = taxform.NewVestedReport(cert)
		printMarkdown(renderer.VestedMarkdown(vested, c.individual))
	}

	if !*noSold {
		txs, err := loadTransactions(*soldPDF)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading sold stocks document %q: %v\n", *soldPDF, err)
			return subcommands.ExitFailure
		}
		sold = taxform.NewSoldReport(txs)
		printMarkdown(renderer.SoldMarkdown(sold, c.individual))
	}

	if vested != nil && sold != nil {
		printMarkdown(renderer.SummaryMarkdown(taxform.NewSummary(vested, sold)))
	}

	return subcommands.ExitSuccess
}

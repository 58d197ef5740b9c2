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

// soldCmd holds the flags for the 'sold' subcommand.
type soldCmd struct {
	file       string
	individual bool
}

func (*soldCmd) Name() string     { return "sold" }
func (*soldCmd) Synopsis() string { return "display the sold shares table" }
func (*soldCmd) Usage() string {
	return `stf sold [-f <path>] [-individual]

  Extracts the sold share transactions from the brokerage export and
  displays them aggregated by sell date.
`
}

func (c *soldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", *soldPDF, "Brokerage transaction export to read.")
	f.BoolVar(&c.individual, "individual", false, "Also display the individual transactions next to the aggregated table.")
}

func (c *soldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := loadTransactions(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading sold stocks document %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SoldMarkdown(taxform.NewSoldReport(txs), c.individual))

	return subcommands.ExitSuccess
}

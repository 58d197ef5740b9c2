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

// vestedCmd holds the flags for the 'vested' subcommand.
type vestedCmd struct {
	file       string
	individual bool
}

func (*vestedCmd) Name() string     { return "vested" }
func (*vestedCmd) Synopsis() string { return "display the vested awards and purchase plan tables" }
func (*vestedCmd) Usage() string {
	return `stf vested [-f <path>] [-individual]

  Extracts the vested awards and the stock purchase plan buys from the
  salary certificate annex and displays them aggregated by vesting date.
`
}

func (c *vestedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", *vestedPDF, "Salary certificate annex to read.")
	f.BoolVar(&c.individual, "individual", false, "Also display the individual awards next to the aggregated table.")
}

func (c *vestedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cert, err := loadCertificate(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading vested stocks document %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.VestedMarkdown(taxform.NewVestedReport(cert), c.individual))

	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	taxform "github.com/isabelcabezasm/swiss-tax-form-stocks"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/agent"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct{}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `stf [-no-vested] [-no-sold] assist [<prompt>]:
  Start an interactive session with the AI assistant over the extracted
  tax reports.
`
}

// SetFlags sets the flags for the command.
func (*AssistCmd) SetFlags(_ *flag.FlagSet) {}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	// The assistant answers general questions even without documents, so a
	// document that cannot be read only disables its report functions.
	var vested *taxform.VestedReport
	var sold *taxform.SoldReport
	if !*noVested {
		if cert, err := loadCertificate(*vestedPDF); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: vested stocks document not loaded: %v\n", err)
		} else {
			vested = taxform.NewVestedReport(cert)
		}
	}
	if !*noSold {
		if txs, err := loadTransactions(*soldPDF); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sold stocks document not loaded: %v\n", err)
		} else {
			sold = taxform.NewSoldReport(txs)
		}
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor()
	preparer := agent.NewPreparer(vested, sold)
	a := agent.New(os.Stdout, os.Stdin, advisor, preparer)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

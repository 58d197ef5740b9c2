package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/cmd"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/docs"
	"github.com/isabelcabezasm/swiss-tax-form-stocks/pdftext"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	log.SetFlags(0)
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}
	pdftext.Verbose(*cmd.Verbose)

	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and exits, when the shell asks
// for one. It is a no-op otherwise, and must run before flags are parsed.
func completion() {
	pdfs := predict.Files("*.pdf")
	topics := complete.PredictFunc(func(prefix string) []string {
		names, err := docs.All()
		if err != nil {
			return nil
		}
		return names
	})

	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"v":          predict.Nothing,
			"vested-pdf": pdfs,
			"sold-pdf":   pdfs,
			"no-vested":  predict.Nothing,
			"no-sold":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{"individual": predict.Nothing}},
			"vested": {Flags: map[string]complete.Predictor{"f": pdfs, "individual": predict.Nothing}},
			"sold":   {Flags: map[string]complete.Predictor{"f": pdfs, "individual": predict.Nothing}},
			"topic":  {Args: topics},
			"assist": {},
		},
	}
	c.Complete("stf")
}

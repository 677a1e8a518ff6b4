// Command cct is the cryptotrack terminal application.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hnath/cryptotrack/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Shell completion. Complete exits on its own when invoked by the shell.
	sub := make(map[string]*complete.Command)
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{}}
	})
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir":    predict.Dirs("*"),
			"admin-email": predict.Nothing,
		},
	}
	completer.Complete("cct")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

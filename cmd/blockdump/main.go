package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// blockdump inspects the bundled block state table from the command line.

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	verbose := flag.Bool("v", false, "verbose output")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&listCMD{}, "")
	subcommands.Register(&lookupCMD{}, "")
	subcommands.Register(&statsCMD{}, "")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(int(subcommands.Execute(context.Background())))
}

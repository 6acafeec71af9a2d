package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/oomph-ac/blockstate"
	"github.com/sirupsen/logrus"
)

type lookupCMD struct{}

func (*lookupCMD) Name() string     { return "lookup" }
func (*lookupCMD) Synopsis() string { return "resolves a namespaced id and property pairs to a state" }

func (c *lookupCMD) Usage() string {
	return c.Name() + " <namespaced id> [name=value ...]: " + c.Synopsis() + "\n" +
		"example: lookup minecraft:chest facing=north type=single waterlogged=false\n"
}

func (*lookupCMD) SetFlags(*flag.FlagSet) {}

func (c *lookupCMD) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		logrus.Error("missing namespaced id")
		return 1
	}

	properties := make([]blockstate.StateProperty, 0, len(args)-1)
	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			logrus.Errorf("property %q is not of the form name=value", arg)
			return 1
		}
		properties = append(properties, blockstate.StateProperty{Name: name, Value: value})
	}

	state, ok := blockstate.StateByNamespacedID(args[0], properties)
	if !ok {
		logrus.Errorf("no state matches %q with the given properties", args[0])
		return 1
	}
	fmt.Printf("id:      %d\n", state.ID())
	fmt.Printf("state:   %s\n", state)
	fmt.Printf("default: %v\n", state.IsDefault())
	return 0
}

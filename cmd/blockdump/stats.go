package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/oomph-ac/blockstate"
)

type statsCMD struct{}

func (*statsCMD) Name() string     { return "stats" }
func (*statsCMD) Synopsis() string { return "prints per-kind state counts" }

func (c *statsCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (*statsCMD) SetFlags(*flag.FlagSet) {}

func (c *statsCMD) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	registry := blockstate.Global()

	counts := make(map[blockstate.BlockKind]int)
	for id := 0; id < registry.StateCount(); id++ {
		state, _ := blockstate.StateByID(uint16(id))
		counts[state.Kind()]++
	}

	for _, kind := range blockstate.Kinds() {
		fmt.Printf("%-32s %4d states (default %d)\n",
			kind.NamespacedID(), counts[kind], blockstate.New(kind).ID())
	}
	fmt.Printf("%-32s %4d states\n", "total", registry.StateCount())
	return 0
}

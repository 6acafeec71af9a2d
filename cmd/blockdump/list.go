package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oomph-ac/blockstate"
	"github.com/sirupsen/logrus"
)

type listCMD struct {
	Kind string
}

func (*listCMD) Name() string     { return "list" }
func (*listCMD) Synopsis() string { return "prints block states in id order" }

func (c *listCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *listCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Kind, "kind", "", "only print states of this namespaced kind id")
}

func (c *listCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry := blockstate.Global()
	if c.Kind == "" {
		if err := registry.Dump(os.Stdout); err != nil {
			logrus.Error(err)
			return 1
		}
		return 0
	}

	kind, ok := blockstate.KindByNamespacedID(c.Kind)
	if !ok {
		logrus.Errorf("unknown block kind %q", c.Kind)
		return 1
	}
	for id := 0; id < registry.StateCount(); id++ {
		state, _ := blockstate.StateByID(uint16(id))
		if state.Kind() != kind {
			continue
		}
		fmt.Printf("%5d %s\n", state.ID(), state)
	}
	return 0
}

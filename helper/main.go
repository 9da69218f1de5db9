package main

import (
	"fmt"
	"os"

	"github.com/speedata/optionparser"
	"github.com/speedata/wiredlist/backend/bag"
	"github.com/speedata/wiredlist/backend/node"
)

var (
	debug   bool
	verbose bool
)

func listOptions() []node.Option[string] {
	if verbose {
		return []node.Option[string]{node.WithTrace[string](node.TraceSplice, node.TraceSegment, node.TraceCursor)}
	}
	return nil
}

func dothings() error {
	op := optionparser.NewOptionParser()
	op.Banner = "helper [options] command [arguments]"
	op.On("--debug", "Print every list element by element", &debug)
	op.On("--verbose", "Log every structural change", &verbose)
	op.Command("run", "Run a script: run script.yaml")
	op.Command("chop", "Chop the matching values off the start: chop pattern value...")
	op.Command("partition", "Split the values into chunks: partition size value...")
	op.Command("reverse", "Reverse the values: reverse value...")
	op.Command("ops", "List the operations a script can use")
	err := op.Parse()
	if err != nil {
		return err
	}

	if len(op.Extra) == 0 {
		op.Help()
		return nil
	}
	if verbose {
		bag.SetLogLevel(bag.DebugLevel)
	}
	args := op.Extra[1:]
	switch op.Extra[0] {
	case "run":
		if len(args) != 1 {
			op.Help()
			return nil
		}
		return runScript(args[0])
	case "chop":
		if len(args) < 1 {
			op.Help()
			return nil
		}
		return chop(args[0], args[1:])
	case "partition":
		if len(args) < 1 {
			op.Help()
			return nil
		}
		return partition(args[0], args[1:])
	case "reverse":
		return reverse(args)
	case "ops":
		return operations()
	}
	return fmt.Errorf("unknown command %q", op.Extra[0])
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

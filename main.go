package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/briangreenhill/ftracker/internal/batch"
	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/workout"
)

func main() {
	if err := runCLI(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runCLI(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			printUsage(stdout)
		case "version", "--version", "-v":
			fmt.Fprintln(stdout, "ftracker v0.1.0")
		case "types", "--types":
			return printTypes(stdout)
		case "run":
			if len(args) < 2 {
				return fmt.Errorf("run requires a records file")
			}
			records, err := batch.LoadRecords(args[1])
			if err != nil {
				return err
			}
			return runBatch(cfg, records, stdout, stderr)
		default:
			return fmt.Errorf("unknown command: %s", args[0])
		}
		return nil
	}

	records := batch.SampleRecords()
	if cfg.HasInput() {
		records, err = batch.LoadRecords(cfg.InputPath)
		if err != nil {
			return err
		}
	}
	return runBatch(cfg, records, stdout, stderr)
}

// runBatch prints one line per record; failed records do not stop the batch
func runBatch(cfg *config.Config, records []batch.Record, stdout, stderr io.Writer) error {
	logger := cfg.Logger(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	proc := batch.NewProcessor(workout.DefaultRegistry(), logger)
	return proc.Run(ctx, records, stdout)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ftracker [command]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  (none)              Summarize FTRACKER_INPUT, or the built-in sample packages")
	fmt.Fprintln(w, "  run <file>          Summarize records from a .json, .yaml or .yml file")
	fmt.Fprintln(w, "  types               List supported workout codes")
	fmt.Fprintln(w, "  help, -h            Show this help message")
	fmt.Fprintln(w, "  version, -v         Show version")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  FTRACKER_INPUT      Records file processed when no command is given")
	fmt.Fprintln(w, "  LOG_LEVEL           debug, info, warn or error (default info)")
	fmt.Fprintln(w, "  LOG_FORMAT          console or json (default console)")
}

func printTypes(w io.Writer) error {
	registry := workout.DefaultRegistry()
	for _, code := range registry.Codes() {
		arity, _ := registry.Arity(code)
		if _, err := fmt.Fprintf(w, "%s\t%d arguments\n", code, arity); err != nil {
			return err
		}
	}
	return nil
}

// Command fares reads fare search response documents and prints their
// variants, the best variants, or the option differences between two of
// them.
//
//	fares [flags] all SOURCE
//	fares [flags] best SOURCE
//	fares [flags] compare SOURCE_A SOURCE_B
//
// SOURCE is a file path or an http(s) URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/dharmasatrya/fareparse/internal/aggregator"
	"github.com/dharmasatrya/fareparse/internal/config"
	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/parser"
	"github.com/dharmasatrya/fareparse/internal/ranking"
	"github.com/dharmasatrya/fareparse/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("fares", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "json", "output format: json or text")
	strict := fs.Bool("strict", cfg.StrictOptions, "fail when variants disagree on passenger counts or round-trip")
	timeWeight := fs.Float64("time-weight", cfg.TimeWeight, "weight of total duration in the optimal score")
	costWeight := fs.Float64("cost-weight", cfg.CostWeight, "weight of total cost in the optimal score")
	sortBy := fs.String("sort", models.SortDocument, "sort variants by document, cost, duration or score")
	timeout := fs.Duration("timeout", cfg.LoadTimeout, "overall load timeout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fares [flags] all SOURCE | best SOURCE | compare SOURCE_A SOURCE_B")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *format != "json" && *format != "text" {
		fmt.Fprintf(stderr, "fares: unknown format %q\n", *format)
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	loader := aggregator.NewLoader(nil, aggregator.Config{
		Timeout: *timeout,
		Parser:  parser.Options{Strict: *strict},
	})
	weights := ranking.Weights{Time: *timeWeight, Cost: *costWeight}
	svc := service.New(loader, weights, cfg.FetchTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var (
		result any
		err    error
	)
	switch cmd := rest[0]; {
	case cmd == "all" && len(rest) == 2:
		result, err = svc.Variants(ctx, svc.Resolve(rest[1]), models.VariantQuery{SortBy: *sortBy})
	case cmd == "best" && len(rest) == 2:
		result, err = svc.Best(ctx, svc.Resolve(rest[1]), weights)
	case cmd == "compare" && len(rest) == 3:
		result, err = svc.Compare(ctx, svc.Resolve(rest[1]), svc.Resolve(rest[2]))
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "fares: %v\n", err)
		return 1
	}

	if *format == "text" {
		err = writeText(stdout, result)
	} else {
		err = writeJSON(stdout, result)
	}
	if err != nil {
		fmt.Fprintf(stderr, "fares: writing output: %v\n", err)
		return 1
	}
	return 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/pkg/currency"
)

func writeText(w io.Writer, result any) error {
	tw := tabwriter.NewWriter(w, 5, 3, 3, ' ', 0)

	switch r := result.(type) {
	case *models.VariantsResponse:
		writeOptions(tw, r.Options)
		fmt.Fprintln(tw, "# \t fare basis \t carriers \t total \t duration")
		for i, v := range r.Variants {
			writeVariant(tw, fmt.Sprint(i+1), v)
		}
	case *models.BestResponse:
		writeOptions(tw, r.Options)
		fmt.Fprintf(tw, "weights: time=%.2f cost=%.2f\n", r.TimeWeight, r.CostWeight)
		fmt.Fprintln(tw, "pick \t fare basis \t carriers \t total \t duration")
		writeVariant(tw, "cheapest", r.Best.Cheapest)
		writeVariant(tw, "most expensive", r.Best.MostExpensive)
		writeVariant(tw, "fastest", r.Best.Fastest)
		writeVariant(tw, "slowest", r.Best.Slowest)
		writeVariant(tw, "optimal", r.Best.Optimal)
	case *models.CompareResponse:
		if r.Diff.Empty() {
			fmt.Fprintln(tw, "options identical")
			break
		}
		fmt.Fprintf(tw, "option \t %s \t %s\n", r.Left, r.Right)
		for _, k := range models.OptionFieldNames {
			if _, ok := r.Diff.Left[k]; ok {
				fmt.Fprintf(tw, "%s \t %v \t %v\n", k, r.Diff.Left[k], r.Diff.Right[k])
			}
		}
	default:
		return fmt.Errorf("no text rendering for %T", result)
	}

	return tw.Flush()
}

func writeOptions(w io.Writer, o models.SearchOptions) {
	trip := "one-way"
	if o.RoundTrip {
		trip = "round-trip"
	}
	fmt.Fprintf(w, "%s: %s, %d adults, %d children, %d infants\n", o.Filename, trip, o.Adults, o.Children, o.Infants)
}

func writeVariant(w io.Writer, label string, v models.Variant) {
	fmt.Fprintf(w, "%s \t %s \t %s \t %s \t %s\n",
		label, v.FareBasis, strings.Join(v.Carriers(), ","), currency.Format(v.TotalCost), currency.FormatDuration(v.TotalSeconds))
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"relocarr/internal/relocate"
)

type jsonResult struct {
	Title   string `json:"title"`
	Outcome string `json:"outcome"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

type jsonReport struct {
	RunID   string         `json:"run_id"`
	Entity  string         `json:"entity"`
	Summary map[string]int `json:"summary"`
	Results []jsonResult   `json:"results"`
}

func renderReport(cmd *cobra.Command, report *relocate.Report, jsonOut bool) error {
	results := sortedResults(report.Results)

	if jsonOut {
		out := jsonReport{
			RunID:  report.RunID,
			Entity: report.Entity,
			Summary: map[string]int{
				"already_placed": report.Summary.AlreadyPlaced,
				"excluded":       report.Summary.Excluded,
				"relocated":      report.Summary.Relocated,
				"untagged":       report.Summary.Untagged,
				"failed":         report.Summary.Failed,
			},
		}
		for _, result := range results {
			jr := jsonResult{Title: result.Title, Outcome: result.Outcome.String(), Path: result.Path}
			if result.Err != nil {
				jr.Error = result.Err.Error()
			}
			out.Results = append(out.Results, jr)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(w, "No entries matched")
		return nil
	}

	if stdoutIsTerminal() {
		fmt.Fprintln(w, renderResultTable(results))
	} else {
		for _, result := range results {
			if result.Err != nil {
				fmt.Fprintf(w, "%s\t%s\t%v\n", result.Title, result.Outcome, result.Err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", result.Title, result.Outcome, result.Path)
		}
	}

	fmt.Fprintf(w, "%d processed: %d relocated, %d already placed, %d excluded, %d untagged, %d failed\n",
		report.Summary.Processed(), report.Summary.Relocated, report.Summary.AlreadyPlaced,
		report.Summary.Excluded, report.Summary.Untagged, report.Summary.Failed)
	return nil
}

// renderResultTable draws the interactive-terminal form of the report. The
// path column carries the error text for failed entries so the table stays
// at three columns.
func renderResultTable(results []relocate.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Outcome", "Path"})
	for _, result := range results {
		detail := result.Path
		if result.Err != nil {
			detail = result.Err.Error()
		}
		tw.AppendRow(table.Row{result.Title, result.Outcome.String(), detail})
	}
	return tw.Render()
}

// sortedResults orders results by collated title so report order is stable
// regardless of catalog order.
func sortedResults(results []relocate.Result) []relocate.Result {
	out := make([]relocate.Result, len(results))
	copy(out, results)
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

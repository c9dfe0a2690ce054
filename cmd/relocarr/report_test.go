package main

import (
	"errors"
	"strings"
	"testing"

	"relocarr/internal/relocate"
)

func TestRenderResultTable(t *testing.T) {
	results := []relocate.Result{
		{Title: "Arrival", Outcome: relocate.OutcomeRelocated, Path: "/data/movies-4k/Arrival"},
		{Title: "Dune", Outcome: relocate.OutcomeFailed, Path: "/data/movies/Dune", Err: errors.New("unexpected status 500")},
	}

	out := renderResultTable(results)
	for _, want := range []string{"Title", "Outcome", "Path", "Arrival", "relocated", "/data/movies-4k/Arrival"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	// Failed rows show the error where the path would be.
	if !strings.Contains(out, "unexpected status 500") {
		t.Fatalf("expected error text in table:\n%s", out)
	}
	if strings.Contains(out, "/data/movies/Dune") {
		t.Fatalf("failed row should not show a path:\n%s", out)
	}
}

func TestSortedResultsOrdersByTitle(t *testing.T) {
	results := []relocate.Result{
		{Title: "zodiac"},
		{Title: "Arrival"},
		{Title: "dune"},
	}

	sorted := sortedResults(results)
	got := make([]string, 0, len(sorted))
	for _, result := range sorted {
		got = append(got, result.Title)
	}
	want := []string{"Arrival", "dune", "zodiac"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	// The input slice is left untouched.
	if results[0].Title != "zodiac" {
		t.Fatalf("input mutated: %v", results)
	}
}

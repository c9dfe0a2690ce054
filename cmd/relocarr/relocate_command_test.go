package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relocarr/internal/services/arr"
	"relocarr/internal/testsupport"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := fmt.Sprintf("[run]\nlock_dir = %q\n", dir)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func executeRelocate(t *testing.T, server *testsupport.Server, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	base := []string{
		"movie",
		"--config", writeTestConfig(t),
		"--url", server.URL,
		"--api", testsupport.APIKey,
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMovieCommandRelocates(t *testing.T) {
	server := testsupport.NewServer(t, testsupport.Fixture{
		Entries: []map[string]any{
			testsupport.EntryJSON(1, "Dune", "/data/movies", "/data/movies/Dune", []int64{1}),
		},
		Tags:        []arr.Tag{{ID: 1, Label: "4K"}},
		RootFolders: []arr.RootFolder{{ID: 3, Path: "/data/movies-4k"}},
	})

	out, err := executeRelocate(t, server, "--tag", "4K", "--root", "/data/movies-4k")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	updates := server.Updates()
	if len(updates) != 1 {
		t.Fatalf("expected one update, got %d", len(updates))
	}
	if updates[0].Body["path"] != "/data/movies-4k/Dune" {
		t.Fatalf("unexpected path %v", updates[0].Body["path"])
	}
	if !strings.Contains(out, "relocated") {
		t.Fatalf("expected outcome in output, got %q", out)
	}
	if !strings.Contains(out, "1 relocated") {
		t.Fatalf("expected summary line, got %q", out)
	}
}

func TestMovieCommandJSONReport(t *testing.T) {
	server := testsupport.NewServer(t, testsupport.Fixture{
		Entries: []map[string]any{
			testsupport.EntryJSON(1, "Dune", "/data/movies", "/data/movies/Dune", []int64{1}),
		},
		Tags:        []arr.Tag{{ID: 1, Label: "4K"}},
		RootFolders: []arr.RootFolder{{ID: 3, Path: "/data/movies-4k"}},
	})

	out, err := executeRelocate(t, server, "--tag", "4K", "--root", "/data/movies-4k", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var report struct {
		RunID   string         `json:"run_id"`
		Entity  string         `json:"entity"`
		Summary map[string]int `json:"summary"`
		Results []struct {
			Title   string `json:"title"`
			Outcome string `json:"outcome"`
			Path    string `json:"path"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report %q: %v", out, err)
	}
	if report.Entity != "movie" || report.Summary["relocated"] != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(report.Results) != 1 || report.Results[0].Path != "/data/movies-4k/Dune" {
		t.Fatalf("unexpected results %+v", report.Results)
	}
}

func TestMovieCommandExitsZeroOnEntryFailure(t *testing.T) {
	server := testsupport.NewServer(t, testsupport.Fixture{
		Entries: []map[string]any{
			testsupport.EntryJSON(1, "Dune", "/data/movies", "/data/movies/Dune", []int64{1}),
		},
		Tags:         []arr.Tag{{ID: 1, Label: "4K"}},
		RootFolders:  []arr.RootFolder{{ID: 3, Path: "/data/movies-4k"}},
		UpdateStatus: 500,
	})

	out, err := executeRelocate(t, server, "--tag", "4K", "--root", "/data/movies-4k")
	if err != nil {
		t.Fatalf("per-entry failure must not fail the command: %v", err)
	}
	if !strings.Contains(out, "failed") {
		t.Fatalf("expected failure in report, got %q", out)
	}
}

func TestMovieCommandFailsOnUnknownTag(t *testing.T) {
	server := testsupport.NewServer(t, testsupport.Fixture{
		Tags:        []arr.Tag{{ID: 1, Label: "4K"}},
		RootFolders: []arr.RootFolder{{ID: 3, Path: "/data/movies-4k"}},
	})

	_, err := executeRelocate(t, server, "--tag", "8K", "--root", "/data/movies-4k")
	if err == nil {
		t.Fatal("expected configuration failure to surface as a command error")
	}
	if len(server.Updates()) != 0 {
		t.Fatalf("expected zero updates, got %d", len(server.Updates()))
	}
}

func TestMovieCommandRequiresAPIKey(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"movie",
		"--config", writeTestConfig(t),
		"--url", "http://localhost:7878/api/v3",
		"--tag", "4K",
		"--root", "/data/movies-4k",
	})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "API key") {
		t.Fatalf("expected API key error, got %v", err)
	}
}

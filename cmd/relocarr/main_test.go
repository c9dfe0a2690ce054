package main

import (
	"bytes"
	"testing"
)

func TestRootCommandWiresSubcommands(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"movie", "series", "config"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q subcommand", name)
		}
	}
}

func TestRelocateCommandRequiresTagAndRoot(t *testing.T) {
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"movie", "--api", "key"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing required flags")
	}
}

func TestHelpDoesNotRequireConfig(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected help output")
	}
}

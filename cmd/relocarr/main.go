package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"relocarr/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		// Resolution failures get a distinct code so wrappers can tell a
		// misconfigured run from a transport failure.
		if services.Fatal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

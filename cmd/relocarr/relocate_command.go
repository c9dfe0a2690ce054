package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"relocarr/internal/relocate"
	"relocarr/internal/runlock"
	"relocarr/internal/services"
	"relocarr/internal/services/arr"
)

type relocateFlags struct {
	url        string
	apiKey     string
	tag        string
	ignoreTags []string
	root       string
	testTitle  string
	insecure   bool
	jsonOut    bool
}

func newRelocateCommand(ctx *commandContext, entity arr.Entity, use, short string) *cobra.Command {
	flags := &relocateFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: `Move every ` + use + ` tagged with --tag into the --root folder.

The root folder must already exist on the instance. Entries carrying any
--ignore-tag are left alone, and entries already under the target root are
never touched, so re-running is safe. Per-entry update failures are reported
but do not fail the command; configuration failures (unknown tag, unknown
root folder, unreachable instance) abort before anything is moved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelocation(cmd, ctx, entity, flags)
		},
	}

	cmd.Flags().StringVar(&flags.url, "url", "", fmt.Sprintf("API base of the instance (default %s)", entity.DefaultURL))
	cmd.Flags().StringVar(&flags.apiKey, "api", "", "API key for the instance")
	cmd.Flags().StringVar(&flags.tag, "tag", "", "Tag whose entries should be moved")
	cmd.Flags().StringArrayVar(&flags.ignoreTags, "ignore-tag", nil, "Skip entries carrying this tag (repeatable)")
	cmd.Flags().StringVar(&flags.root, "root", "", "Destination root folder path, must exist on the instance")
	cmd.Flags().StringVar(&flags.testTitle, "test", "", "Process only the entry with exactly this title")
	cmd.Flags().BoolVar(&flags.insecure, "insecure", false, "Skip TLS certificate verification")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Emit the outcome report as JSON")
	_ = cmd.MarkFlagRequired("tag")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func runRelocation(cmd *cobra.Command, ctx *commandContext, entity arr.Entity, flags *relocateFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger()
	if err != nil {
		return err
	}

	baseURL := strings.TrimSpace(flags.url)
	if baseURL == "" {
		baseURL = cfg.Server.URL
	}
	if baseURL == "" {
		baseURL = entity.DefaultURL
	}

	apiKey := strings.TrimSpace(flags.apiKey)
	if apiKey == "" {
		apiKey = cfg.Server.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: pass --api, set RELOCARR_API_KEY, or configure server.api_key: %w", services.ErrConfiguration)
	}

	lock, err := runlock.Acquire(cfg.Run.LockDir, baseURL)
	if err != nil {
		return err
	}
	defer lock.Release()

	client, err := arr.NewClient(arr.Options{
		BaseURL:       baseURL,
		APIKey:        apiKey,
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		SkipTLSVerify: flags.insecure || cfg.Server.SkipTLSVerify,
	}, logger)
	if err != nil {
		return err
	}

	relocator := relocate.New(client, entity, relocate.Options{
		Tag:        flags.tag,
		IgnoreTags: flags.ignoreTags,
		RootFolder: flags.root,
		TestTitle:  flags.testTitle,
	}, logger)

	report, err := relocator.Run(cmd.Context())
	if err != nil {
		return err
	}

	// Per-entry failures are visible in the report but never fail the
	// command; only resolution failures above do.
	return renderReport(cmd, report, flags.jsonOut)
}

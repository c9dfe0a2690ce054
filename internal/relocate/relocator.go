package relocate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"relocarr/internal/logging"
	"relocarr/internal/services"
	"relocarr/internal/services/arr"
)

// API is the subset of the manager client the engine consumes.
type API interface {
	Entries(ctx context.Context, entity arr.Entity) ([]arr.Entry, error)
	Tags(ctx context.Context) ([]arr.Tag, error)
	RootFolders(ctx context.Context) ([]arr.RootFolder, error)
	Update(ctx context.Context, entity arr.Entity, entry *arr.Entry, moveFiles bool) error
}

// Result records the outcome for one processed entry.
type Result struct {
	Title   string
	Outcome Outcome
	// Path is the entry path after the run: rewritten for relocated entries,
	// unchanged otherwise.
	Path string
	Err  error
}

// Summary tallies results by outcome.
type Summary struct {
	AlreadyPlaced int
	Excluded      int
	Relocated     int
	Untagged      int
	Failed        int
}

// Processed returns the total number of classified entries.
func (s Summary) Processed() int {
	return s.AlreadyPlaced + s.Excluded + s.Relocated + s.Untagged + s.Failed
}

// Report is the full outcome of one run.
type Report struct {
	RunID   string
	Entity  string
	Results []Result
	Summary Summary
}

// Relocator drives one relocation run against a single instance.
type Relocator struct {
	api        API
	entity     arr.Entity
	opts       Options
	logger     *slog.Logger
	runID      string
	resolution Resolution
}

// New builds a Relocator. The logger may be nil; each Relocator carries its
// own options so independent runs never share state.
func New(client API, entity arr.Entity, opts Options, logger *slog.Logger) *Relocator {
	runID := uuid.NewString()
	scoped := logging.NewComponentLogger(logger, "relocator").With(
		logging.String(logging.FieldRunID, runID),
		logging.String(logging.FieldEntity, entity.Kind),
	)
	return &Relocator{
		api:    client,
		entity: entity,
		opts:   opts,
		logger: scoped,
		runID:  runID,
	}
}

// Run executes the full procedure: resolve configuration, snapshot the
// catalog, classify every entry, and request moves for the eligible ones.
// The returned error is non-nil only for run-fatal failures; per-entry
// update failures are recorded in the report.
func (r *Relocator) Run(ctx context.Context) (*Report, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}

	resolution, err := Resolve(ctx, r.api, r.opts)
	if err != nil {
		r.logger.Error("resolution failed", logging.Error(err))
		return nil, err
	}
	r.resolution = resolution
	r.logger.Debug("resolved configuration",
		logging.Int64("tag_id", resolution.TagID),
		logging.Int("ignore_tags", len(resolution.IgnoreTagIDs)),
		logging.Int64("root_folder_id", resolution.RootFolder.ID),
	)

	entries, err := r.api.Entries(ctx, r.entity)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "relocator", "catalog", "", err)
	}

	report := &Report{RunID: r.runID, Entity: r.entity.Kind}
	for i := range entries {
		entry := &entries[i]
		if r.opts.TestTitle != "" && entry.Title != r.opts.TestTitle {
			continue
		}
		report.Results = append(report.Results, r.process(ctx, entry))
	}
	report.Summary = tally(report.Results)

	r.logger.Info("run complete",
		logging.Int("processed", report.Summary.Processed()),
		logging.Int("relocated", report.Summary.Relocated),
		logging.Int("failed", report.Summary.Failed),
	)
	return report, nil
}

func (r *Relocator) process(ctx context.Context, entry *arr.Entry) Result {
	result := Result{Title: entry.Title, Path: entry.Path}

	switch Classify(entry, r.resolution) {
	case OutcomeAlreadyPlaced:
		result.Outcome = OutcomeAlreadyPlaced
		r.logger.Debug("already in the correct root folder", logging.String(logging.FieldTitle, entry.Title))
	case OutcomeExcluded:
		result.Outcome = OutcomeExcluded
		r.logger.Debug("skipped via ignore tag", logging.String(logging.FieldTitle, entry.Title))
	case OutcomeUntagged:
		result.Outcome = OutcomeUntagged
		r.logger.Debug("does not carry the tag", logging.String(logging.FieldTitle, entry.Title))
	case OutcomeRelocated:
		if err := r.relocate(ctx, entry); err != nil {
			result.Outcome = OutcomeFailed
			result.Err = err
			r.logger.Error("move request rejected",
				logging.String(logging.FieldTitle, entry.Title),
				logging.Error(err),
			)
			break
		}
		result.Outcome = OutcomeRelocated
		result.Path = entry.Path
		r.logger.Info("move request accepted",
			logging.String(logging.FieldTitle, entry.Title),
			logging.String("path", entry.Path),
		)
	}
	return result
}

// relocate rewrites the entry's root folder fields and submits the full
// record with moveFiles so the manager relocates files on its own schedule.
// The new path is plain concatenation of root and title, matching what the
// manager itself builds for a folder move.
func (r *Relocator) relocate(ctx context.Context, entry *arr.Entry) error {
	folder := r.resolution.RootFolder
	entry.RootFolderPath = folder.Path
	entry.RootFolderID = folder.ID
	entry.Path = folder.Path + "/" + entry.Title

	if err := r.api.Update(ctx, r.entity, entry, true); err != nil {
		return services.Wrap(services.ErrTransient, "relocator", "update", entry.Title, err)
	}
	return nil
}

func tally(results []Result) Summary {
	var summary Summary
	for _, result := range results {
		switch result.Outcome {
		case OutcomeAlreadyPlaced:
			summary.AlreadyPlaced++
		case OutcomeExcluded:
			summary.Excluded++
		case OutcomeRelocated:
			summary.Relocated++
		case OutcomeUntagged:
			summary.Untagged++
		case OutcomeFailed:
			summary.Failed++
		}
	}
	return summary
}

package relocate_test

import (
	"testing"

	"relocarr/internal/relocate"
	"relocarr/internal/services/arr"
)

func TestClassifyPrecedence(t *testing.T) {
	res := relocate.Resolution{
		TagID:        1,
		IgnoreTagIDs: map[int64]struct{}{2: {}},
		RootFolder:   arr.RootFolder{ID: 3, Path: "/data/movies-4k"},
	}

	cases := []struct {
		name           string
		tags           []int64
		rootFolderPath string
		want           relocate.Outcome
	}{
		{
			name:           "untagged",
			tags:           []int64{7},
			rootFolderPath: "/data/movies",
			want:           relocate.OutcomeUntagged,
		},
		{
			name:           "no tags at all",
			tags:           nil,
			rootFolderPath: "/data/movies",
			want:           relocate.OutcomeUntagged,
		},
		{
			name:           "eligible",
			tags:           []int64{1},
			rootFolderPath: "/data/movies",
			want:           relocate.OutcomeRelocated,
		},
		{
			name:           "already placed exact",
			tags:           []int64{1},
			rootFolderPath: "/data/movies-4k",
			want:           relocate.OutcomeAlreadyPlaced,
		},
		{
			name:           "already placed is a substring test",
			tags:           []int64{1},
			rootFolderPath: "/data/movies-4k/extra",
			want:           relocate.OutcomeAlreadyPlaced,
		},
		{
			name:           "excluded",
			tags:           []int64{1, 2},
			rootFolderPath: "/data/movies",
			want:           relocate.OutcomeExcluded,
		},
		{
			name:           "exclusion does not override correct placement",
			tags:           []int64{1, 2},
			rootFolderPath: "/data/movies-4k",
			want:           relocate.OutcomeAlreadyPlaced,
		},
		{
			name:           "ignore tag alone does not make an entry eligible",
			tags:           []int64{2},
			rootFolderPath: "/data/movies",
			want:           relocate.OutcomeExcluded,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := arr.Entry{Tags: tc.tags, RootFolderPath: tc.rootFolderPath}
			if got := relocate.Classify(&entry, res); got != tc.want {
				t.Fatalf("Classify() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestOutcomeStrings(t *testing.T) {
	want := map[relocate.Outcome]string{
		relocate.OutcomeAlreadyPlaced: "already-placed",
		relocate.OutcomeExcluded:      "excluded",
		relocate.OutcomeRelocated:     "relocated",
		relocate.OutcomeUntagged:      "untagged",
		relocate.OutcomeFailed:        "failed",
	}
	for outcome, label := range want {
		if outcome.String() != label {
			t.Fatalf("expected %q, got %q", label, outcome.String())
		}
	}
}

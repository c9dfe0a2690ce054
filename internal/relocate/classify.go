package relocate

import (
	"strings"

	"relocarr/internal/services/arr"
)

// Outcome is the per-entry result of a run.
type Outcome int

const (
	// OutcomeAlreadyPlaced means the entry carries the tag and already lives
	// under the desired root folder.
	OutcomeAlreadyPlaced Outcome = iota
	// OutcomeExcluded means an ignore tag prevented relocation.
	OutcomeExcluded
	// OutcomeRelocated means a move request was accepted by the manager.
	OutcomeRelocated
	// OutcomeUntagged means the entry does not carry the target tag.
	OutcomeUntagged
	// OutcomeFailed means the update request was not accepted.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyPlaced:
		return "already-placed"
	case OutcomeExcluded:
		return "excluded"
	case OutcomeRelocated:
		return "relocated"
	case OutcomeUntagged:
		return "untagged"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Classify applies the decision procedure to one entry, first match wins:
//
//  1. already placed: tagged and the current root folder path contains the
//     desired root path. The substring test (not equality) deliberately
//     tolerates normalization differences such as trailing separators and
//     must not be tightened.
//  2. excluded: the tag set intersects the ignore set. An excluded entry
//     that is already correctly placed still reports already-placed; the
//     ignore tags only prevent relocation.
//  3. relocate: tagged, not excluded, not in place yet.
//  4. untagged: everything else.
//
// A Classify result of OutcomeRelocated means the entry is eligible; the
// driver downgrades it to OutcomeFailed when the update is not accepted.
func Classify(entry *arr.Entry, res Resolution) Outcome {
	switch {
	case entry.HasTag(res.TagID) && strings.Contains(entry.RootFolderPath, res.RootFolder.Path):
		return OutcomeAlreadyPlaced
	case entry.HasAnyTag(res.IgnoreTagIDs):
		return OutcomeExcluded
	case entry.HasTag(res.TagID):
		return OutcomeRelocated
	default:
		return OutcomeUntagged
	}
}

package relocate

import (
	"strings"

	"relocarr/internal/services"
)

// Options describe one relocation run.
type Options struct {
	// Tag is the label whose entries should be moved.
	Tag string
	// IgnoreTags lists labels that exempt an entry from relocation even when
	// it carries Tag.
	IgnoreTags []string
	// RootFolder is the destination root path. It must already exist on the
	// instance; the engine never creates folders.
	RootFolder string
	// TestTitle, when set, restricts the run to the single entry whose title
	// matches it exactly. Every other entry is skipped before classification.
	TestTitle string
}

// Validate checks the option set before any API call is made.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Tag) == "" {
		return services.Wrap(services.ErrValidation, "relocate", "options", "tag must be set", nil)
	}
	if strings.TrimSpace(o.RootFolder) == "" {
		return services.Wrap(services.ErrValidation, "relocate", "options", "root folder must be set", nil)
	}
	for _, ignore := range o.IgnoreTags {
		if strings.TrimSpace(ignore) == "" {
			return services.Wrap(services.ErrValidation, "relocate", "options", "ignore tags must not be empty", nil)
		}
	}
	return nil
}

package relocate

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"relocarr/internal/services"
	"relocarr/internal/services/arr"
)

// Resolution carries the tag ids and root folder a run operates on. It is
// computed once, before any entry is classified.
type Resolution struct {
	TagID        int64
	IgnoreTagIDs map[int64]struct{}
	RootFolder   arr.RootFolder
}

// Resolve maps the configured names onto live API state. Every failure here
// is fail-closed: an unresolvable exclusion tag aborts the run rather than
// being silently ignored, since that could cause unwanted moves.
func Resolve(ctx context.Context, api API, opts Options) (Resolution, error) {
	var res Resolution

	tags, err := api.Tags(ctx)
	if err != nil {
		return res, services.Wrap(services.ErrTransient, "resolver", "tags", "", err)
	}

	byLabel := make(map[string]int64, len(tags))
	for _, tag := range tags {
		byLabel[tag.Label] = tag.ID
	}

	tagID, ok := byLabel[opts.Tag]
	if !ok {
		return res, services.Wrap(services.ErrNotFound, "resolver", "tag", fmt.Sprintf("tag %q is not known to the instance", opts.Tag), nil)
	}
	res.TagID = tagID

	res.IgnoreTagIDs = make(map[int64]struct{}, len(opts.IgnoreTags))
	var missing []string
	for _, label := range opts.IgnoreTags {
		id, ok := byLabel[label]
		if !ok {
			missing = append(missing, label)
			continue
		}
		res.IgnoreTagIDs[id] = struct{}{}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return res, services.Wrap(services.ErrNotFound, "resolver", "ignore-tags",
			fmt.Sprintf("ignore tags not known to the instance: %s", strings.Join(missing, ", ")), nil)
	}

	folders, err := api.RootFolders(ctx)
	if err != nil {
		return res, services.Wrap(services.ErrTransient, "resolver", "root folders", "", err)
	}
	for _, folder := range folders {
		if folder.Path == opts.RootFolder {
			res.RootFolder = folder
			return res, nil
		}
	}
	return res, services.Wrap(services.ErrNotFound, "resolver", "root folder",
		fmt.Sprintf("root folder %q is not configured on the instance", opts.RootFolder), nil)
}

package arr

import (
	"encoding/json"
	"fmt"
)

// Tag is a named label attachable to entries.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// RootFolder is a storage location known to the manager.
type RootFolder struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
}

// Entry is one movie or series record. The manager expects updates to carry
// the full record back, so unmarshalling keeps every field of the original
// JSON object and marshalling rewrites only the fields this tool touches.
type Entry struct {
	ID             int64
	Title          string
	Path           string
	RootFolderPath string
	RootFolderID   int64
	Tags           []int64

	raw map[string]json.RawMessage
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}

	var known struct {
		ID             int64   `json:"id"`
		Title          string  `json:"title"`
		Path           string  `json:"path"`
		RootFolderPath string  `json:"rootFolderPath"`
		RootFolderID   int64   `json:"rootFolderId"`
		Tags           []int64 `json:"tags"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("decode entry fields: %w", err)
	}

	e.ID = known.ID
	e.Title = known.Title
	e.Path = known.Path
	e.RootFolderPath = known.RootFolderPath
	e.RootFolderID = known.RootFolderID
	e.Tags = known.Tags
	e.raw = raw
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.raw)+6)
	for key, value := range e.raw {
		out[key] = value
	}

	set := func(key string, value any) error {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode entry field %q: %w", key, err)
		}
		out[key] = encoded
		return nil
	}

	if err := set("id", e.ID); err != nil {
		return nil, err
	}
	if err := set("title", e.Title); err != nil {
		return nil, err
	}
	if err := set("path", e.Path); err != nil {
		return nil, err
	}
	if err := set("rootFolderPath", e.RootFolderPath); err != nil {
		return nil, err
	}
	if err := set("rootFolderId", e.RootFolderID); err != nil {
		return nil, err
	}
	tags := e.Tags
	if tags == nil {
		tags = []int64{}
	}
	if err := set("tags", tags); err != nil {
		return nil, err
	}

	return json.Marshal(out)
}

// HasTag reports whether the entry carries the given tag id.
func (e *Entry) HasTag(id int64) bool {
	for _, tag := range e.Tags {
		if tag == id {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the entry carries any tag from the given set.
func (e *Entry) HasAnyTag(ids map[int64]struct{}) bool {
	for _, tag := range e.Tags {
		if _, ok := ids[tag]; ok {
			return true
		}
	}
	return false
}

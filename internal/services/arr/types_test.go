package arr_test

import (
	"encoding/json"
	"testing"

	"relocarr/internal/services/arr"
)

func TestEntryPreservesUnknownFields(t *testing.T) {
	source := `{
		"id": 11,
		"title": "Arrival",
		"path": "/data/movies/Arrival",
		"rootFolderPath": "/data/movies",
		"rootFolderId": 1,
		"tags": [4],
		"tmdbId": 329865,
		"images": [{"coverType": "poster", "url": "/poster.jpg"}],
		"minimumAvailability": "released"
	}`

	var entry arr.Entry
	if err := json.Unmarshal([]byte(source), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	encoded, err := json.Marshal(&entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		t.Fatalf("decode round trip: %v", err)
	}
	if out["tmdbId"] != float64(329865) {
		t.Fatalf("expected tmdbId preserved, got %v", out["tmdbId"])
	}
	if out["minimumAvailability"] != "released" {
		t.Fatalf("expected minimumAvailability preserved, got %v", out["minimumAvailability"])
	}
	images, ok := out["images"].([]any)
	if !ok || len(images) != 1 {
		t.Fatalf("expected images preserved, got %v", out["images"])
	}
}

func TestEntryMarshalEmitsEmptyTagSlice(t *testing.T) {
	entry := arr.Entry{ID: 1, Title: "Solo"}
	encoded, err := json.Marshal(&entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	tags, ok := out["tags"].([]any)
	if !ok || len(tags) != 0 {
		t.Fatalf("expected empty tags array, got %v", out["tags"])
	}
}

func TestHasAnyTag(t *testing.T) {
	entry := arr.Entry{Tags: []int64{1, 5}}
	if !entry.HasAnyTag(map[int64]struct{}{5: {}}) {
		t.Fatal("expected intersection")
	}
	if entry.HasAnyTag(map[int64]struct{}{9: {}}) {
		t.Fatal("expected no intersection")
	}
	if entry.HasAnyTag(nil) {
		t.Fatal("expected empty set to never match")
	}
}

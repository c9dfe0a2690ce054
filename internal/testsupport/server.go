package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"relocarr/internal/services/arr"
)

// APIKey is the key the fake server requires and NewConfig seeds.
const APIKey = "test-key"

// Fixture seeds the fake manager server. Entries are raw JSON objects so
// tests can carry fields the tool does not model.
type Fixture struct {
	Entity      arr.Entity
	Entries     []map[string]any
	Tags        []arr.Tag
	RootFolders []arr.RootFolder
	// UpdateStatus is the status returned for PUTs; zero means 202.
	UpdateStatus int
}

// Update is one recorded PUT request.
type Update struct {
	Path  string
	Query url.Values
	Body  map[string]any
}

// Server is an httptest fake of the manager API that records updates.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	updates []Update
}

// NewServer starts a fake manager serving the fixture. It is closed when the
// test finishes.
func NewServer(t testing.TB, fixture Fixture) *Server {
	t.Helper()

	if fixture.Entity.Kind == "" {
		fixture.Entity = arr.Movies
	}
	status := fixture.UpdateStatus
	if status == 0 {
		status = http.StatusAccepted
	}

	server := &Server{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != APIKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/"+fixture.Entity.APIPath:
			writeJSON(t, w, fixture.Entries)
		case r.Method == http.MethodGet && r.URL.Path == "/tag":
			writeJSON(t, w, fixture.Tags)
		case r.Method == http.MethodGet && r.URL.Path == "/rootfolder":
			writeJSON(t, w, fixture.RootFolders)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/"+fixture.Entity.APIPath+"/"):
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode update body: %v", err)
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			server.mu.Lock()
			server.updates = append(server.updates, Update{Path: r.URL.Path, Query: r.URL.Query(), Body: body})
			server.mu.Unlock()
			w.WriteHeader(status)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// Updates returns a copy of the recorded PUT requests.
func (s *Server) Updates() []Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Update, len(s.updates))
	copy(out, s.updates)
	return out
}

// Client returns an API client pointed at the fake server.
func (s *Server) Client(t testing.TB) *arr.Client {
	t.Helper()
	client, err := arr.NewClient(arr.Options{BaseURL: s.URL, APIKey: APIKey}, nil)
	if err != nil {
		t.Fatalf("build test client: %v", err)
	}
	return client
}

// EntryJSON builds a raw catalog entry for fixtures.
func EntryJSON(id int64, title, rootFolderPath, path string, tags []int64) map[string]any {
	if tags == nil {
		tags = []int64{}
	}
	return map[string]any{
		"id":               id,
		"title":            title,
		"path":             path,
		"rootFolderPath":   rootFolderPath,
		"rootFolderId":     1,
		"tags":             tags,
		"monitored":        true,
		"qualityProfileId": 4,
	}
}

func writeJSON(t testing.TB, w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if value == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	if err := json.NewEncoder(w).Encode(value); err != nil {
		t.Errorf("encode fixture: %v", err)
	}
}

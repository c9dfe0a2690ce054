package arr

// Entity describes one relocatable record type exposed by the manager API.
// Movie and series workflows are structurally identical; the descriptor is
// the single point of variation.
type Entity struct {
	// Kind names the entity in logs and reports.
	Kind string
	// APIPath is the endpoint segment under the API base.
	APIPath string
	// DefaultURL is the local API base used when none is configured.
	DefaultURL string
}

var (
	// Movies targets a Radarr-style instance.
	Movies = Entity{Kind: "movie", APIPath: "movie", DefaultURL: "http://localhost:7878/api/v3"}
	// Series targets a Sonarr-style instance.
	Series = Entity{Kind: "series", APIPath: "series", DefaultURL: "http://localhost:8989/api/v3"}
)

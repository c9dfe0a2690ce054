// Package arr implements the HTTP client for Radarr/Sonarr-style media
// managers: catalog, tag, and root-folder reads plus full-entry updates
// with the moveFiles flag.
//
// The Entity descriptor is the single point of variation between the movie
// and series APIs; everything else is shared. Entry preserves the fields of
// the fetched JSON object it does not model so updates send a faithful full
// replacement back to the manager.
package arr

// filepath: internal/models/models.go
package models

import "time"

// Movie is one row of the externally owned movies table. Columns other
// than original_id are pass-through: they are returned to the client
// verbatim and never interpreted beyond sorting and filtering.
type Movie struct {
	OriginalID   string     `json:"original_id"`
	Filename     string     `json:"filename"`
	SizeBytes    *int64     `json:"size_bytes"`
	Quality      *string    `json:"quality"`
	LastUpdated  *time.Time `json:"last_updated_ts"`
	IsSeries     bool       `json:"is_series"`
	DownloadLink *string    `json:"download_link"`
	StreamLink   *string    `json:"stream_link"`
	Language     *string    `json:"language"`
}

// MovieQuery carries the raw, unparsed query parameters of one request.
// Normalization (defaults, clamping, sort resolution) happens in the
// catalog service so the envelope can echo the inputs untouched.
type MovieQuery struct {
	Search  string
	Quality string
	Type    string
	Sort    string
	SortDir string
	Page    string
	Limit   string
	ID      string
}

// QueryFilters echoes the raw filter inputs back in the envelope.
type QueryFilters struct {
	Search  string `json:"search"`
	Quality string `json:"quality"`
	Type    string `json:"type"`
}

// QuerySorting echoes the raw sorting inputs back in the envelope.
type QuerySorting struct {
	Sort    string `json:"sort"`
	SortDir string `json:"sortDir"`
}

// MoviePage is the paginated response envelope.
type MoviePage struct {
	Items      []Movie      `json:"items"`
	TotalItems int          `json:"totalItems"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	Limit      int          `json:"limit"`
	Filters    QueryFilters `json:"filters"`
	Sorting    QuerySorting `json:"sorting"`
}

// Info describes the running server for the public info endpoint.
type Info struct {
	ServiceName string    `json:"serviceName"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	UptimeSince time.Time `json:"uptimeSince"`
}

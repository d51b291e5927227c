// filepath: internal/api/handlers/movie_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"moviedb/internal/logging"
	"moviedb/internal/models"
)

// @Summary Query the movie catalog
// @Description Retrieves a filtered, sorted, paginated page of movie records. An id parameter turns the request into an exact single-record lookup.
// @Tags movies
// @Produce  json
// @Param   search  query  string  false  "Search text, matched against normalized filenames"
// @Param   quality query  string  false  "Exact quality match (e.g. 1080p)"
// @Param   type    query  string  false  "'movies' or 'series'; anything else is ignored"
// @Param   sort    query  string  false  "Sort key: id, filename, size, quality, lastUpdated (default lastUpdated)"
// @Param   sortDir query  string  false  "'asc' or 'desc' (default desc)"
// @Param   page    query  int     false  "Page number (default 1)"
// @Param   limit   query  int     false  "Page size (default 50, max 100)"
// @Param   id      query  string  false  "Exact id lookup; all other filters are ignored"
// @Success 200 {object} models.MoviePage
// @Failure 500 {object} ErrorResponse "Database failure"
// @Router /movies [get]
func (h *Handlers) QueryMovies(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := models.MovieQuery{
		Search:  params.Get("search"),
		Quality: params.Get("quality"),
		Type:    params.Get("type"),
		Sort:    params.Get("sort"),
		SortDir: params.Get("sortDir"),
		Page:    params.Get("page"),
		Limit:   params.Get("limit"),
		ID:      params.Get("id"),
	}

	page, err := h.Movies.QueryMovies(r.Context(), query)
	if err != nil {
		logging.Log.Errorf("QueryMovies failed (params: %s): %v", r.URL.RawQuery, err)
		details := "Internal server error."
		if h.Cfg.IsDevelopment() {
			details = err.Error()
		}
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to fetch movie data from database.",
			Details: details,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// MethodNotAllowed replies 405 with an Allow header for any method other
// than GET and OPTIONS.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, OPTIONS")
	respondWithError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", r.Method))
}

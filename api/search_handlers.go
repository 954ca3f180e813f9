package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchHandler runs one ranked search across all facets and records the
// raw query in the search history.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		SendValidationError(c, "Field 'query' cannot be empty")
		return
	}

	// History records the raw query as submitted, whether or not the
	// search below succeeds.
	api.history.Record(req.Query)

	result, err := api.searcher.Search(c.Request.Context(), req.Query)
	if err != nil {
		SendSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HistoryRequest defines the structure for explicit history recording.
type HistoryRequest struct {
	Query string `json:"query"`
}

// RecordHistoryHandler appends one raw query string to the search history
// without running a search.
// Request Body: HistoryRequest
func (api *API) RecordHistoryHandler(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.Query == "" {
		SendValidationError(c, "Field 'query' cannot be empty")
		return
	}

	entry := api.history.Record(req.Query)
	c.JSON(http.StatusCreated, entry)
}

// GetHistoryHandler returns all recorded search queries in append order.
func (api *API) GetHistoryHandler(c *gin.Context) {
	entries := api.history.Entries()
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/monument-search/internal/errors"
	"github.com/gcbaptista/monument-search/services"
)

// ListMonumentsHandler returns the full dataset in primary-key order.
func (api *API) ListMonumentsHandler(c *gin.Context) {
	monuments, err := api.store.Monuments(c.Request.Context())
	if err != nil {
		SendStorageError(c, "list monuments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monuments": monuments,
		"total":     len(monuments),
	})
}

// GetMonumentHandler returns one monument with its participants.
func (api *API) GetMonumentHandler(c *gin.Context) {
	idParam := c.Param("monumentId")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		SendValidationError(c, "Monument ID must be an integer, got '"+idParam+"'")
		return
	}

	monument, err := api.store.MonumentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, internalErrors.ErrMonumentNotFound) {
			SendMonumentNotFoundError(c, idParam)
			return
		}
		SendStorageError(c, "get monument", err)
		return
	}
	c.JSON(http.StatusOK, monument)
}

// MonumentsWithinHandler returns every monument inside a geographic
// bounding box.
// Query parameters: min_lat, max_lat, min_lon, max_lon (all required).
func (api *API) MonumentsWithinHandler(c *gin.Context) {
	box, ok := parseBoundingBox(c)
	if !ok {
		return
	}

	monuments, err := api.store.MonumentsWithin(c.Request.Context(), box)
	if err != nil {
		SendStorageError(c, "bounding box query", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monuments": monuments,
		"total":     len(monuments),
	})
}

// ConstructionYearsHandler returns the oldest and newest construction
// years in the dataset.
func (api *API) ConstructionYearsHandler(c *gin.Context) {
	years, err := api.store.ConstructionYearRange(c.Request.Context())
	if err != nil {
		SendStorageError(c, "construction year range", err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// parseBoundingBox reads the four bounding box query parameters. On
// failure it sends a validation error and returns ok=false.
func parseBoundingBox(c *gin.Context) (services.BoundingBox, bool) {
	var box services.BoundingBox
	fields := []struct {
		name string
		dest *float64
	}{
		{"min_lat", &box.MinLat},
		{"max_lat", &box.MaxLat},
		{"min_lon", &box.MinLon},
		{"max_lon", &box.MaxLon},
	}

	for _, field := range fields {
		raw := c.Query(field.name)
		if raw == "" {
			SendValidationError(c, "Query parameter '"+field.name+"' is required")
			return services.BoundingBox{}, false
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			SendValidationError(c, "Query parameter '"+field.name+"' must be a number, got '"+raw+"'")
			return services.BoundingBox{}, false
		}
		*field.dest = value
	}

	if box.MinLat > box.MaxLat {
		SendValidationError(c, "min_lat must not exceed max_lat")
		return services.BoundingBox{}, false
	}
	if box.MinLon > box.MaxLon {
		SendValidationError(c, "min_lon must not exceed max_lon")
		return services.BoundingBox{}, false
	}
	return box, true
}

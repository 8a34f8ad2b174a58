package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"discovery-server/models"
	"discovery-server/service"
	"discovery-server/util"
)

const (
	NEARBY_LAT_QUERY_ARG    = "lat"
	NEARBY_LNG_QUERY_ARG    = "lng"
	NEARBY_RADIUS_QUERY_ARG = "radius"
)

// SearchHandler serves the public discovery endpoints.
type SearchHandler struct {
	discoveryService *services.DiscoveryService
	defaultRadiusKm  float64
	logger           *zap.SugaredLogger
}

func NewSearchHandler(discoveryService *services.DiscoveryService, defaultRadiusKm float64, logger *zap.SugaredLogger) *SearchHandler {
	return &SearchHandler{
		discoveryService: discoveryService,
		defaultRadiusKm:  defaultRadiusKm,
		logger:           logger,
	}
}

// SearchBusinesses handles GET /v1/businesses/search.
// Query args: q, category, subcategory (comma-separated), lat, lng,
// sort (popular | default proximity), status (open | all). Malformed
// optional args degrade instead of failing the request.
func (h *SearchHandler) SearchBusinesses(w http.ResponseWriter, r *http.Request) {
	query := models.SearchQueryFromValues(r.URL.Query())

	results, err := h.discoveryService.Search(query)
	if err != nil {
		h.logger.Errorw("search failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.logger.Errorw("error encoding response", "error", err)
	}
}

// GetBusinessesNearby handles GET /v1/businesses/nearby.
// Expects ?lat={float}&lng={float}&radius={km, optional}.
func (h *SearchHandler) GetBusinessesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, NEARBY_LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+NEARBY_LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err := parseArgFloat64(vals, NEARBY_LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+NEARBY_LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radiusKm := h.defaultRadiusKm
	if raw := vals.Get(NEARBY_RADIUS_QUERY_ARG); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+NEARBY_RADIUS_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}

	businesses, err := h.discoveryService.GetNearby(lat, lng, radiusKm)
	if err != nil {
		h.logger.Errorw("error loading nearby businesses", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(businesses); err != nil {
		h.logger.Errorw("error encoding response", "error", err)
	}
}

// MapBusinesses handles GET /v1/businesses/map: runs the same search as
// SearchBusinesses and renders the ordered results on an HTML scatter map.
// Debug surface, not part of the public API contract.
func (h *SearchHandler) MapBusinesses(w http.ResponseWriter, r *http.Request) {
	query := models.SearchQueryFromValues(r.URL.Query())

	results, err := h.discoveryService.Search(query)
	if err != nil {
		h.logger.Errorw("search failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotResultsMap(results, w); err != nil {
		h.logger.Errorw("error rendering results map", "error", err)
	}
}

// Ping handles GET /ping.
func (h *SearchHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

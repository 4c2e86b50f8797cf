package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"geohash-service/cache"
	"geohash-service/config"
	"geohash-service/geo"
	"geohash-service/geohash"
	"geohash-service/models"
)

// EncodeHandler turns a coordinate into a geohash string
func EncodeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EncodeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	precision := req.Precision
	if precision == 0 {
		precision = defaultPrecision()
	}

	hash, err := geohash.EncodeWithPrecision(geo.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, precision)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.EncodeResponse{Geohash: hash})
}

// DecodeHandler returns the bounding box and centroid of a geohash
func DecodeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hash := vars["geohash"]

	cell, err := geohash.Decode(hash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.DecodeResponse{Geohash: hash, Cell: cell})
}

// AllNeighborsHandler returns the eight surrounding cells, northwest first,
// clockwise
func AllNeighborsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hash := vars["geohash"]

	neighbors, err := geohash.AllNeighbors(hash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order := []geohash.Direction{
		geohash.NorthWest, geohash.North, geohash.NorthEast, geohash.East,
		geohash.SouthEast, geohash.South, geohash.SouthWest, geohash.West,
	}
	entries := make([]models.NeighborEntry, len(neighbors))
	for i, neighbor := range neighbors {
		entries[i] = models.NeighborEntry{Direction: string(order[i]), Geohash: neighbor}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.NeighborsResponse{Geohash: hash, Neighbors: entries})
}

// NeighborHandler returns the adjacent cell in one direction
func NeighborHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hash := vars["geohash"]
	direction := geohash.Direction(vars["direction"])

	neighbor, err := geohash.Neighbor(hash, direction)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.NeighborsResponse{
		Geohash:   hash,
		Neighbors: []models.NeighborEntry{{Direction: string(direction), Geohash: neighbor}},
	})
}

// RadiusHandler enumerates same-precision cells within a distance of the
// center cell, consulting the Redis cache when one is connected
func RadiusHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RadiusRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	minPoints := req.MinPointsInRange
	if minPoints == 0 {
		minPoints = 1
	}

	ctx := r.Context()
	if cells, ok := cache.GetCells(ctx, req.Geohash, req.DistanceKm, minPoints); ok {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.RadiusResponse{
			Geohash: req.Geohash,
			Cells:   cells,
			Count:   len(cells),
			Cached:  true,
		})
		return
	}

	cells, err := geohash.CellsWithinRadius(req.Geohash, req.DistanceKm, minPoints)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cache.SetCells(ctx, req.Geohash, req.DistanceKm, minPoints, cells)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.RadiusResponse{
		Geohash: req.Geohash,
		Cells:   cells,
		Count:   len(cells),
	})
}

// DistanceHandler computes the great-circle distance between two coordinates
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	var req models.DistanceRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.DistanceResponse{
		DistanceKm: geo.DistanceKm(req.From, req.To),
	})
}

// FormatHandler renders a coordinate in degree/minute/second notation
func FormatHandler(w http.ResponseWriter, r *http.Request) {
	var req models.FormatRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	formatted := geo.FormatDMS(geo.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, geo.DMSOptions{Separator: req.Separator})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.FormatResponse{Formatted: formatted})
}

// defaultPrecision reads the configured precision, falling back to the
// library default when the service runs without config (as in tests).
func defaultPrecision() int {
	if config.Cfg != nil && config.Cfg.Geohash.DefaultPrecision > 0 {
		return config.Cfg.Geohash.DefaultPrecision
	}
	return geohash.DefaultPrecision
}

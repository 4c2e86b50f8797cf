package models

import (
	"geohash-service/geo"
	"geohash-service/geohash"
)

type EncodeRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision int     `json:"precision"` // optional, defaults to the configured precision
}

type EncodeResponse struct {
	Geohash string `json:"geohash"`
}

type DecodeResponse struct {
	Geohash string       `json:"geohash"`
	Cell    geohash.Cell `json:"cell"`
}

type NeighborEntry struct {
	Direction string `json:"direction"`
	Geohash   string `json:"geohash"`
}

type NeighborsResponse struct {
	Geohash   string          `json:"geohash"`
	Neighbors []NeighborEntry `json:"neighbors"`
}

type RadiusRequest struct {
	Geohash          string  `json:"geohash"`
	DistanceKm       float64 `json:"distance_km"`
	MinPointsInRange int     `json:"min_points_in_range"` // optional, defaults to 1
}

type RadiusResponse struct {
	Geohash string   `json:"geohash"`
	Cells   []string `json:"cells"`
	Count   int      `json:"count"`
	Cached  bool     `json:"cached"`
}

type DistanceRequest struct {
	From geo.Coordinate `json:"from"`
	To   geo.Coordinate `json:"to"`
}

type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}

type FormatRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Separator string  `json:"separator"` // optional, placed between DMS components
}

type FormatResponse struct {
	Formatted string `json:"formatted"`
}

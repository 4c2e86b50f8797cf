package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geohash-service/api"
	"geohash-service/models"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	api.RegisterRoutes().ServeHTTP(rec, req)
	return rec
}

func TestEncodeHandler(t *testing.T) {
	t.Run("encodes at the default precision", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/encode",
			`{"latitude": 38.897872, "longitude": -77.036510}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.EncodeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "dqcjqcps", resp.Geohash)
	})

	t.Run("encodes at a requested precision", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/encode",
			`{"latitude": 38.897872, "longitude": -77.036510, "precision": 7}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.EncodeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "dqcjqcp", resp.Geohash)
	})

	t.Run("rejects negative precision", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/encode",
			`{"latitude": 1, "longitude": 1, "precision": -2}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/encode", `{"latitude": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDecodeHandler(t *testing.T) {
	t.Run("returns the cell geometry", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/decode/dqcjqcps", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.DecodeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "dqcjqcps", resp.Geohash)
		assert.InDelta(t, 38.897953, resp.Cell.NorthWest.Latitude, 1e-5)
		assert.InDelta(t, -77.036819, resp.Cell.NorthWest.Longitude, 1e-5)
		assert.InDelta(t, 38.897781, resp.Cell.SouthEast.Latitude, 1e-5)
		assert.InDelta(t, -77.036476, resp.Cell.SouthEast.Longitude, 1e-5)
	})

	t.Run("rejects hashes outside the alphabet", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/decode/dqcjqcpa", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNeighborHandlers(t *testing.T) {
	t.Run("all eight neighbors, northwest first", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/neighbors/dqcjqcps", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.NeighborsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Neighbors, 8)
		assert.Equal(t, models.NeighborEntry{Direction: "nw", Geohash: "dqcjqcpm"}, resp.Neighbors[0])
		assert.Equal(t, models.NeighborEntry{Direction: "n", Geohash: "dqcjqcpt"}, resp.Neighbors[1])
		assert.Equal(t, models.NeighborEntry{Direction: "w", Geohash: "dqcjqcpk"}, resp.Neighbors[7])
	})

	t.Run("single direction", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/neighbors/dqcjqcps/sw", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.NeighborsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Neighbors, 1)
		assert.Equal(t, "dqcjqcp7", resp.Neighbors[0].Geohash)
	})

	t.Run("rejects unknown directions", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/neighbors/dqcjqcps/up", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRadiusHandler(t *testing.T) {
	t.Run("returns the surrounding cells uncached", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/radius",
			`{"geohash": "dqcjqcps", "distance_km": 0.03}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RadiusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 9, resp.Count)
		assert.Len(t, resp.Cells, 9)
		assert.Contains(t, resp.Cells, "dqcjqcps")
		assert.Contains(t, resp.Cells, "dqcjqcpk")
		assert.False(t, resp.Cached)
	})

	t.Run("rejects thresholds outside 1..5", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/radius",
			`{"geohash": "dqcjqcps", "distance_km": 0.03, "min_points_in_range": 9}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDistanceHandler(t *testing.T) {
	t.Run("computes great-circle distance", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/distance",
			`{"from": {"latitude": 0, "longitude": 0}, "to": {"latitude": 0, "longitude": 1}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.DistanceResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.InDelta(t, 111.195, resp.DistanceKm, 0.001)
	})
}

func TestFormatHandler(t *testing.T) {
	t.Run("formats DMS with a separator", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/format",
			`{"latitude": 38.897872, "longitude": -77.036510, "separator": " "}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.FormatResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "38° 53' 52.34\" N 77° 2' 11.44\" W", resp.Formatted)
	})
}

package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func RegisterRoutes() http.Handler {
	router := mux.NewRouter()

	// Geohash endpoints
	router.HandleFunc("/encode", EncodeHandler).Methods("POST")
	router.HandleFunc("/decode/{geohash}", DecodeHandler).Methods("GET")
	router.HandleFunc("/neighbors/{geohash}", AllNeighborsHandler).Methods("GET")
	router.HandleFunc("/neighbors/{geohash}/{direction}", NeighborHandler).Methods("GET")
	router.HandleFunc("/radius", RadiusHandler).Methods("POST")

	// Coordinate endpoints
	router.HandleFunc("/distance", DistanceHandler).Methods("POST")
	router.HandleFunc("/format", FormatHandler).Methods("POST")

	// Add CORS support
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(router)
}

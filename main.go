package main

import (
	"log"
	"net/http"

	"geohash-service/api"
	"geohash-service/cache"
	"geohash-service/config"
)

func main() {
	// Initialize configuration
	config.InitConfig()

	// Initialize Redis; the radius cache is optional, so run uncached when
	// the server is unreachable
	if err := cache.InitRedis(); err != nil {
		log.Printf("Redis unavailable, radius results will not be cached: %v", err)
	}

	// Register routes
	router := api.RegisterRoutes()

	// Start the server
	addr := config.Cfg.Server.Addr
	log.Println("Server started on " + addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

// cmd/stubapi/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"libery/internal/stubapi"
)

func main() {
	srv := stubapi.New()
	srv.Seed(stubapi.SeedData())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("stub catalog backend listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, srv.Handler()))
}

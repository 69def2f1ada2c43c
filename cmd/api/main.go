// HTTP API server for the polymer economics comparison engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apicompare "polymer_economics/pkg/api/compare"
	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
)

func main() {
	// Load environment variables
	godotenv.Load()

	scenarioPath := flag.String("scenario", os.Getenv("POLYCALC_SCENARIO"), "YAML/HJSON scenario file with default assumptions")
	flag.Parse()

	defaults := config.Default()
	if *scenarioPath != "" {
		loaded, err := config.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
		defaults = loaded
		fmt.Printf("[CONFIG] Loaded scenario defaults from %s\n", *scenarioPath)
	}

	handler := apicompare.NewHandler(catalog.Default(), defaults)
	http.HandleFunc("/api/compare", handler.HandleCompare)
	http.HandleFunc("/api/catalog", handler.HandleCatalog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("[SERVER] Polymer economics API listening on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

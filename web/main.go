package main

import (
	"flag"
	"log"
	"os"

	"github.com/rk31/go-sdf-raymarcher/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("SDF Raymarcher Web Server")
	log.Printf("Render via http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

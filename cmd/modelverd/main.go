package main

import (
	"log"

	"github.com/modelver/modelver/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}

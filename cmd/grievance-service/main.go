package main

import (
	"log"

	"github.com/psds-microservice/grievance-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

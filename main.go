package main

import (
	"log"

	"github.com/spigell/resume-insight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

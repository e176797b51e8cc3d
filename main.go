package main

import (
	"log"

	"github.com/careertools/skillscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

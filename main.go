package main

import (
	"log"

	"github.com/riabhaumik/PathwiseAI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

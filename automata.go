package main

import (
	"log"
	"os"

	"automata/exec"
)

func main() {
	if err := exec.Execute(os.Args[0], os.Args[1:]...); err != nil {
		log.Fatal(err)
	}
}

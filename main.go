package main

import (
	"os"

	"github.com/archmate/archmate/cmd"
	log "github.com/sirupsen/logrus"
)

func handlepanic() {
	if err := recover(); err != nil {
		log.Fatalf("PANIC: %v\n", err)
	}
}

func main() {
	defer handlepanic()
	err := cmd.App.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

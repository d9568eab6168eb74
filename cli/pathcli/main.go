package main

import (
	"log"

	"merklepath/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize pathcli: %v", err)
	}

	cli.Execute()
}

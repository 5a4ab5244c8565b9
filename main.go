package main

import (
	"os"

	"github.com/thinkkisan/think-kisan-blog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

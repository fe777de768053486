package main

import (
	"os"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

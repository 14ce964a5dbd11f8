package main

import (
	"os"

	"github.com/newtab-go/newtab/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

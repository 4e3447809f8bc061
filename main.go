package main

import (
	"os"

	"github.com/open-notebook/open-notebook-web/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

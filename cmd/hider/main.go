package main

import (
	"os"

	"github.com/hide-utils/hide/internal/app"
)

func main() {
	os.Exit(app.Run(app.NewHiderCommand()))
}

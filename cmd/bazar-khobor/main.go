package main

import (
	"github.com/joho/godotenv"

	"github.com/Adda-Baaj/bazar-khobor/internal/cli"
)

func main() {
	// Optional; credentials for publishers usually live here.
	_ = godotenv.Load()

	cli.Execute()
}

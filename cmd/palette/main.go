package main

import (
	"os"

	"github.com/joho/godotenv"

	"hexbot-palette/cmd/palette/commands"
	"hexbot-palette/internal/ui"
)

func main() {
	// Load .env file if it exists
	// The error is ignored: the environment may come from the system instead
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}
}

package main

import (
	"github.com/joho/godotenv"

	"github.com/cloudlens/cloudlens/cmd/cloudlens/commands"
)

func main() {
	// Optional .env with CLOUDLENS_* overrides; absence is fine.
	_ = godotenv.Load()
	commands.Execute()
}

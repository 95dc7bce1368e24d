package main

import (
	"github.com/joho/godotenv"

	"github.com/casafin/household-ledger/cmd"
)

func main() {
	// .env is optional; container deployments set real environment variables
	_ = godotenv.Load()

	cmd.Execute()
}

package main

import (
	"github.com/joho/godotenv"

	"github.com/karvel/folio/cmd"
)

func main() {
	// Optional .env in the working directory, e.g. to set FOLIO_HOME.
	_ = godotenv.Load()
	cmd.Execute()
}

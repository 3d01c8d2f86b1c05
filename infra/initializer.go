package infra

import (
	"github.com/joho/godotenv"
)

// Initialize loads .env into the process environment. A missing file is not
// fatal; the caller decides how loudly to report it.
func Initialize() error {
	return godotenv.Load()
}

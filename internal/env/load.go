package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads the given file (e.g. ".env") and sets environment variables for
// each KEY=VALUE line. The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

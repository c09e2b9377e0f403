// Package environment reads runtime environment configuration.
package environment

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	curseforgeAPIBaseDefault = "https://api.curseforge.com/v1"
	cfwidgetAPIBaseDefault   = "https://api.cfwidget.com"
)

func CurseforgeAPIKey() string {
	return os.Getenv("CURSEFORGE_API_KEY")
}

func CurseforgeAPIBase() string {
	base, present := os.LookupEnv("CURSEFORGE_API_URL")
	if present {
		return base
	}

	return curseforgeAPIBaseDefault
}

func CFWidgetAPIBase() string {
	base, present := os.LookupEnv("CFWIDGET_API_URL")
	if present {
		return base
	}

	return cfwidgetAPIBaseDefault
}

// LoadDotenv reads a .env file from the working directory if one exists.
// Missing files are not an error so callers can use it unconditionally.
func LoadDotenv() error {
	err := godotenv.Load()
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

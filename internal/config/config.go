package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "aqua"

// GetDataDir resolves the base directory for aqua storage. AQUA_DIR wins,
// then the XDG data home, then ~/.local/share.
func GetDataDir() string {
	if explicit := os.Getenv("AQUA_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		dataHome = filepath.Join(homeDir(), ".local", "share")
	}

	return filepath.Join(dataHome, appName)
}

// GetDBPath returns the path of the SQLite database file.
func GetDBPath() string {
	return filepath.Join(GetDataDir(), "aqua.db")
}

// GetSettingsPath returns the settings file location. AQUA_CONFIG wins over
// the XDG config home.
func GetSettingsPath() string {
	if explicit := os.Getenv("AQUA_CONFIG"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	configHome := xdg.ConfigHome
	if configHome == "" {
		configHome = filepath.Join(homeDir(), ".config")
	}

	return filepath.Join(configHome, appName, "config.yaml")
}

func homeDir() string {
	home := xdg.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), appName)
		}
	}
	return home
}

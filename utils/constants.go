package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

func GetUserAgent() string {
	var userAgent = map[string]string{
		"linux":
			"Mozilla/5.0 (X11; Linux x86_64)",
		"darwin":
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 12_6)",
	}
	userAgentOS := userAgent[runtime.GOOS]
	if userAgentOS == "" {
		userAgentOS = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	}
	return userAgentOS + " AppleWebKit/537.36 (KHTML, like Gecko) Chrome/106.0.0.0 Safari/537.36"
}

func GetAppPath() string {
	appPath, err := os.UserHomeDir()
	if err != nil {
		errorMsg := "failed to get user home directory: " + err.Error()
		panic(errorMsg)
	}
	var appDir = map[string]string{
		"windows": "AppData/Roaming/Discord-Pixiv-Uploader",
		"linux":   ".config/discord-pixiv-uploader",
		"darwin":  "Library/Preferences/Discord-Pixiv-Uploader",
	}
	appDirOS := appDir[runtime.GOOS]
	if appDirOS == "" {
		panic("unsupported OS")
	}
	return filepath.Join(appPath, appDirOS)
}

var (
	USER_AGENT = GetUserAgent()
	APP_PATH   = GetAppPath()

	DEBUG_MODE = os.Getenv("DEBUG") == "1"
)

const (
	VERSION = "1.0.0"

	PIXIV_URL       = "https://www.pixiv.net"
	PIXIV_API_URL   = "https://www.pixiv.net/ajax"
	DISCORD_API_URL = "https://discord.com/api/v10"
)

const (
	// Error codes used in error messages for quick identification
	DEV_ERROR = iota + 1000
	UNEXPECTED_ERROR
	CONNECTION_ERROR
	RESPONSE_ERROR
	JSON_ERROR
	INPUT_ERROR
)

package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "yt-remote.png"
)

// LoadLogoResource loads the logo from file path. The header falls back to
// the settings button alone when the file is missing.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconHistory  = "🕘"
	IconTools    = "🛠"
	IconMusic    = "🎵"
	IconVideo    = "🎬"
	IconPlaylist = "📃"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	PreviewItemPrefix  = "• "
)

// PreviewMaxItems is how many playlist entries the preview panel lists
const PreviewMaxItems = 8

// Layout sizing
const (
	StatusBoxMinWidth  float32 = 480
	StatusBoxMinHeight float32 = 160

	HistoryMinHeight   float32 = 240
	HistoryColumnWidth float32 = 600

	PillMinWidth  float32 = 84
	PillMinHeight float32 = 24
	PillRadius    float32 = 12

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)

// Timeouts for requests started from the UI
const (
	HistoryRequestTimeout = 15 * time.Second
	VerifyRequestTimeout  = 15 * time.Second
)

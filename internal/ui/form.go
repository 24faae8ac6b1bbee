package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-remote/internal/model"
)

var errInvalidServerURL = errors.New("server URL must start with http:// or https://")

// formatLabel returns the radio label of a format
func formatLabel(f model.Format) string {
	switch f {
	case model.FormatMP3:
		return IconMusic + " MP3"
	case model.FormatMP4:
		return IconVideo + " MP4"
	case model.FormatMP4Playlist:
		return IconPlaylist + " MP4 playlist"
	default:
		return string(f)
	}
}

// formatLabels returns the radio labels for formats, in order
func formatLabels(formats []model.Format) []string {
	labels := make([]string, 0, len(formats))
	for _, f := range formats {
		labels = append(labels, formatLabel(f))
	}
	return labels
}

// formatFromLabel maps a radio label back to its format. An empty or
// unknown label yields the empty format so the request falls back to the
// configured default.
func formatFromLabel(label string, formats []model.Format) model.Format {
	for _, f := range formats {
		if formatLabel(f) == label {
			return f
		}
	}
	return ""
}

// optionVisibility reports which option selects apply to a format.
// Formats the client does not know show both.
func optionVisibility(f model.Format) (resolution, bitrate bool) {
	switch f.Kind() {
	case model.KindAudio:
		return false, true
	case model.KindVideo:
		return true, false
	default:
		return true, true
	}
}

// formSnapshot is the state of the download form widgets
type formSnapshot struct {
	URL          string
	FormatLabel  string
	Resolution   string
	Bitrate      string
	UseCustomDir bool
	CustomDir    string
}

// toInput converts the widget state to controller input. Options hidden
// for the selected format are left empty so the request uses defaults.
func (s formSnapshot) toInput(formats []model.Format) model.FormInput {
	format := formatFromLabel(s.FormatLabel, formats)
	showResolution, showBitrate := optionVisibility(format)

	input := model.FormInput{
		URL:          strings.TrimSpace(s.URL),
		Format:       format,
		UseCustomDir: s.UseCustomDir,
		CustomDir:    s.CustomDir,
	}
	if showResolution {
		input.Resolution = s.Resolution
	}
	if showBitrate {
		input.Bitrate = s.Bitrate
	}
	return input
}

// validateURL only checks the scheme; the backend decides what it can fetch
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// historyView describes how the history box renders a list of titles
type historyView struct {
	Empty bool
	Rows  []string
}

// newHistoryView builds the history box content
func newHistoryView(titles []string) historyView {
	if len(titles) == 0 {
		return historyView{Empty: true}
	}
	rows := make([]string, len(titles))
	copy(rows, titles)
	return historyView{Rows: rows}
}

// pillText returns the text of a tool status pill
func pillText(status model.ToolStatus) string {
	if status == model.ToolUnknown {
		return DashPlaceholder
	}
	return status.String()
}

package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-remote/internal/platform"
)

// PlaylistPreviewer lists a playlist before it is submitted
type PlaylistPreviewer interface {
	Preview(ctx context.Context, rawURL string) (*platform.PlaylistPreview, error)
}

// PlaylistPanel shows the preview button and its result under the form
type PlaylistPanel struct {
	localization *Localization
	previewer    PlaylistPreviewer

	button    *widget.Button
	result    *widget.Label
	container *fyne.Container

	// current returns the URL to preview
	current func() string
}

// NewPlaylistPanel creates a hidden playlist panel
func NewPlaylistPanel(localization *Localization, previewer PlaylistPreviewer, current func() string) *PlaylistPanel {
	p := &PlaylistPanel{
		localization: localization,
		previewer:    previewer,
		current:      current,
	}

	p.button = widget.NewButton(localization.GetText(KeyPreviewPlaylist), p.onPreview)
	p.button.Importance = widget.LowImportance
	p.result = widget.NewLabel("")
	p.result.Wrapping = fyne.TextWrapWord
	p.result.Hide()

	p.container = container.NewVBox(container.NewHBox(p.button), p.result)
	p.container.Hide()
	return p
}

// SetVisible shows the panel only while it applies. Must run on the UI thread.
func (p *PlaylistPanel) SetVisible(visible bool) {
	if visible {
		p.container.Show()
		return
	}
	p.result.SetText("")
	p.result.Hide()
	p.container.Hide()
}

// Container returns the panel's canvas object
func (p *PlaylistPanel) Container() *fyne.Container {
	return p.container
}

func (p *PlaylistPanel) onPreview() {
	rawURL := p.current()
	p.button.Disable()
	p.result.SetText(p.localization.GetText(KeyPreviewLoading))
	p.result.Show()

	go func() {
		preview, err := p.previewer.Preview(context.Background(), rawURL)

		fyne.Do(func() {
			p.button.Enable()
			if err != nil {
				log.Printf("Playlist preview failed: %v", err)
				p.result.SetText(p.localization.GetText(KeyPreviewFailed) + ": " + err.Error())
				return
			}
			p.result.SetText(formatPreview(preview, p.localization.GetText(KeyPlaylistVideos)))
		})
	}()
}

// formatPreview renders a preview as plain text
func formatPreview(preview *platform.PlaylistPreview, videosWord string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%d %s", preview.Title, MiddleDotSeparator, preview.Total, videosWord)
	for _, item := range preview.Items {
		b.WriteString("\n")
		b.WriteString(PreviewItemPrefix)
		b.WriteString(item.Title)
	}
	if preview.Total > len(preview.Items) {
		b.WriteString("\n")
		b.WriteString(PreviewItemPrefix)
		b.WriteString("...")
	}
	return b.String()
}

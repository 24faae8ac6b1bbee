package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-remote/internal/model"
)

// Timeout constants
const (
	DefaultPreviewTimeout = 30 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	DefaultPreviewItems = 5
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	MinPrefixLength = 10
	PlaylistSuffix  = " Playlist"
)

// PlaylistItem is one video of a previewed playlist
type PlaylistItem struct {
	VideoID string
	Title   string
	URL     string
}

// PlaylistPreview summarizes a playlist before it is submitted
type PlaylistPreview struct {
	ID    string
	Title string
	Total int
	Items []PlaylistItem // first items only
}

// fetchFunc lists every item of a playlist
type fetchFunc func(ctx context.Context, playlistID string) ([]PlaylistItem, error)

// PlaylistPreviewer lists playlists through yt-dlp so the user can check
// what a playlist submission will download
type PlaylistPreviewer struct {
	timeout  time.Duration
	maxItems int
	fetch    fetchFunc
}

// NewPlaylistPreviewer creates a new previewer
func NewPlaylistPreviewer() *PlaylistPreviewer {
	return &PlaylistPreviewer{
		timeout:  DefaultPreviewTimeout,
		maxItems: DefaultPreviewItems,
		fetch:    fetchWithYTDLP,
	}
}

// SetTimeout sets the timeout for preview operations
func (p *PlaylistPreviewer) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// SetMaxItems sets how many items the preview keeps
func (p *PlaylistPreviewer) SetMaxItems(n int) {
	if n < 1 {
		n = 1
	}
	p.maxItems = n
}

// ShouldPreview reports whether a submission of rawURL with format downloads a playlist
func ShouldPreview(format model.Format, rawURL string) bool {
	return format.IsPlaylist() && IsPlaylistURL(rawURL)
}

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// ExtractPlaylistID extracts the playlist ID from various URL formats
func ExtractPlaylistID(rawURL string) string {
	if !strings.Contains(rawURL, PlaylistParam) {
		return ""
	}
	parts := strings.SplitN(rawURL, PlaylistParam, 2)
	id := parts[1]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	if i := strings.Index(id, "#"); i >= 0 {
		id = id[:i]
	}
	return id
}

// Preview lists the playlist behind rawURL
func (p *PlaylistPreviewer) Preview(ctx context.Context, rawURL string) (*PlaylistPreview, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	preview := &PlaylistPreview{
		ID:    playlistID,
		Title: playlistTitle(items),
		Total: len(items),
		Items: items,
	}
	if len(preview.Items) > p.maxItems {
		preview.Items = preview.Items[:p.maxItems]
	}
	return preview, nil
}

func fetchWithYTDLP(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return out, nil
}

// playlistTitle guesses a title from the common prefix of the first videos
func playlistTitle(items []PlaylistItem) string {
	if len(items) == 0 {
		return DefaultPlaylistName
	}
	if len(items) > 1 {
		commonPrefix := findCommonPrefix(items[0].Title, items[1].Title)
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return items[0].Title + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}

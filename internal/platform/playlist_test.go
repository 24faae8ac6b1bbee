package platform

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ytget/yt-remote/internal/model"
)

func TestNewPlaylistPreviewer(t *testing.T) {
	p := NewPlaylistPreviewer()

	if p.timeout != DefaultPreviewTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultPreviewTimeout, p.timeout)
	}
	if p.maxItems != DefaultPreviewItems {
		t.Errorf("expected max items %d, got %d", DefaultPreviewItems, p.maxItems)
	}

	p.SetTimeout(5 * time.Second)
	if p.timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", p.timeout)
	}

	p.SetMaxItems(0)
	if p.maxItems != 1 {
		t.Errorf("expected max items clamped to 1, got %d", p.maxItems)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "extract playlist ID from watch URL",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID from playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLAYLIST_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID with additional parameters",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1&t=30",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID with multiple list parameters",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&list=OTHER_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "extract playlist ID before fragment",
			url:      "https://www.youtube.com/playlist?list=PLAYLIST_ID#top",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "URL without playlist parameter",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID",
			expected: "",
		},
		{
			name:     "URL with empty playlist parameter",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=",
			expected: "",
		},
		{
			name:     "empty URL",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractPlaylistID(tt.url)
			if result != tt.expected {
				t.Errorf("expected %q, got %q for URL: %s", tt.expected, result, tt.url)
			}
		})
	}
}

func TestShouldPreview(t *testing.T) {
	tests := []struct {
		name     string
		format   model.Format
		url      string
		expected bool
	}{
		{"playlist format with list URL", model.FormatMP4Playlist, "https://www.youtube.com/playlist?list=PL1", true},
		{"playlist format without list", model.FormatMP4Playlist, "https://www.youtube.com/watch?v=abc", false},
		{"video format with list URL", model.FormatMP4, "https://www.youtube.com/playlist?list=PL1", false},
		{"audio format", model.FormatMP3, "https://www.youtube.com/playlist?list=PL1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldPreview(tt.format, tt.url); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	var gotID string
	p := NewPlaylistPreviewer()
	p.SetMaxItems(2)
	p.fetch = func(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
		gotID = playlistID
		items := make([]PlaylistItem, 0, 4)
		for i := 1; i <= 4; i++ {
			id := fmt.Sprintf("vid%d", i)
			items = append(items, PlaylistItem{
				VideoID: id,
				Title:   fmt.Sprintf("Go Concurrency Course - Part %d", i),
				URL:     fmt.Sprintf(YouTubeVideoURLTemplate, id),
			})
		}
		return items, nil
	}

	preview, err := p.Preview(context.Background(), "https://www.youtube.com/playlist?list=PL123&si=x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotID != "PL123" {
		t.Errorf("expected playlist ID PL123, got %s", gotID)
	}
	if preview.Total != 4 {
		t.Errorf("expected total 4, got %d", preview.Total)
	}
	if len(preview.Items) != 2 {
		t.Errorf("expected 2 preview items, got %d", len(preview.Items))
	}
	if preview.Title != "Go Concurrency Course - Part Playlist" {
		t.Errorf("unexpected title %q", preview.Title)
	}
}

func TestPreview_Errors(t *testing.T) {
	p := NewPlaylistPreviewer()
	p.fetch = func(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
		return nil, errors.New("network unreachable")
	}

	if _, err := p.Preview(context.Background(), "https://www.youtube.com/watch?v=abc"); err == nil {
		t.Error("expected error for URL without playlist")
	}

	if _, err := p.Preview(context.Background(), "https://www.youtube.com/playlist?list=PL1"); err == nil {
		t.Error("expected fetch error to be returned")
	}
}

func TestPlaylistTitle(t *testing.T) {
	tests := []struct {
		name     string
		items    []PlaylistItem
		expected string
	}{
		{"empty", nil, DefaultPlaylistName},
		{"single", []PlaylistItem{{Title: "Intro"}}, "Intro Playlist"},
		{"short common prefix", []PlaylistItem{{Title: "Intro"}, {Title: "Outro"}}, "Intro Playlist"},
		{"long common prefix", []PlaylistItem{{Title: "Kitchen Basics: Knives"}, {Title: "Kitchen Basics: Pans"}}, "Kitchen Basics: Playlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := playlistTitle(tt.items); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

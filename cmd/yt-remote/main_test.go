package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ytget/yt-remote/internal/backendtest"
)

func TestRun_Finished(t *testing.T) {
	server := backendtest.NewServer()
	defer server.Close()
	server.QueueStatus(
		backendtest.StatusReply{Messages: []string{"Getting video information..."}, InProgress: true},
		backendtest.StatusReply{Messages: []string{"Getting video information...", "Download completed!"}, InProgress: false},
	)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-url", "https://www.youtube.com/watch?v=abc",
		"-audio",
		"-server", server.URL(),
		"-interval", "20ms",
	}, &stdout, &stderr)

	if code != exitOK {
		t.Fatalf("Expected exit code %d, got %d (stderr: %s)", exitOK, code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Download started!", "Getting video information...", "Download completed!"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Count(out, "Getting video information...") != 1 {
		t.Errorf("Expected each status line once, got:\n%s", out)
	}

	subs := server.Submissions()
	if len(subs) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(subs))
	}
	if subs[0].Form.Get("format") != "mp3" {
		t.Errorf("Expected format mp3, got %s", subs[0].Form.Get("format"))
	}
}

func TestRun_OutputDir(t *testing.T) {
	server := backendtest.NewServer()
	defer server.Close()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-server", server.URL(),
		"-interval", "20ms",
		"-output-dir", "/srv/media",
		"https://www.youtube.com/watch?v=abc",
	}, &stdout, &stderr)

	if code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}

	subs := server.Submissions()
	if len(subs) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(subs))
	}
	if subs[0].Form.Get("custom_directory") != "/srv/media" {
		t.Errorf("Expected custom_directory /srv/media, got %q", subs[0].Form.Get("custom_directory"))
	}
	if subs[0].Form.Get("url") != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("Expected positional URL to be used, got %q", subs[0].Form.Get("url"))
	}
}

func TestRun_UnknownFormatWarning(t *testing.T) {
	server := backendtest.NewServer()
	defer server.Close()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-url", "u",
		"-format", "ogg",
		"-server", server.URL() + "/",
		"-interval", "20ms",
	}, &stdout, &stderr)

	if code != exitOK {
		t.Fatalf("Expected exit code %d, got %d", exitOK, code)
	}
	if !strings.Contains(stderr.String(), `Unknown format "ogg"`) {
		t.Errorf("Expected unknown format warning, got:\n%s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "to "+server.URL()+"\n") {
		t.Errorf("Expected trimmed backend address in output, got:\n%s", stdout.String())
	}
	if subs := server.Submissions(); len(subs) != 1 || subs[0].Form.Get("format") != "ogg" {
		t.Errorf("Expected format ogg to be passed through, got %+v", subs)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		reject     bool
		wantStderr string
	}{
		{"missing url", nil, false, "Usage: yt-remote"},
		{"short directory", []string{"-url", "u", "-output-dir", "ab"}, false, "Please enter a valid directory path"},
		{"rejected", []string{"-url", "u"}, true, "Download already in progress"},
		{"bad flag", []string{"-nope"}, false, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := backendtest.NewServer()
			defer server.Close()
			if tt.reject {
				server.RejectJobs(http.StatusBadRequest, "Download already in progress")
			}

			args := append([]string{"-server", server.URL(), "-interval", "20ms"}, tt.args...)
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), args, &stdout, &stderr)

			if code != exitError {
				t.Errorf("Expected exit code %d, got %d", exitError, code)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("Expected stderr to contain %q, got:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestRun_Unreachable(t *testing.T) {
	server := backendtest.NewServer()
	url := server.URL()
	server.Close()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-url", "u", "-server", url, "-timeout", "1s"}, &stdout, &stderr)

	if code != exitError {
		t.Errorf("Expected exit code %d, got %d", exitError, code)
	}
	if !strings.Contains(stderr.String(), "Network error: ") {
		t.Errorf("Expected network error, got:\n%s", stderr.String())
	}
}

func TestRun_Interrupted(t *testing.T) {
	server := backendtest.NewServer()
	defer server.Close()
	server.QueueStatus(backendtest.StatusReply{Messages: []string{"working"}, InProgress: true})

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-url", "u", "-server", server.URL(), "-interval", "20ms"}, &stdout, &stderr)

	if code != exitInterrupted {
		t.Errorf("Expected exit code %d, got %d", exitInterrupted, code)
	}

	time.Sleep(50 * time.Millisecond)
	calls := server.StatusCalls()
	time.Sleep(100 * time.Millisecond)
	if server.StatusCalls() != calls {
		t.Error("Expected polling to stop after interrupt")
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-h"}, &stdout, &stderr); code != exitOK {
		t.Errorf("Expected exit code %d, got %d", exitOK, code)
	}
}

func TestNewLines(t *testing.T) {
	tests := []struct {
		name     string
		prev     string
		text     string
		expected string
	}{
		{"first snapshot", "", "a\nb", "a\nb"},
		{"unchanged", "a\nb", "a\nb", ""},
		{"appended", "a", "a\nb\nc", "b\nc"},
		{"shared prefix is not a line", "10%", "100%\ndone", "100%\ndone"},
		{"new list", "a\nb", "c", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newLines(tt.prev, tt.text); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

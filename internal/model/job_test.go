package model

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestNewJobRequest_Defaults(t *testing.T) {
	req, err := NewJobRequest(FormInput{URL: "https://example.com/v"}, DefaultFormatOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := "url=https%3A%2F%2Fexample.com%2Fv&format=mp3&resolution=720&bitrate=best"
	if got := req.Encode(); got != expected {
		t.Errorf("Encode() = %s, expected %s", got, expected)
	}
}

func TestNewJobRequest_CustomDirectory(t *testing.T) {
	tests := []struct {
		name        string
		input       FormInput
		expectedDir string
		expectErr   bool
	}{
		{
			name:        "disabled toggle drops text",
			input:       FormInput{URL: "u", UseCustomDir: false, CustomDir: "/music"},
			expectedDir: "",
		},
		{
			name:        "enabled and empty is omitted",
			input:       FormInput{URL: "u", UseCustomDir: true, CustomDir: ""},
			expectedDir: "",
		},
		{
			name:        "enabled and blank is omitted",
			input:       FormInput{URL: "u", UseCustomDir: true, CustomDir: "   "},
			expectedDir: "",
		},
		{
			name:        "two astral characters are long enough",
			input:       FormInput{URL: "u", UseCustomDir: true, CustomDir: "😀😀"},
			expectedDir: "😀😀",
		},
		{
			name:      "one astral character is rejected",
			input:     FormInput{URL: "u", UseCustomDir: true, CustomDir: "😀"},
			expectErr: true,
		},
		{
			name:      "one character is rejected",
			input:     FormInput{URL: "u", UseCustomDir: true, CustomDir: "/"},
			expectErr: true,
		},
		{
			name:      "two characters after trim are rejected",
			input:     FormInput{URL: "u", UseCustomDir: true, CustomDir: "  /a  "},
			expectErr: true,
		},
		{
			name:        "three characters are accepted and trimmed",
			input:       FormInput{URL: "u", UseCustomDir: true, CustomDir: " /ab "},
			expectedDir: "/ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewJobRequest(tt.input, DefaultFormatOptions())
			if tt.expectErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
				if verr.Message != MsgInvalidDirectory {
					t.Errorf("Expected message %q, got %q", MsgInvalidDirectory, verr.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if req.CustomDirectory != tt.expectedDir {
				t.Errorf("Expected custom directory %q, got %q", tt.expectedDir, req.CustomDirectory)
			}
			present := strings.Contains(req.Encode(), FieldCustomDirectory+"=")
			if present != (tt.expectedDir != "") {
				t.Errorf("custom_directory presence = %v, expected %v", present, tt.expectedDir != "")
			}
		})
	}
}

func TestNewJobRequest_StrictOptionFields(t *testing.T) {
	opts := DefaultFormatOptions()
	opts.StrictOptionFields = true

	tests := []struct {
		format   Format
		expected string
	}{
		{FormatMP4, "url=u&format=mp4&resolution=1080"},
		{FormatMP4Playlist, "url=u&format=mp4_playlist&resolution=1080"},
		{FormatMP3, "url=u&format=mp3&bitrate=320"},
		{Format("avi"), "url=u&format=avi"},
	}

	for _, test := range tests {
		input := FormInput{URL: "u", Format: test.format, Resolution: "1080", Bitrate: "320"}
		req, err := NewJobRequest(input, opts)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got := req.Encode(); got != test.expected {
			t.Errorf("Encode() for %s = %s, expected %s", test.format, got, test.expected)
		}
	}
}

func TestJobRequest_Encode(t *testing.T) {
	req := JobRequest{
		URL:             "https://www.youtube.com/watch?v=test",
		Format:          FormatMP4,
		Resolution:      "480",
		Bitrate:         "best",
		CustomDirectory: "/custom/path",
	}

	values, err := url.ParseQuery(req.Encode())
	if err != nil {
		t.Fatalf("Expected a parsable body, got %v", err)
	}
	if values.Get(FieldURL) != req.URL {
		t.Errorf("Expected url %s, got %s", req.URL, values.Get(FieldURL))
	}
	if values.Get(FieldFormat) != "mp4" {
		t.Errorf("Expected format mp4, got %s", values.Get(FieldFormat))
	}
	if values.Get(FieldCustomDirectory) != "/custom/path" {
		t.Errorf("Expected custom_directory /custom/path, got %s", values.Get(FieldCustomDirectory))
	}

	expected := "url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3Dtest&format=mp4&resolution=480&bitrate=best&custom_directory=%2Fcustom%2Fpath"
	if got := req.Encode(); got != expected {
		t.Errorf("Encode() = %s, expected %s", got, expected)
	}
}

func TestJobRequest_EncodeEmptyURL(t *testing.T) {
	req := JobRequest{}
	if got := req.Encode(); got != "url=" {
		t.Errorf("Encode() = %s, expected url=", got)
	}
}

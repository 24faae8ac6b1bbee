package model

import "testing"

func TestPollState_IsPolling(t *testing.T) {
	tests := []struct {
		state    PollState
		expected bool
	}{
		{PollIdle, false},
		{PollPolling, true},
	}

	for _, test := range tests {
		result := test.state.IsPolling()
		if result != test.expected {
			t.Errorf("PollState(%s).IsPolling() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestPollState_String(t *testing.T) {
	if PollPolling.String() != "Polling" {
		t.Errorf("PollState.String() = %s, expected Polling", PollPolling.String())
	}
}

func TestToolStatus_Tone(t *testing.T) {
	tests := []struct {
		status   ToolStatus
		expected PillTone
	}{
		{ToolUnknown, PillNeutral},
		{ToolChecking, PillNeutral},
		{ToolVerified, PillOK},
		{ToolNotFound, PillBad},
		{ToolError, PillBad},
	}

	for _, test := range tests {
		result := test.status.Tone()
		if result != test.expected {
			t.Errorf("ToolStatus(%q).Tone() = %s, expected %s", test.status, result, test.expected)
		}
	}
}

func TestToolStatus_IsFinal(t *testing.T) {
	tests := []struct {
		status   ToolStatus
		expected bool
	}{
		{ToolUnknown, false},
		{ToolChecking, false},
		{ToolVerified, true},
		{ToolNotFound, true},
		{ToolError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinal()
		if result != test.expected {
			t.Errorf("ToolStatus(%q).IsFinal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFormat_Kind(t *testing.T) {
	tests := []struct {
		format     Format
		kind       FormatKind
		resolution bool
		bitrate    bool
	}{
		{FormatMP3, KindAudio, false, true},
		{FormatMP4, KindVideo, true, false},
		{FormatMP4Playlist, KindVideo, true, false},
		{Format("avi"), KindUnknown, false, false},
	}

	for _, test := range tests {
		if got := test.format.Kind(); got != test.kind {
			t.Errorf("Format(%s).Kind() = %v, expected %v", test.format, got, test.kind)
		}
		if got := test.format.UsesResolution(); got != test.resolution {
			t.Errorf("Format(%s).UsesResolution() = %v, expected %v", test.format, got, test.resolution)
		}
		if got := test.format.UsesBitrate(); got != test.bitrate {
			t.Errorf("Format(%s).UsesBitrate() = %v, expected %v", test.format, got, test.bitrate)
		}
	}
}

func TestFormatOptions_HasFormat(t *testing.T) {
	opts := DefaultFormatOptions()

	if !opts.HasFormat(FormatMP4Playlist) {
		t.Error("Expected default options to include mp4_playlist")
	}
	if opts.HasFormat(Format("avi")) {
		t.Error("Expected default options to not include avi")
	}
}

func TestStatusSnapshot_Text(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *StatusSnapshot
		expected string
	}{
		{"nil snapshot", nil, ""},
		{"no messages", &StatusSnapshot{}, ""},
		{"single message", &StatusSnapshot{Messages: []string{"10%"}}, "10%"},
		{"several messages", &StatusSnapshot{Messages: []string{"100%", "done"}}, "100%\ndone"},
		{"empty line kept", &StatusSnapshot{Messages: []string{"Title: x", "", "Starting download..."}}, "Title: x\n\nStarting download..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snapshot.Text(); got != tt.expected {
				t.Errorf("Text() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStatusSnapshot_IsTerminal(t *testing.T) {
	var nilSnapshot *StatusSnapshot
	if nilSnapshot.IsTerminal() {
		t.Error("nil snapshot should not be terminal")
	}
	if (&StatusSnapshot{InProgress: true}).IsTerminal() {
		t.Error("in-progress snapshot should not be terminal")
	}
	if !(&StatusSnapshot{InProgress: false}).IsTerminal() {
		t.Error("finished snapshot should be terminal")
	}
}

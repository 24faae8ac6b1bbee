package model

// Format is the output format requested from the backend
type Format string

const (
	FormatMP3         Format = "mp3"
	FormatMP4         Format = "mp4"
	FormatMP4Playlist Format = "mp4_playlist"
)

// FormatKind groups formats by the option that governs them
type FormatKind int

const (
	KindUnknown FormatKind = iota
	KindAudio
	KindVideo
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// Kind reports whether the format is an audio or a video format.
// Formats the client does not know are passed through to the backend.
func (f Format) Kind() FormatKind {
	switch f {
	case FormatMP3:
		return KindAudio
	case FormatMP4, FormatMP4Playlist:
		return KindVideo
	default:
		return KindUnknown
	}
}

// UsesResolution returns true if the resolution option applies to the format
func (f Format) UsesResolution() bool {
	return f.Kind() == KindVideo
}

// UsesBitrate returns true if the bitrate option applies to the format
func (f Format) UsesBitrate() bool {
	return f.Kind() == KindAudio
}

// IsPlaylist returns true if the format downloads a whole playlist
func (f Format) IsPlaylist() bool {
	return f == FormatMP4Playlist
}

// Default option values
const (
	DefaultFormat     = FormatMP3
	DefaultResolution = "720"
	DefaultBitrate    = "best"
)

// FormatOptions is the format enumeration and its defaults. The set is
// negotiated with the backend, so it lives in configuration.
type FormatOptions struct {
	Formats           []Format
	DefaultFormat     Format
	DefaultResolution string
	DefaultBitrate    string
	Resolutions       []string
	Bitrates          []string

	// StrictOptionFields sends resolution only for video formats and
	// bitrate only for audio formats. When false every option is sent,
	// falling back to its default.
	StrictOptionFields bool
}

// DefaultFormatOptions returns the options matching the current backend
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Formats:           []Format{FormatMP3, FormatMP4, FormatMP4Playlist},
		DefaultFormat:     DefaultFormat,
		DefaultResolution: DefaultResolution,
		DefaultBitrate:    DefaultBitrate,
		Resolutions:       []string{"360", "480", "720", "1080"},
		Bitrates:          []string{"best", "320", "256", "192", "128"},
	}
}

// HasFormat returns true if f is one of the configured formats
func (o FormatOptions) HasFormat(f Format) bool {
	for _, known := range o.Formats {
		if known == f {
			return true
		}
	}
	return false
}

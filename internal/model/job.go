package model

import (
	"net/url"
	"strings"
	"unicode/utf16"
)

// Form field names understood by the backend
const (
	FieldURL             = "url"
	FieldFormat          = "format"
	FieldResolution      = "resolution"
	FieldBitrate         = "bitrate"
	FieldCustomDirectory = "custom_directory"
)

// MinCustomDirLength is the shortest accepted custom directory, after trimming
const MinCustomDirLength = 3

// MsgInvalidDirectory is shown when the custom directory is too short
const MsgInvalidDirectory = "Please enter a valid directory path"

// FormInput holds the raw values of the download form
type FormInput struct {
	URL          string
	Format       Format
	Resolution   string
	Bitrate      string
	UseCustomDir bool
	CustomDir    string
}

// JobRequest is the body of one submission to the backend
type JobRequest struct {
	URL             string
	Format          Format
	Resolution      string
	Bitrate         string
	CustomDirectory string
}

// ValidationError is returned for input rejected before contacting the backend
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// dirLength measures s in UTF-16 code units, as the web form always has
func dirLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// NewJobRequest builds the request for input according to opts.
// The URL is not checked here; the backend reports an empty or foreign URL.
func NewJobRequest(input FormInput, opts FormatOptions) (JobRequest, error) {
	customDir := ""
	if input.UseCustomDir {
		customDir = strings.TrimSpace(input.CustomDir)
	}
	if customDir != "" && dirLength(customDir) < MinCustomDirLength {
		return JobRequest{}, &ValidationError{Field: FieldCustomDirectory, Message: MsgInvalidDirectory}
	}

	format := input.Format
	if format == "" {
		format = opts.DefaultFormat
	}
	resolution := input.Resolution
	if resolution == "" {
		resolution = opts.DefaultResolution
	}
	bitrate := input.Bitrate
	if bitrate == "" {
		bitrate = opts.DefaultBitrate
	}

	req := JobRequest{
		URL:             input.URL,
		Format:          format,
		Resolution:      resolution,
		Bitrate:         bitrate,
		CustomDirectory: customDir,
	}

	if opts.StrictOptionFields {
		if !format.UsesResolution() {
			req.Resolution = ""
		}
		if !format.UsesBitrate() {
			req.Bitrate = ""
		}
	}

	return req, nil
}

// fields returns the non-empty fields in wire order
func (r JobRequest) fields() [][2]string {
	fields := [][2]string{{FieldURL, r.URL}}
	if r.Format != "" {
		fields = append(fields, [2]string{FieldFormat, string(r.Format)})
	}
	if r.Resolution != "" {
		fields = append(fields, [2]string{FieldResolution, r.Resolution})
	}
	if r.Bitrate != "" {
		fields = append(fields, [2]string{FieldBitrate, r.Bitrate})
	}
	if r.CustomDirectory != "" {
		fields = append(fields, [2]string{FieldCustomDirectory, r.CustomDirectory})
	}
	return fields
}

// Encode returns the form-encoded body. Unlike url.Values.Encode it keeps
// the field order the backend has always received.
func (r JobRequest) Encode() string {
	var b strings.Builder
	for i, f := range r.fields() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f[1]))
	}
	return b.String()
}

package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-remote/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL          = "server_url"
	KeyPollInterval       = "poll_interval_ms"
	KeyRequestTimeout     = "request_timeout_s"
	KeyDefaultFormat      = "default_format"
	KeyDefaultResolution  = "default_resolution"
	KeyDefaultBitrate     = "default_bitrate"
	KeyStrictOptionFields = "strict_option_fields"
	KeyLanguage           = "app_language"
	KeyLastCustomDir      = "last_custom_directory"
)

// Poll interval bounds
const (
	MinPollInterval = 250 * time.Millisecond
	MaxPollInterval = 60 * time.Second
)

// Request timeout bounds
const (
	MinRequestTimeout = time.Second
	MaxRequestTimeout = 10 * time.Minute
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the base URL of the download backend
func (s *Settings) GetServerURL() string {
	u := s.app.Preferences().String(KeyServerURL)
	if u == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return u
}

// SetServerURL sets the base URL of the download backend
func (s *Settings) SetServerURL(u string) {
	if u == "" {
		u = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, u)
}

// GetPollInterval returns the period of status requests
func (s *Settings) GetPollInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyPollInterval)
	if ms <= 0 {
		s.SetPollInterval(DefaultPollInterval)
		return DefaultPollInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// SetPollInterval sets the period of status requests
func (s *Settings) SetPollInterval(d time.Duration) {
	d = ClampPollInterval(d)
	s.app.Preferences().SetInt(KeyPollInterval, int(d/time.Millisecond))
}

// GetRequestTimeout returns the timeout of a single backend request
func (s *Settings) GetRequestTimeout() time.Duration {
	sec := s.app.Preferences().Int(KeyRequestTimeout)
	if sec <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return time.Duration(sec) * time.Second
}

// SetRequestTimeout sets the timeout of a single backend request
func (s *Settings) SetRequestTimeout(d time.Duration) {
	if d < MinRequestTimeout {
		d = MinRequestTimeout
	}
	if d > MaxRequestTimeout {
		d = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, int(d/time.Second))
}

// GetDefaultFormat returns the format preselected in the form
func (s *Settings) GetDefaultFormat() model.Format {
	f := s.app.Preferences().String(KeyDefaultFormat)
	if f == "" {
		s.SetDefaultFormat(model.DefaultFormat)
		return model.DefaultFormat
	}
	return model.Format(f)
}

// SetDefaultFormat sets the format preselected in the form
func (s *Settings) SetDefaultFormat(f model.Format) {
	s.app.Preferences().SetString(KeyDefaultFormat, string(f))
}

// GetDefaultResolution returns the resolution sent when none is picked
func (s *Settings) GetDefaultResolution() string {
	r := s.app.Preferences().String(KeyDefaultResolution)
	if r == "" {
		s.SetDefaultResolution(model.DefaultResolution)
		return model.DefaultResolution
	}
	return r
}

// SetDefaultResolution sets the resolution sent when none is picked
func (s *Settings) SetDefaultResolution(r string) {
	s.app.Preferences().SetString(KeyDefaultResolution, r)
}

// GetDefaultBitrate returns the bitrate sent when none is picked
func (s *Settings) GetDefaultBitrate() string {
	b := s.app.Preferences().String(KeyDefaultBitrate)
	if b == "" {
		s.SetDefaultBitrate(model.DefaultBitrate)
		return model.DefaultBitrate
	}
	return b
}

// SetDefaultBitrate sets the bitrate sent when none is picked
func (s *Settings) SetDefaultBitrate(b string) {
	s.app.Preferences().SetString(KeyDefaultBitrate, b)
}

// GetStrictOptionFields returns whether format options are sent only for
// the formats they apply to
func (s *Settings) GetStrictOptionFields() bool {
	return s.app.Preferences().BoolWithFallback(KeyStrictOptionFields, DefaultStrictOptionFields)
}

// SetStrictOptionFields sets whether format options are sent only for
// the formats they apply to
func (s *Settings) SetStrictOptionFields(strict bool) {
	s.app.Preferences().SetBool(KeyStrictOptionFields, strict)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastCustomDir returns the custom directory used last time
func (s *Settings) GetLastCustomDir() string {
	return s.app.Preferences().String(KeyLastCustomDir)
}

// SetLastCustomDir remembers the custom directory for the next session
func (s *Settings) SetLastCustomDir(dir string) {
	s.app.Preferences().SetString(KeyLastCustomDir, dir)
}

// GetFormatOptions returns available formats
func (s *Settings) GetFormatOptions() []model.Format {
	return model.DefaultFormatOptions().Formats
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options assembles the stored settings, with environment overrides applied
func (s *Settings) Options() Options {
	opts := DefaultOptions()
	opts.ServerURL = s.GetServerURL()
	opts.PollInterval = s.GetPollInterval()
	opts.RequestTimeout = s.GetRequestTimeout()
	opts.Language = s.GetLanguage()

	opts.Formats.DefaultFormat = s.GetDefaultFormat()
	opts.Formats.DefaultResolution = s.GetDefaultResolution()
	opts.Formats.DefaultBitrate = s.GetDefaultBitrate()
	opts.Formats.StrictOptionFields = s.GetStrictOptionFields()

	return ApplyEnv(opts)
}

// ClampPollInterval limits d to the supported poll interval range
func ClampPollInterval(d time.Duration) time.Duration {
	if d < MinPollInterval {
		return MinPollInterval
	}
	if d > MaxPollInterval {
		return MaxPollInterval
	}
	return d
}

package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-remote/internal/config"
	"github.com/ytget/yt-remote/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(connectionChanged bool)

	// UI components
	serverURLEntry      *widget.Entry
	pollIntervalEntry   *widget.Entry
	requestTimeoutEntry *widget.Entry
	formatSelect        *widget.Select
	resolutionEntry     *widget.Entry
	bitrateEntry        *widget.Entry
	strictCheck         *widget.Check
	languageSelect      *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(connectionChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)
	sd.serverURLEntry.Validator = validateServerURL

	sd.pollIntervalEntry = widget.NewEntry()
	sd.pollIntervalEntry.SetPlaceHolder(strconv.Itoa(int(config.MinPollInterval/time.Millisecond)) + "-" + strconv.Itoa(int(config.MaxPollInterval/time.Millisecond)))

	sd.requestTimeoutEntry = widget.NewEntry()
	sd.requestTimeoutEntry.SetPlaceHolder(strconv.Itoa(int(config.DefaultRequestTimeout / time.Second)))

	formatOptions := []string{}
	for _, f := range sd.settings.GetFormatOptions() {
		formatOptions = append(formatOptions, string(f))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	sd.resolutionEntry = widget.NewEntry()
	sd.resolutionEntry.SetPlaceHolder(model.DefaultResolution)

	sd.bitrateEntry = widget.NewEntry()
	sd.bitrateEntry.SetPlaceHolder(model.DefaultBitrate)

	sd.strictCheck = widget.NewCheck(l.GetText(KeyStrictFields), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyServerURL)+":"),
		sd.serverURLEntry,

		widget.NewLabel(l.GetText(KeyPollInterval)+":"),
		sd.pollIntervalEntry,

		widget.NewLabel(l.GetText(KeyRequestTimeout)+":"),
		sd.requestTimeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDefaultFormat)+":"),
		sd.formatSelect,

		widget.NewLabel(l.GetText(KeyResolution)+":"),
		sd.resolutionEntry,

		widget.NewLabel(l.GetText(KeyBitrate)+":"),
		sd.bitrateEntry,

		sd.strictCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.pollIntervalEntry.SetText(strconv.Itoa(int(sd.settings.GetPollInterval() / time.Millisecond)))
	sd.requestTimeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.formatSelect.SetSelected(string(sd.settings.GetDefaultFormat()))
	sd.resolutionEntry.SetText(sd.settings.GetDefaultResolution())
	sd.bitrateEntry.SetText(sd.settings.GetDefaultBitrate())
	sd.strictCheck.SetChecked(sd.settings.GetStrictOptionFields())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	before := sd.settings.Options()

	if u := strings.TrimSpace(sd.serverURLEntry.Text); u != "" {
		if err := validateServerURL(u); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		sd.settings.SetServerURL(strings.TrimRight(u, "/"))
	}

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.pollIntervalEntry.Text)); err == nil {
		sd.settings.SetPollInterval(time.Duration(ms) * time.Millisecond)
	}

	if sec, err := strconv.Atoi(strings.TrimSpace(sd.requestTimeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(time.Duration(sec) * time.Second)
	}

	if sd.formatSelect.Selected != "" {
		sd.settings.SetDefaultFormat(model.Format(sd.formatSelect.Selected))
	}
	if r := strings.TrimSpace(sd.resolutionEntry.Text); r != "" {
		sd.settings.SetDefaultResolution(r)
	}
	if b := strings.TrimSpace(sd.bitrateEntry.Text); b != "" {
		sd.settings.SetDefaultBitrate(b)
	}
	sd.settings.SetStrictOptionFields(sd.strictCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved(connectionChanged(before, sd.settings.Options()))
	}
}

// connectionChanged reports whether the change needs a new backend client
func connectionChanged(before, after config.Options) bool {
	return before.ServerURL != after.ServerURL ||
		before.PollInterval != after.PollInterval ||
		before.RequestTimeout != after.RequestTimeout ||
		before.Formats.DefaultFormat != after.Formats.DefaultFormat ||
		before.Formats.DefaultResolution != after.Formats.DefaultResolution ||
		before.Formats.DefaultBitrate != after.Formats.DefaultBitrate ||
		before.Formats.StrictOptionFields != after.Formats.StrictOptionFields
}

// validateServerURL accepts absolute http(s) URLs
func validateServerURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return errInvalidServerURL
	}
	return validateURL(input)
}

package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-remote/internal/config"
	"github.com/ytget/yt-remote/internal/download"
	"github.com/ytget/yt-remote/internal/model"
	"github.com/ytget/yt-remote/internal/platform"
)

// RootUI represents the main UI structure. It is the controller's View.
type RootUI struct {
	window       fyne.Window
	controller   *download.Controller
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	formats      model.FormatOptions

	// Download tab
	urlEntry         *widget.Entry
	formatRadio      *widget.RadioGroup
	resolutionSelect *widget.Select
	bitrateSelect    *widget.Select
	resolutionRow    *fyne.Container
	bitrateRow       *fyne.Container
	customDirCheck   *widget.Check
	customDirEntry   *widget.Entry
	downloadBtn      *widget.Button
	messageLabel     *widget.Label
	statusLabel      *widget.Label
	playlistPanel    *PlaylistPanel
	previewer        PlaylistPreviewer

	// History and Tools tabs
	historyBox *HistoryBox
	historyBtn *widget.Button
	ffmpegPill *StatusPill
	verifyBtn  *widget.Button

	tabs        *container.AppTabs
	downloadTab *container.TabItem
	historyTab  *container.TabItem
	toolsTab    *container.TabItem
}

var _ download.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI. The controller is attached
// afterwards with SetController because it renders into the returned view.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, formats model.FormatOptions, previewer PlaylistPreviewer) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		formats:      formats,
		previewer:    previewer,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetController attaches the controller that handles form submissions
func (ui *RootUI) SetController(c *download.Controller) {
	ui.controller = c
	log.Printf("RootUI attached to controller (state %s)", c.State())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, settingsBtn)
	} else {
		header = container.NewHBox(settingsBtn)
	}

	ui.downloadTab = container.NewTabItem(ui.localization.GetText(KeyTabDownload), ui.createDownloadTab())
	ui.historyTab = container.NewTabItem(ui.tabTitle(IconHistory, KeyTabHistory), ui.createHistoryTab())
	ui.toolsTab = container.NewTabItem(ui.tabTitle(IconTools, KeyTabTools), ui.createToolsTab())
	ui.tabs = container.NewAppTabs(ui.downloadTab, ui.historyTab, ui.toolsTab)

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.tabs))
}

// tabTitle prefixes a localized tab name with its icon
func (ui *RootUI) tabTitle(icon, key string) string {
	return icon + " " + ui.localization.GetText(key)
}

// createDownloadTab builds the job form and the status box
func (ui *RootUI) createDownloadTab() fyne.CanvasObject {
	ui.urlEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}
	ui.urlEntry.OnChanged = func(string) {
		ui.updatePlaylistPanel()
	}

	ui.resolutionSelect = widget.NewSelect(ui.formats.Resolutions, nil)
	ui.resolutionSelect.SetSelected(ui.formats.DefaultResolution)
	ui.resolutionRow = ui.mobile.FormRow(ui.localization.GetText(KeyResolution), ui.resolutionSelect)

	ui.bitrateSelect = widget.NewSelect(ui.formats.Bitrates, nil)
	ui.bitrateSelect.SetSelected(ui.formats.DefaultBitrate)
	ui.bitrateRow = ui.mobile.FormRow(ui.localization.GetText(KeyBitrate), ui.bitrateSelect)

	ui.playlistPanel = NewPlaylistPanel(ui.localization, ui.previewer, func() string {
		return strings.TrimSpace(ui.urlEntry.Text)
	})

	ui.formatRadio = widget.NewRadioGroup(formatLabels(ui.formats.Formats), ui.onFormatChanged)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.Required = true
	ui.formatRadio.SetSelected(formatLabel(ui.formats.DefaultFormat))
	ui.onFormatChanged(ui.formatRadio.Selected)

	ui.customDirEntry = widget.NewEntry()
	ui.customDirEntry.SetPlaceHolder(ui.localization.GetText(KeyCustomDirHint))
	ui.customDirEntry.Hide()
	ui.customDirCheck = widget.NewCheck(ui.localization.GetText(KeyUseCustomDir), ui.onCustomDirToggled)

	ui.downloadBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.messageLabel = widget.NewLabel("")
	ui.messageLabel.Wrapping = fyne.TextWrapWord
	ui.messageLabel.Hide()

	ui.statusLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	statusScroll := container.NewVScroll(ui.statusLabel)
	statusScroll.SetMinSize(fyne.NewSize(StatusBoxMinWidth, StatusBoxMinHeight))

	form := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.downloadBtn, ui.urlEntry),
		ui.mobile.FormRow(ui.localization.GetText(KeyFormat), ui.formatRadio),
		ui.mobile.OptionGrid(ui.resolutionRow, ui.bitrateRow),
		ui.playlistPanel.Container(),
		ui.customDirCheck,
		ui.customDirEntry,
		ui.messageLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(ui.localization.GetText(KeyStatus), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	return container.NewBorder(form, nil, nil, nil, statusScroll)
}

// createMenu builds the main menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts re-applies labels after a language change
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.customDirCheck.Text = ui.localization.GetText(KeyUseCustomDir)
	ui.customDirCheck.Refresh()
	ui.customDirEntry.SetPlaceHolder(ui.localization.GetText(KeyCustomDirHint))
	ui.historyBtn.SetText(ui.localization.GetText(KeyShowHistory))
	ui.verifyBtn.SetText(ui.localization.GetText(KeyVerifyFFmpeg))

	ui.downloadTab.Text = ui.localization.GetText(KeyTabDownload)
	ui.historyTab.Text = ui.tabTitle(IconHistory, KeyTabHistory)
	ui.toolsTab.Text = ui.tabTitle(IconTools, KeyTabTools)
	ui.tabs.Refresh()

	ui.createMenu()
}

// onFormatChanged shows only the options that apply to the selected format
func (ui *RootUI) onFormatChanged(label string) {
	f := formatFromLabel(label, ui.formats.Formats)
	showResolution, showBitrate := optionVisibility(f)

	if showResolution {
		ui.resolutionRow.Show()
	} else {
		ui.resolutionRow.Hide()
	}
	if showBitrate {
		ui.bitrateRow.Show()
	} else {
		ui.bitrateRow.Hide()
	}
	ui.updatePlaylistPanel()
}

// updatePlaylistPanel offers a preview while a playlist URL and format are selected
func (ui *RootUI) updatePlaylistPanel() {
	if ui.playlistPanel == nil || ui.formatRadio == nil || ui.previewer == nil {
		return
	}
	f := formatFromLabel(ui.formatRadio.Selected, ui.formats.Formats)
	ui.playlistPanel.SetVisible(platform.ShouldPreview(f, ui.urlEntry.Text))
}

// onCustomDirToggled shows the directory entry, or hides and clears it
func (ui *RootUI) onCustomDirToggled(checked bool) {
	if !checked {
		ui.customDirEntry.SetText("")
		ui.customDirEntry.Hide()
		return
	}
	if ui.customDirEntry.Text == "" {
		ui.customDirEntry.SetText(ui.settings.GetLastCustomDir())
	}
	ui.customDirEntry.Show()
	ui.window.Canvas().Focus(ui.customDirEntry)
}

// readForm captures the current widget values
func (ui *RootUI) readForm() formSnapshot {
	return formSnapshot{
		URL:          ui.urlEntry.Text,
		FormatLabel:  ui.formatRadio.Selected,
		Resolution:   ui.resolutionSelect.Selected,
		Bitrate:      ui.bitrateSelect.Selected,
		UseCustomDir: ui.customDirCheck.Checked,
		CustomDir:    ui.customDirEntry.Text,
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.controller == nil || ui.downloadBtn.Disabled() {
		return
	}

	snapshot := ui.readForm()
	input := snapshot.toInput(ui.formats.Formats)

	// The control goes inactive before any request is made
	ui.downloadBtn.Disable()

	if dir := strings.TrimSpace(snapshot.CustomDir); snapshot.UseCustomDir && dir != "" {
		ui.settings.SetLastCustomDir(dir)
	}

	go func() {
		err := ui.controller.Submit(context.Background(), input)
		switch {
		case errors.Is(err, download.ErrBusy):
			ui.showMessage(ui.localization.GetText(KeyDownloadInFlight), widget.WarningImportance)
		case errors.Is(err, download.ErrClosed):
			log.Printf("Submission ignored: %v", err)
		case err != nil:
			log.Printf("Submission failed: %v", err)
		}
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, func(connectionChanged bool) {
		if connectionChanged {
			dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeyConnectionChanged), ui.window)
		}
	})
	sd.Show()
}

// showMessage sets the message line from any goroutine
func (ui *RootUI) showMessage(msg string, importance widget.Importance) {
	fyne.Do(func() {
		ui.messageLabel.Importance = importance
		ui.messageLabel.SetText(msg)
		ui.messageLabel.Show()
	})
}

// SetSubmitEnabled enables or disables the download button
func (ui *RootUI) SetSubmitEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			ui.downloadBtn.Enable()
		} else {
			ui.downloadBtn.Disable()
		}
	})
}

// ClearMessage hides the message line
func (ui *RootUI) ClearMessage() {
	fyne.Do(func() {
		ui.messageLabel.SetText("")
		ui.messageLabel.Hide()
	})
}

// ShowError shows msg as an error
func (ui *RootUI) ShowError(msg string) {
	ui.showMessage(msg, widget.DangerImportance)
}

// ShowSuccess shows msg as a success
func (ui *RootUI) ShowSuccess(msg string) {
	ui.showMessage(msg, widget.SuccessImportance)
}

// SetStatusText replaces the status box content
func (ui *RootUI) SetStatusText(text string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

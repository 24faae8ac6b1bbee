package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-remote/internal/model"
)

// StatusPill is a rounded, colored status badge
type StatusPill struct {
	background *canvas.Rectangle
	text       *canvas.Text
	container  *fyne.Container
	status     model.ToolStatus
}

// NewStatusPill creates a pill in the unknown state
func NewStatusPill() *StatusPill {
	p := &StatusPill{
		background: canvas.NewRectangle(toneColor(model.PillNeutral)),
		text:       canvas.NewText(pillText(model.ToolUnknown), colorPillText),
	}
	p.background.CornerRadius = PillRadius
	p.background.SetMinSize(fyne.NewSize(PillMinWidth, PillMinHeight))
	p.text.Alignment = fyne.TextAlignCenter
	p.text.TextStyle = fyne.TextStyle{Bold: true}
	p.container = container.NewStack(p.background, container.NewCenter(p.text))
	return p
}

// SetStatus updates text and color. Must run on the UI thread.
func (p *StatusPill) SetStatus(status model.ToolStatus) {
	p.status = status
	p.text.Text = pillText(status)
	p.background.FillColor = toneColor(status.Tone())
	p.text.Refresh()
	p.background.Refresh()
}

// Status returns the status shown
func (p *StatusPill) Status() model.ToolStatus {
	return p.status
}

// Container returns the pill's canvas object
func (p *StatusPill) Container() *fyne.Container {
	return p.container
}

// canStartCheck reports whether a pill showing s may start another check
func canStartCheck(s model.ToolStatus) bool {
	return s == model.ToolUnknown || s.IsFinal()
}

// createToolsTab builds the tool verification panel
func (ui *RootUI) createToolsTab() fyne.CanvasObject {
	ui.ffmpegPill = NewStatusPill()
	ui.verifyBtn = widget.NewButton(ui.localization.GetText(KeyVerifyFFmpeg), ui.onVerifyFFmpeg)

	row := container.NewHBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyFFmpeg), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.ffmpegPill.Container(),
		ui.verifyBtn,
	)
	return container.NewVBox(row)
}

// onVerifyFFmpeg asks the backend for ffmpeg and shows the answer in the pill
func (ui *RootUI) onVerifyFFmpeg() {
	if !canStartCheck(ui.ffmpegPill.Status()) {
		return
	}
	ui.ffmpegPill.SetStatus(model.ToolChecking)
	ui.verifyBtn.Disable()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), VerifyRequestTimeout)
		defer cancel()

		status := ui.controller.VerifyFFmpeg(ctx)
		log.Printf("ffmpeg check: %s", status)

		fyne.Do(func() {
			ui.ffmpegPill.SetStatus(status)
			ui.verifyBtn.Enable()
		})
	}()
}

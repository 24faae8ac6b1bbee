package ui

import (
	"context"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HistoryBox shows finished downloads as a one-column table, or a
// placeholder when there are none
type HistoryBox struct {
	localization *Localization

	mu   sync.Mutex
	rows []string

	table       *widget.Table
	placeholder *widget.Label
	container   *fyne.Container
}

// NewHistoryBox creates an empty, hidden history box
func NewHistoryBox(localization *Localization) *HistoryBox {
	h := &HistoryBox{localization: localization}

	h.table = widget.NewTable(
		func() (int, int) {
			h.mu.Lock()
			defer h.mu.Unlock()
			return len(h.rows), 1
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			h.mu.Lock()
			defer h.mu.Unlock()
			if id.Row < len(h.rows) {
				obj.(*widget.Label).SetText(h.rows[id.Row])
			}
		},
	)
	h.table.ShowHeaderRow = true
	h.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	h.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		obj.(*widget.Label).SetText(h.localization.GetText(KeyHistoryTitle))
	}
	h.table.SetColumnWidth(0, HistoryColumnWidth)

	h.placeholder = widget.NewLabel(localization.GetText(KeyNoDownloads))

	// Tables have no useful min size of their own
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(HistoryColumnWidth, HistoryMinHeight))

	h.container = container.NewStack(spacer, h.placeholder, h.table)
	h.container.Hide()
	return h
}

// Show renders titles. Must run on the UI thread.
func (h *HistoryBox) Show(titles []string) {
	view := newHistoryView(titles)

	h.mu.Lock()
	h.rows = view.Rows
	h.mu.Unlock()

	if view.Empty {
		h.placeholder.SetText(h.localization.GetText(KeyNoDownloads))
		h.placeholder.Show()
		h.table.Hide()
	} else {
		h.placeholder.Hide()
		h.table.Show()
		h.table.Refresh()
	}
	h.container.Show()
}

// ShowError replaces the content with msg. Must run on the UI thread.
func (h *HistoryBox) ShowError(msg string) {
	h.mu.Lock()
	h.rows = nil
	h.mu.Unlock()

	h.placeholder.SetText(msg)
	h.placeholder.Show()
	h.table.Hide()
	h.container.Show()
}

// Container returns the box's canvas object
func (h *HistoryBox) Container() *fyne.Container {
	return h.container
}

// createHistoryTab builds the history panel
func (ui *RootUI) createHistoryTab() fyne.CanvasObject {
	ui.historyBox = NewHistoryBox(ui.localization)
	ui.historyBtn = widget.NewButton(ui.localization.GetText(KeyShowHistory), ui.onShowHistory)

	return container.NewBorder(ui.historyBtn, nil, nil, nil, ui.historyBox.Container())
}

// onShowHistory fetches the history and renders it
func (ui *RootUI) onShowHistory() {
	ui.historyBtn.Disable()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), HistoryRequestTimeout)
		defer cancel()

		titles, err := ui.controller.History(ctx)

		fyne.Do(func() {
			ui.historyBtn.Enable()
			if err != nil {
				ui.historyBox.ShowError(ui.localization.GetText(KeyHistoryFailed) + ": " + err.Error())
				return
			}
			ui.historyBox.Show(titles)
		})
	}()
}

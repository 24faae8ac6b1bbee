package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI picks form layouts that suit the current device
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// FormRow lays out a labelled control. Phones stack the label above the
// control; desktops keep them on one line.
func (m *MobileUI) FormRow(label string, control fyne.CanvasObject) *fyne.Container {
	l := widget.NewLabel(label)
	if m.IsMobileDevice() {
		return container.NewVBox(l, control)
	}
	return container.NewBorder(nil, nil, l, nil, control)
}

// OptionGrid places format options side by side on desktops and in one
// column on phones
func (m *MobileUI) OptionGrid(objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		return container.NewVBox(objects...)
	}
	return container.NewAdaptiveGrid(len(objects), objects...)
}

// CreateMobileButton creates a button with a touch-sized height on phones
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if m.IsMobileDevice() {
		btn.Importance = widget.HighImportance
	}
	return btn
}

// CreateMobileEntry creates an entry field
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the download form, the job status box, history and tool checks, and
// implements the controller's View by marshalling every update onto the UI thread
// with fyne.Do. All UI labels are localized via Localization.

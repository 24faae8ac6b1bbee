package model

// Package model defines the data exchanged with the download backend: job
// requests built from form input, status snapshots, the controller's poll
// state, and the ffmpeg tool status shown in the UI.

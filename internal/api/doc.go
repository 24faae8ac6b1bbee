// Package api is the HTTP client for the download backend: job submission,
// status polling, history and ffmpeg verification.
package api

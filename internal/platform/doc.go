package platform

// Package platform contains external tooling glue: playlist listing via the
// yt-dlp library, used to preview what a playlist submission will fetch.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ytget/yt-remote/internal/api"
	"github.com/ytget/yt-remote/internal/config"
	"github.com/ytget/yt-remote/internal/download"
	"github.com/ytget/yt-remote/internal/model"
)

// Exit codes
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	// Load .env file if it exists
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run submits one job and follows it until the backend reports it finished
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := config.ApplyEnv(config.DefaultOptions())

	fs := flag.NewFlagSet("yt-remote", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rawURL := fs.String("url", "", "YouTube video or playlist URL")
	format := fs.String("format", string(opts.Formats.DefaultFormat), "Output format: mp3, mp4 or mp4_playlist")
	audio := fs.Bool("audio", false, "Download MP3 audio only (same as -format mp3)")
	resolution := fs.String("resolution", "", "Video resolution (default "+opts.Formats.DefaultResolution+")")
	bitrate := fs.String("bitrate", "", "Audio bitrate (default "+opts.Formats.DefaultBitrate+")")
	outputDir := fs.String("output-dir", "", "Directory on the server to save into")
	server := fs.String("server", opts.ServerURL, "Backend base URL")
	interval := fs.Duration("interval", opts.PollInterval, "Status poll interval")
	timeout := fs.Duration("timeout", opts.RequestTimeout, "Timeout of each backend request")
	strict := fs.Bool("strict", opts.Formats.StrictOptionFields, "Send resolution only for video and bitrate only for audio")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	if *rawURL == "" && fs.NArg() > 0 {
		*rawURL = fs.Arg(0)
	}
	if *rawURL == "" {
		fmt.Fprintln(stderr, "Usage: yt-remote -url <video-url> [flags]")
		fmt.Fprintln(stderr, "\nExample:")
		fmt.Fprintln(stderr, "  yt-remote -url https://www.youtube.com/watch?v=dQw4w9WgXcQ -audio")
		fmt.Fprintln(stderr, "  yt-remote -url 'https://www.youtube.com/playlist?list=PL...' -format mp4_playlist -resolution 1080")
		return exitError
	}

	input := model.FormInput{
		URL:          strings.TrimSpace(*rawURL),
		Format:       model.Format(*format),
		Resolution:   *resolution,
		Bitrate:      *bitrate,
		UseCustomDir: *outputDir != "",
		CustomDir:    *outputDir,
	}
	if *audio {
		input.Format = model.FormatMP3
	}

	formats := opts.Formats
	formats.StrictOptionFields = *strict

	client := api.NewClient(*server, *timeout)
	view := newTerminalView(stdout, stderr)
	controller := download.NewController(client, view, download.Options{
		PollInterval: *interval,
		Formats:      formats,
	})
	defer controller.Close()

	if !controller.Formats().HasFormat(input.Format) {
		fmt.Fprintf(stderr, "Unknown format %q, passing it to the server as is\n", input.Format)
	}
	fmt.Fprintf(stdout, "Submitting %s to %s\n", input.URL, client.BaseURL())

	if err := controller.Submit(ctx, input); err != nil {
		if ctx.Err() != nil {
			return exitInterrupted
		}
		return exitError
	}

	if err := controller.Wait(ctx); err != nil {
		controller.Close()
		fmt.Fprintln(stderr, "\nReceived interrupt signal, polling stopped")
		return exitInterrupted
	}

	return exitOK
}

package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-remote/internal/api"
	"github.com/ytget/yt-remote/internal/config"
	"github.com/ytget/yt-remote/internal/download"
	"github.com/ytget/yt-remote/internal/platform"
	"github.com/ytget/yt-remote/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-remote"
	AppName = "YT Remote"

	WindowWidth  = 720
	WindowHeight = 640
)

func main() {
	fmt.Printf("YT Remote v%s starting...\n", version)

	config.LoadDotEnv()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	opts := settings.Options()

	client := api.NewClient(opts.ServerURL, opts.RequestTimeout)
	log.Printf("Using backend %s (status every %v)", client.BaseURL(), opts.PollInterval)

	previewer := platform.NewPlaylistPreviewer()
	previewer.SetTimeout(opts.RequestTimeout)
	previewer.SetMaxItems(ui.PreviewMaxItems)

	rootUI := ui.NewRootUI(myWindow, myApp, settings, opts.Formats, previewer)
	controller := download.NewController(client, rootUI, download.Options{
		PollInterval:   opts.PollInterval,
		RequestTimeout: opts.RequestTimeout,
		Formats:        opts.Formats,
	})
	rootUI.SetController(controller)

	// Closing the window is the teardown: stop polling, leave the form as is
	myWindow.SetOnClosed(controller.Close)

	myWindow.ShowAndRun()
}

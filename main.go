package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/gapline/internal/config"
	"github.com/ytget/gapline/internal/ranges"
	"github.com/ytget/gapline/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.gapline"
	AppName = "Gapline"

	WindowWidth  = 960
	WindowHeight = 600
)

func main() {
	fmt.Printf("Gapline v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// The gap threshold is read from preferences here, once per run
	settings := config.NewSettings(myApp)
	fmt.Printf("Gap threshold: %d days\n", settings.Threshold().Get())

	ui.NewRootUI(myWindow, settings, ranges.NewStore())

	myWindow.ShowAndRun()
}

// Package gui is the Fyne desktop front end: drag files onto the window,
// stage them, and copy the combined text to the clipboard.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"clipboarder/internal/clipboard"
	"clipboarder/internal/compile"
	"clipboarder/internal/config"
	"clipboarder/internal/log"
	"clipboarder/internal/tokens"
	"clipboarder/internal/watch"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	stage      *compile.Stage
	tokenizer  compile.TokenCounter
	writer     clipboard.Writer
	watcher    *watch.Watcher

	stageList   *widget.List  // Staged file list shown on the compile tab
	stageStatus *widget.Label // Staged-count label under the list
	statusBar   *widget.Label // Bottom status bar text

	// Track selected items in lists
	selectedStageIndex int // Index of the selected file in the compile tab list

	statusUpdater func() // Function to update the system tray menu

	// Theme settings
	accentColor color.NRGBA
	bgColor     color.NRGBA
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config) *App {
	// Create app with a unique ID for preferences storage
	fyneApp := app.NewWithID("io.github.clipboarder")

	a := &App{
		fyneApp:            fyneApp,
		cfg:                cfg,
		stage:              compile.NewStage(),
		selectedStageIndex: -1, // Initialize to -1 (no selection)
		accentColor:        color.NRGBA{R: 255, G: 165, B: 0, A: 255},
		bgColor:            color.NRGBA{R: 16, G: 16, B: 16, A: 255},
	}

	if tok, err := tokens.New(cfg.Tokenizer.Model); err == nil {
		a.tokenizer = tok
	} else {
		log.Warnf("Token counting disabled: %v", err)
	}

	a.mainWindow = a.fyneApp.NewWindow("Clipboarder")
	a.writer = clipboard.NewFyne(a.mainWindow.Clipboard())

	a.setupSystemTray()

	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// IsWatching checks if watch mode is active
func (a *App) IsWatching() bool {
	if a.watcher == nil {
		return false
	}
	return a.watcher.Status().Running
}

// setupSystemTray sets up the system tray icon and menu
func (a *App) setupSystemTray() {
	if deskApp, ok := a.fyneApp.(desktop.App); ok {
		var updateMenuFunc func() []*fyne.MenuItem // Declare ahead

		updateMenuFunc = func() []*fyne.MenuItem {
			items := []*fyne.MenuItem{
				fyne.NewMenuItem("Show Clipboarder", func() {
					a.mainWindow.Show()
				}),
				fyne.NewMenuItemSeparator(),
			}
			if a.IsWatching() {
				items = append(items, fyne.NewMenuItem("Stop Watch Mode", func() {
					a.stopWatchMode()
					deskApp.SetSystemTrayMenu(fyne.NewMenu("Clipboarder", updateMenuFunc()...))
				}))
			} else {
				items = append(items, fyne.NewMenuItem("Start Watch Mode", func() {
					a.startWatchMode()
					deskApp.SetSystemTrayMenu(fyne.NewMenu("Clipboarder", updateMenuFunc()...))
				}))
			}
			items = append(items, fyne.NewMenuItemSeparator(), fyne.NewMenuItem("Exit", func() {
				a.stopWatchMode()
				a.fyneApp.Quit()
			}))
			return items
		}

		deskApp.SetSystemTrayMenu(fyne.NewMenu("Clipboarder", updateMenuFunc()...))

		a.statusUpdater = func() {
			deskApp.SetSystemTrayMenu(fyne.NewMenu("Clipboarder", updateMenuFunc()...))
		}
	}
}

// Run starts the GUI application
func (a *App) Run() {
	a.setupMainWindow()

	a.mainWindow.Show()

	a.fyneApp.Run()
}

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	background := canvas.NewRectangle(a.bgColor)
	background.Resize(fyne.NewSize(800, 600))

	logoText := `
 ██████╗██╗     ██╗██████╗ ██████╗  ██████╗  █████╗ ██████╗ ██████╗ ███████╗██████╗
██╔════╝██║     ██║██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗
██║     ██║     ██║██████╔╝██████╔╝██║   ██║███████║██████╔╝██║  ██║█████╗  ██████╔╝
██║     ██║     ██║██╔═══╝ ██╔══██╗██║   ██║██╔══██║██╔══██╗██║  ██║██╔══╝  ██╔══██╗
╚██████╗███████╗██║██║     ██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝███████╗██║  ██║
 ╚═════╝╚══════╝╚═╝╚═╝     ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝
`
	logoDisplay := canvas.NewText(logoText, a.accentColor)
	logoDisplay.TextStyle.Monospace = true
	logoDisplay.TextSize = 10
	logoDisplay.Alignment = fyne.TextAlignCenter

	// Set initial size before setting final content
	a.mainWindow.Resize(fyne.NewSize(800, 600))

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentCopyIcon(), func() {
			a.copyStaged()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			a.stage.Clear()
			a.refreshStage()
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.HelpIcon(), func() {
			dialog.ShowInformation("About Clipboarder",
				"Clipboarder combines the contents of selected text files\n"+
					"into a single clipboard payload, ready to paste into an\n"+
					"LLM chat. Drop files anywhere on this window to stage them.",
				a.mainWindow)
		}),
	)

	// --- Tabs Setup ---
	tabs := container.NewAppTabs(
		container.NewTabItem("Compile", a.createCompileTab()),
		container.NewTabItem("Scan", a.createScanTab()),
		container.NewTabItem("References", a.createRefsTab()),
		container.NewTabItem("Settings", a.createSettingsTab()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	content := container.NewBorder(
		container.NewVBox(
			logoDisplay,
			toolbar,
			canvas.NewLine(a.accentColor),
		),
		a.createStatusBar(),
		nil,
		nil,
		tabs,
	)

	a.mainWindow.SetContent(content)

	// Files dropped anywhere on the window go straight onto the stage
	a.mainWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		paths := make([]string, 0, len(uris))
		for _, uri := range uris {
			paths = append(paths, uri.Path())
		}
		added, skipped := a.stage.Add(paths...)
		a.refreshStage()
		if skipped > 0 {
			a.setStatus(fmt.Sprintf("Added %d file(s), skipped %d", added, skipped))
		} else {
			a.setStatus(fmt.Sprintf("Added %d file(s)", added))
		}
	})
}

// createStatusBar creates a status bar to display app status information
func (a *App) createStatusBar() fyne.CanvasObject {
	a.statusBar = widget.NewLabelWithStyle("Ready", fyne.TextAlignLeading, fyne.TextStyle{})

	watchStatus := widget.NewLabel("")
	updateWatchText := func() {
		if a.IsWatching() {
			watchStatus.SetText("Watch: Running")
		} else {
			watchStatus.SetText("Watch: Off")
		}
	}
	updateWatchText()

	refreshButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		updateWatchText()
		a.refreshStage()
	})

	return container.NewHBox(
		a.statusBar,
		layout.NewSpacer(),
		watchStatus,
		refreshButton,
	)
}

func (a *App) setStatus(text string) {
	if a.statusBar != nil {
		a.statusBar.SetText(text)
	}
}

// refreshStage refreshes every view that renders the staged file list.
func (a *App) refreshStage() {
	if a.stageList != nil {
		a.stageList.Refresh()
	}
	if a.stageStatus != nil {
		a.stageStatus.SetText(fmt.Sprintf("%d file(s) staged", a.stage.Len()))
	}
}

func (a *App) compileStaged() (*compile.Payload, error) {
	return compile.Compile(a.stage.Paths(), compile.OptionsFromConfig(a.cfg), a.tokenizer)
}

// copyStaged compiles the staged files and delivers the result, chunked
// when a token budget is configured.
func (a *App) copyStaged() {
	payload, err := a.compileStaged()
	if err != nil {
		a.ShowError("Copy failed", err)
		return
	}

	chunks := compile.SplitByTokens(payload.Text, a.cfg.Compile.MaxTokens, a.tokenizer)
	if len(chunks) == 1 {
		if err := a.writer.Write(payload.Text); err != nil {
			a.ShowError("Copy failed", err)
			return
		}
		if payload.TotalTokens > 0 {
			a.setStatus(fmt.Sprintf("Copied %d file(s), ~%d tokens", a.stage.Len(), payload.TotalTokens))
		} else {
			a.setStatus(fmt.Sprintf("Copied %d file(s)", a.stage.Len()))
		}
		a.ShowNotification("Copied", "Combined file contents are on the clipboard")
		return
	}

	a.deliverChunk(chunks, 0)
}

// deliverChunk writes one chunk and asks before overwriting it with the
// next, so the user can paste in between. Dialog callbacks chain the
// remaining chunks without blocking the UI thread.
func (a *App) deliverChunk(chunks []string, idx int) {
	if err := a.writer.Write(chunks[idx]); err != nil {
		a.ShowError("Copy failed", err)
		return
	}
	if idx == len(chunks)-1 {
		a.setStatus(fmt.Sprintf("Copied final chunk %d/%d", idx+1, len(chunks)))
		return
	}

	a.setStatus(fmt.Sprintf("Copied chunk %d/%d", idx+1, len(chunks)))
	dialog.ShowConfirm("Chunk copied",
		fmt.Sprintf("Chunk %d of %d is on the clipboard.\nPaste it now, then continue to the next chunk.", idx+1, len(chunks)),
		func(next bool) {
			if next {
				a.deliverChunk(chunks, idx+1)
			} else {
				a.setStatus("Chunked delivery cancelled")
			}
		},
		a.mainWindow)
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.ShowError(err, a.mainWindow)

	a.ShowNotification("Error: "+title, err.Error())
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}

// ShowNotification displays a system notification if available
func (a *App) ShowNotification(title, content string) {
	if a.cfg.Settings.EnableNotifications {
		a.fyneApp.SendNotification(fyne.NewNotification(title, content))
	}
}

// startWatchMode watches the staged files and recopies on change.
func (a *App) startWatchMode() {
	if a.stage.Len() == 0 {
		a.ShowInfo("Stage some files before starting watch mode.")
		return
	}

	w, err := watch.New(time.Duration(a.cfg.WatchMode.DebounceMillis) * time.Millisecond)
	if err != nil {
		a.ShowError("Failed to start watch mode", err)
		return
	}
	w.SetCallback(func(paths []string) {
		payload, err := compile.Compile(paths, compile.OptionsFromConfig(a.cfg), a.tokenizer)
		if err != nil {
			log.Errorf("Watch recompile failed: %v", err)
			return
		}
		if err := a.writer.Write(payload.Text); err != nil {
			log.Errorf("Watch recopy failed: %v", err)
			return
		}
		log.Infof("Recopied %d file(s) after change", len(paths))
		a.ShowNotification("Recopied", "Staged files changed; clipboard updated")
	})
	for _, path := range a.stage.Paths() {
		if err := w.AddFile(path); err != nil {
			log.Warnf("Not watching %s: %v", path, err)
		}
	}
	if err := w.Start(); err != nil {
		a.ShowError("Failed to start watch mode", err)
		return
	}

	a.watcher = w
	a.setStatus("Watch mode started")
	a.ShowNotification("Watch Mode", "Watch mode has been started")
	if a.statusUpdater != nil {
		a.statusUpdater()
	}
}

// stopWatchMode stops the watch mode
func (a *App) stopWatchMode() {
	if a.watcher == nil || !a.watcher.Status().Running {
		return
	}

	a.watcher.Stop()
	a.watcher = nil
	a.setStatus("Watch mode stopped")
	a.ShowNotification("Watch Mode", "Watch mode has been stopped")
	if a.statusUpdater != nil {
		a.statusUpdater()
	}
}

// saveConfig saves the current configuration
func (a *App) saveConfig() {
	err := a.cfg.Save()
	if err != nil {
		a.ShowError("Failed to save configuration", err)
	}
}

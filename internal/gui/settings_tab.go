package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"clipboarder/internal/config"
)

// Separator choices shown in the settings dropdown, mapped to the actual
// join strings.
var separatorChoices = map[string]string{
	"Blank line":  "\n\n",
	"Single line": "\n",
	"Ruler":       "\n----------\n",
}

func separatorName(sep string) string {
	for name, value := range separatorChoices {
		if value == sep {
			return name
		}
	}
	return "Blank line"
}

// createSettingsTab creates the settings tab
func (a *App) createSettingsTab() fyne.CanvasObject {
	// --- Compile Settings ---
	annotateCheck := widget.NewCheck("Prefix Each File With a Header", func(value bool) {
		a.cfg.Compile.Annotate = value
	})
	annotateCheck.SetChecked(a.cfg.Compile.Annotate)

	stripCheck := widget.NewCheck("Strip Empty Lines", func(value bool) {
		a.cfg.Compile.StripEmptyLines = value
	})
	stripCheck.SetChecked(a.cfg.Compile.StripEmptyLines)

	separatorLabel := widget.NewLabel("Separator:")
	separatorSelect := widget.NewSelect([]string{"Blank line", "Single line", "Ruler"}, func(value string) {
		a.cfg.Compile.Separator = separatorChoices[value]
	})
	separatorSelect.SetSelected(separatorName(a.cfg.Compile.Separator))

	unreadableLabel := widget.NewLabel("Unreadable Files:")
	unreadableSelect := widget.NewSelect(
		[]string{config.UnreadableAnnotate, config.UnreadableSkip, config.UnreadableAbort},
		func(value string) {
			a.cfg.Compile.OnUnreadable = value
		})
	unreadableSelect.SetSelected(a.cfg.Compile.OnUnreadable)

	compileCard := widget.NewCard("Compile Settings", "", container.NewVBox(
		annotateCheck,
		stripCheck,
		container.NewHBox(separatorLabel, separatorSelect),
		container.NewHBox(unreadableLabel, unreadableSelect),
	))

	// --- Token Settings ---
	modelEntry := widget.NewEntry()
	modelEntry.SetText(a.cfg.Tokenizer.Model)
	modelEntry.OnChanged = func(text string) {
		a.cfg.Tokenizer.Model = text
	}

	maxTokensEntry := widget.NewEntry()
	maxTokensEntry.SetText(strconv.Itoa(a.cfg.Compile.MaxTokens))
	maxTokensEntry.OnChanged = func(text string) {
		if n, err := strconv.Atoi(text); err == nil && n >= 0 {
			a.cfg.Compile.MaxTokens = n
		}
	}

	tokenCard := widget.NewCard("Token Settings", "", container.NewVBox(
		container.NewHBox(widget.NewLabel("Model:"), modelEntry),
		container.NewHBox(widget.NewLabel("Max Tokens per Chunk (0 = off):"), maxTokensEntry),
	))

	// --- Watch Mode Settings ---
	debounceEntry := widget.NewEntry()
	debounceEntry.SetText(strconv.Itoa(a.cfg.WatchMode.DebounceMillis))
	debounceEntry.OnChanged = func(text string) {
		if n, err := strconv.Atoi(text); err == nil && n > 0 {
			a.cfg.WatchMode.DebounceMillis = n
		}
	}

	startWatchButton := widget.NewButton("Start Watch Mode", func() {
		a.startWatchMode()
	})
	stopWatchButton := widget.NewButton("Stop Watch Mode", func() {
		a.stopWatchMode()
	})

	watchCard := widget.NewCard("Watch Mode", "", container.NewVBox(
		container.NewHBox(widget.NewLabel("Debounce (ms):"), debounceEntry),
		container.NewHBox(startWatchButton, stopWatchButton),
	))

	// --- UI Settings ---
	notificationsCheck := widget.NewCheck("Enable Notifications", func(value bool) {
		a.cfg.Settings.EnableNotifications = value
	})
	notificationsCheck.SetChecked(a.cfg.Settings.EnableNotifications)

	themeLabel := widget.NewLabel("Theme:")
	themeSelect := widget.NewSelect([]string{"dark", "light"}, func(value string) {
		a.cfg.Settings.Theme = value
	})
	themeSelect.SetSelected(a.cfg.Settings.Theme)

	uiCard := widget.NewCard("Interface", "", container.NewVBox(
		notificationsCheck,
		container.NewHBox(themeLabel, themeSelect),
	))

	// --- Save Settings Button ---
	saveSettingsButton := widget.NewButton("Save Settings", func() {
		a.saveConfig()
		a.ShowInfo("Settings saved successfully")
	})

	return container.NewVBox(
		compileCard,
		tokenCard,
		watchCard,
		uiCard,
		saveSettingsButton,
	)
}

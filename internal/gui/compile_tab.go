package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// createCompileTab creates the main staging tab
func (a *App) createCompileTab() fyne.CanvasObject {
	a.stageList = widget.NewList(
		func() int {
			return a.stage.Len()
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.DocumentIcon()),
				widget.NewLabel("Template file path"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			paths := a.stage.Paths()
			if id < 0 || id >= len(paths) {
				return
			}
			label := obj.(*fyne.Container).Objects[1].(*widget.Label)
			label.SetText(paths[id])
		},
	)

	a.stageList.OnSelected = func(id widget.ListItemID) {
		a.selectedStageIndex = int(id)
	}
	a.stageList.OnUnselected = func(id widget.ListItemID) {
		if a.selectedStageIndex == int(id) {
			a.selectedStageIndex = -1
		}
	}

	a.stageStatus = widget.NewLabel("0 file(s) staged")

	addButton := widget.NewButtonWithIcon("Add Files...", theme.ContentAddIcon(), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()

			added, skipped := a.stage.Add(reader.URI().Path())
			a.refreshStage()
			if added == 0 && skipped > 0 {
				a.ShowInfo("That file is already staged or not readable.")
			}
		}, a.mainWindow)
	})

	removeButton := widget.NewButtonWithIcon("Remove Selected", theme.ContentRemoveIcon(), func() {
		selected := a.selectedStageIndex
		if selected < 0 || selected >= a.stage.Len() {
			a.ShowInfo("Please select a file to remove.")
			return
		}
		a.stage.Remove(selected)
		a.selectedStageIndex = -1
		a.stageList.UnselectAll()
		a.refreshStage()
	})

	clearButton := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		a.stage.Clear()
		a.selectedStageIndex = -1
		a.stageList.UnselectAll()
		a.refreshStage()
	})

	countButton := widget.NewButtonWithIcon("Count Tokens", theme.InfoIcon(), func() {
		a.showTokenCounts()
	})

	copyButton := widget.NewButtonWithIcon("Copy to Clipboard", theme.ContentCopyIcon(), func() {
		a.copyStaged()
	})
	copyButton.Importance = widget.HighImportance

	buttonContainer := container.NewHBox(
		addButton,
		layout.NewSpacer(),
		removeButton,
		clearButton,
		countButton,
		copyButton,
	)

	helpText := widget.NewRichTextFromMarkdown("# Staging Files\n\n" +
		"Drop files anywhere on this window, or use **Add Files...** to pick them.\n\n" +
		"- Files keep the order they were added in\n" +
		"- Each file is prefixed with a `# ===== File: name =====` header\n" +
		"- **Copy to Clipboard** combines everything into one paste-ready block")

	helpCard := widget.NewCard("Help", "", helpText)

	return container.NewBorder(
		widget.NewLabelWithStyle("Staged Files", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewVBox(
			a.stageStatus,
			buttonContainer,
			helpCard,
		),
		nil,
		nil,
		container.NewScroll(a.stageList),
	)
}

// showTokenCounts compiles without copying and reports per-file counts.
func (a *App) showTokenCounts() {
	if a.tokenizer == nil {
		a.ShowInfo("Token counting is unavailable; the tokenizer could not be initialized.")
		return
	}

	payload, err := a.compileStaged()
	if err != nil {
		a.ShowError("Count failed", err)
		return
	}

	report := ""
	for _, fc := range payload.Files {
		report += fmt.Sprintf("%s: ~%d tokens\n", fc.Path, fc.Tokens)
	}
	report += fmt.Sprintf("\nTotal: ~%d tokens", payload.TotalTokens)
	a.ShowInfo(report)
}

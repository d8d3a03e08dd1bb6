package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"clipboarder/internal/scan"
)

// createScanTab creates the folder-scanning tab
func (a *App) createScanTab() fyne.CanvasObject {
	folderEntry := widget.NewEntry()
	folderEntry.SetPlaceHolder("Folder to scan recursively")

	browseButton := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			folderEntry.SetText(uri.Path())
		}, a.mainWindow)
	})

	extEntry := widget.NewEntry()
	extEntry.SetText(a.cfg.Scan.DefaultExtension)
	extEntry.SetPlaceHolder(".go, .py, or a glob like *.{go,md}")

	resultLabel := widget.NewLabel("")

	scanButton := widget.NewButton("Scan and Stage", func() {
		folder := folderEntry.Text
		if folder == "" {
			a.ShowInfo("Choose a folder to scan first.")
			return
		}

		files, err := scan.Collect([]scan.Pair{{Folder: folder, Ext: scan.NormalizeExt(extEntry.Text)}})
		if err != nil {
			a.ShowError("Scan failed", err)
			return
		}
		if len(files) == 0 {
			resultLabel.SetText("No matching files found")
			return
		}

		added, skipped := a.stage.Add(files...)
		a.refreshStage()
		resultLabel.SetText(fmt.Sprintf("Found %d file(s): staged %d, skipped %d", len(files), added, skipped))
	})
	scanButton.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Folder", container.NewBorder(nil, nil, nil, browseButton, folderEntry)),
		widget.NewFormItem("Extension", extEntry),
	)

	helpText := widget.NewRichTextFromMarkdown("# Scanning Folders\n\n" +
		"Scan walks the folder recursively and stages every file whose name\n" +
		"matches the extension or glob pattern. Staged files land on the\n" +
		"Compile tab in sorted order.")

	return container.NewVBox(
		widget.NewCard("Scan a Folder", "", container.NewVBox(
			form,
			scanButton,
			resultLabel,
		)),
		widget.NewCard("Help", "", helpText),
	)
}

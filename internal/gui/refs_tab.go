package gui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"clipboarder/internal/refs"
)

// createRefsTab creates the reference-search tab
func (a *App) createRefsTab() fyne.CanvasObject {
	rootEntry := widget.NewEntry()
	rootEntry.SetPlaceHolder("Source tree to search")

	browseButton := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			rootEntry.SetText(uri.Path())
		}, a.mainWindow)
	})

	patternEntry := widget.NewEntry()
	patternEntry.SetPlaceHolder("Symbol name or regex")

	beforeEntry := widget.NewEntry()
	beforeEntry.SetText(strconv.Itoa(a.cfg.Refs.ContextBefore))
	afterEntry := widget.NewEntry()
	afterEntry.SetText(strconv.Itoa(a.cfg.Refs.ContextAfter))
	extEntry := widget.NewEntry()
	extEntry.SetText(a.cfg.Refs.Extension)

	resultLabel := widget.NewLabel("")

	searchButton := widget.NewButton("Search and Copy", func() {
		root := rootEntry.Text
		if root == "" {
			a.ShowInfo("Choose a folder to search first.")
			return
		}
		pattern := refs.AutoPattern(patternEntry.Text)
		if pattern == "" {
			a.ShowInfo("Enter a symbol or pattern to search for.")
			return
		}

		opts := refs.DefaultOptions()
		if n, err := strconv.Atoi(beforeEntry.Text); err == nil {
			opts.Before = n
		}
		if n, err := strconv.Atoi(afterEntry.Text); err == nil {
			opts.After = n
		}
		if extEntry.Text != "" {
			opts.Extension = extEntry.Text
		}

		snippets, err := refs.Find(root, pattern, opts)
		if err != nil {
			a.ShowError("Search failed", err)
			return
		}
		if len(snippets) == 0 {
			resultLabel.SetText("No matches found")
			return
		}

		if err := a.writer.Write(refs.Combine(snippets)); err != nil {
			a.ShowError("Copy failed", err)
			return
		}
		resultLabel.SetText(fmt.Sprintf("Copied %d match(es) with context", len(snippets)))
	})
	searchButton.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Folder", container.NewBorder(nil, nil, nil, browseButton, rootEntry)),
		widget.NewFormItem("Pattern", patternEntry),
		widget.NewFormItem("Lines before", beforeEntry),
		widget.NewFormItem("Lines after", afterEntry),
		widget.NewFormItem("Extension", extEntry),
	)

	helpText := widget.NewRichTextFromMarkdown("# Finding References\n\n" +
		"Search a source tree for every use of a symbol. Each match is\n" +
		"rendered with surrounding context lines and all matches are copied\n" +
		"to the clipboard as one block.\n\n" +
		"A bare identifier matches whole words; regex input is used as-is.")

	return container.NewVBox(
		widget.NewCard("Search for References", "", container.NewVBox(
			form,
			searchButton,
			resultLabel,
		)),
		widget.NewCard("Help", "", helpText),
	)
}

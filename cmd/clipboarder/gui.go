package main

import (
	"github.com/spf13/cobra"

	"clipboarder/internal/gui"
)

// newGuiCmd creates the gui command
func newGuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical interface",
		Long:  `Open the desktop window. Drop files onto it to stage them, then copy everything with one click.`,
		Run: func(cmd *cobra.Command, args []string) {
			gui.NewApp(cfg).Run()
		},
	}
}

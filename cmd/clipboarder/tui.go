package main

import (
	"github.com/spf13/cobra"

	"clipboarder/internal/tui"
)

// newTuiCmd creates the tui command
func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the terminal interface",
		Long:  `Open the interactive console. Paste file paths to stage them, then send everything to the clipboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cfg)
		},
	}
}

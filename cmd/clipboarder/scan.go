package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipboarder/internal/clipboard"
	"clipboarder/internal/compile"
	"clipboarder/internal/scan"
	"clipboarder/internal/tokens"
)

// newScanCmd creates the scan command
func newScanCmd() *cobra.Command {
	var (
		ext  string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "scan FOLDER...",
		Short: "Collect files from folders by extension and copy them",
		Long: `Walk each folder recursively, collect every file matching the
extension or glob pattern, and copy the combined contents to the
clipboard in sorted order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extension := ext
			if extension == "" {
				extension = cfg.Scan.DefaultExtension
			}

			pairs := make([]scan.Pair, 0, len(args))
			for _, folder := range args {
				pairs = append(pairs, scan.Pair{Folder: folder, Ext: scan.NormalizeExt(extension)})
			}

			files, err := scan.Collect(pairs)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println(warningText("No matching files found"))
				return nil
			}

			if list {
				for _, f := range files {
					fmt.Println(f)
				}
				return nil
			}

			var counter compile.TokenCounter
			if tok, err := tokens.New(cfg.Tokenizer.Model); err == nil {
				counter = tok
			}

			payload, err := compile.Compile(files, compile.OptionsFromConfig(cfg), counter)
			if err != nil {
				return err
			}
			if err := clipboard.NewSystem().Write(payload.Text); err != nil {
				return err
			}

			if payload.TotalTokens > 0 {
				fmt.Println(successText(fmt.Sprintf("Copied %d file(s), ~%d tokens", len(files), payload.TotalTokens)))
			} else {
				fmt.Println(successText(fmt.Sprintf("Copied %d file(s)", len(files))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "e", "", "Extension or glob pattern to collect (default from config)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List matching files instead of copying")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipboarder/internal/clipboard"
	"clipboarder/internal/refs"
)

// newRefsCmd creates the refs command
func newRefsCmd() *cobra.Command {
	var (
		before    int
		after     int
		ext       string
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "refs FOLDER PATTERN",
		Short: "Find symbol references and copy them with context",
		Long: `Search a source tree for every line matching the pattern and copy
the matches, each with surrounding context lines, to the clipboard.

A bare identifier is matched as a whole word; input containing regex
metacharacters is used as a regular expression directly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := refs.Options{
				Before:    cfg.Refs.ContextBefore,
				After:     cfg.Refs.ContextAfter,
				Extension: cfg.Refs.Extension,
			}
			if cmd.Flags().Changed("before") {
				opts.Before = before
			}
			if cmd.Flags().Changed("after") {
				opts.After = after
			}
			if ext != "" {
				opts.Extension = ext
			}

			pattern := refs.AutoPattern(args[1])
			snippets, err := refs.Find(args[0], pattern, opts)
			if err != nil {
				return err
			}
			if len(snippets) == 0 {
				fmt.Println(warningText("No matches found"))
				return nil
			}

			combined := refs.Combine(snippets)
			if printOnly {
				fmt.Println(combined)
				return nil
			}

			if err := clipboard.NewSystem().Write(combined); err != nil {
				return err
			}
			fmt.Println(successText(fmt.Sprintf("Copied %d match(es) with context", len(snippets))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&before, "before", "B", 3, "Lines of context before each match")
	cmd.Flags().IntVarP(&after, "after", "A", 3, "Lines of context after each match")
	cmd.Flags().StringVarP(&ext, "ext", "e", "", "File extension to search (default from config)")
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print matches instead of copying")

	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clipboarder/internal/clipboard"
	"clipboarder/internal/compile"
	"clipboarder/internal/tokens"
)

// newCopyCmd creates the copy command
func newCopyCmd() *cobra.Command {
	var (
		separator  string
		noAnnotate bool
		strip      bool
		maxTokens  int
		countOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "copy FILE...",
		Short: "Combine files and copy them to the clipboard",
		Long: `Combine the contents of the given files, in order, into a single
text block and place it on the system clipboard. Each file is prefixed
with a "# ===== File: name =====" header unless --no-annotate is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := compile.OptionsFromConfig(cfg)
			if cmd.Flags().Changed("separator") {
				opts.Separator = separator
			}
			if noAnnotate {
				opts.Annotate = false
			}
			if strip {
				opts.StripEmptyLines = true
			}

			budget := cfg.Compile.MaxTokens
			if cmd.Flags().Changed("max-tokens") {
				budget = maxTokens
			}

			var counter compile.TokenCounter
			if tok, err := tokens.New(cfg.Tokenizer.Model); err == nil {
				counter = tok
			} else {
				fmt.Println(warningText(fmt.Sprintf("Token counting disabled: %v", err)))
			}

			payload, err := compile.Compile(args, opts, counter)
			if err != nil {
				return err
			}

			if countOnly {
				for _, fc := range payload.Files {
					fmt.Printf("%8d  %s\n", fc.Tokens, fc.Path)
				}
				fmt.Printf("%8d  total\n", payload.TotalTokens)
				return nil
			}

			reader := bufio.NewReader(os.Stdin)
			written, err := compile.Deliver(clipboard.NewSystem(), payload.Text, budget, counter,
				func(chunk, total int) {
					fmt.Println(infoText(fmt.Sprintf("Chunk %d/%d copied. Paste it, then press enter for the next...", chunk, total)))
					reader.ReadString('\n')
				})
			if err != nil {
				return err
			}

			for _, skipped := range payload.Skipped {
				fmt.Println(warningText("Skipped unreadable file: " + skipped))
			}

			if written > 1 {
				fmt.Println(successText(fmt.Sprintf("Copied %d file(s) in %d chunks", len(payload.Files), written)))
			} else if payload.TotalTokens > 0 {
				fmt.Println(successText(fmt.Sprintf("Copied %d file(s), ~%d tokens", len(payload.Files), payload.TotalTokens)))
			} else {
				fmt.Println(successText(fmt.Sprintf("Copied %d file(s)", len(payload.Files))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", "\n\n", "String placed between file sections")
	cmd.Flags().BoolVar(&noAnnotate, "no-annotate", false, "Skip the per-file header lines")
	cmd.Flags().BoolVar(&strip, "strip", false, "Strip empty lines from the combined text")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Deliver in chunks of at most this many tokens (0 = off)")
	cmd.Flags().BoolVar(&countOnly, "count-only", false, "Print token counts without copying")

	return cmd
}

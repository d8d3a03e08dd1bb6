package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"clipboarder/internal/clipboard"
	"clipboarder/internal/compile"
	"clipboarder/internal/tokens"
	"clipboarder/internal/watch"
)

// newWatchCmd creates the watch command
func newWatchCmd() *cobra.Command {
	var debounceMillis int

	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Recopy files to the clipboard whenever they change",
		Long: `Watch the given files and, whenever one of them changes on disk,
recompile the combined text and put it back on the clipboard. Runs
until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounce := time.Duration(cfg.WatchMode.DebounceMillis) * time.Millisecond
			if cmd.Flags().Changed("debounce") {
				debounce = time.Duration(debounceMillis) * time.Millisecond
			}

			var counter compile.TokenCounter
			if tok, err := tokens.New(cfg.Tokenizer.Model); err == nil {
				counter = tok
			}

			writer := clipboard.NewSystem()
			recopy := func(paths []string) {
				payload, err := compile.Compile(paths, compile.OptionsFromConfig(cfg), counter)
				if err != nil {
					fmt.Println(errorText(fmt.Sprintf("Recompile failed: %v", err)))
					return
				}
				if err := writer.Write(payload.Text); err != nil {
					fmt.Println(errorText(fmt.Sprintf("Recopy failed: %v", err)))
					return
				}
				fmt.Println(successText(fmt.Sprintf("Recopied %d file(s) at %s",
					len(paths), time.Now().Format("15:04:05"))))
			}

			w, err := watch.New(debounce)
			if err != nil {
				return err
			}
			defer w.Stop()
			w.SetCallback(recopy)

			for _, path := range args {
				if err := w.AddFile(path); err != nil {
					return err
				}
			}

			// Seed the clipboard before waiting for changes
			recopy(w.Files())

			if err := w.Start(); err != nil {
				return err
			}
			fmt.Println(infoText(fmt.Sprintf("Watching %d file(s). Press Ctrl+C to stop.", len(args))))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan

			status := w.Status()
			fmt.Println(infoText(fmt.Sprintf("Stopped after %d recopy(ies)", status.Recopies)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&debounceMillis, "debounce", "d", 500, "Quiet period in milliseconds before recopying")

	return cmd
}

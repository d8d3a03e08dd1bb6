package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clipboarder/internal/config"
	"clipboarder/internal/log"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:   "clipboarder",
		Short: "Combine file contents onto the clipboard",
		Long: drawLogo() + `
Clipboarder combines the contents of selected text files into a single
clipboard payload, ready to paste into an LLM chat. It can annotate each
file with a header, scan folders by extension, search source trees for
symbol references, and estimate token counts.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Println(warningText(fmt.Sprintf("Could not load config: %v. Using defaults.", err)))
				cfg = config.New()
			}
		},
		// No Run function - default behavior is to show help
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default ~/.config/clipboarder/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	helpTemplate := drawLogo() + "\n\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)

	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newRefsCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newGuiCmd())
	rootCmd.AddCommand(newTuiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

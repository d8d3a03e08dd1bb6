package compile

import (
	"clipboarder/internal/config"
)

// OptionsFromConfig maps the compile section of the configuration onto
// compile options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		Annotate:        cfg.Compile.Annotate,
		Separator:       cfg.Compile.Separator,
		StripEmptyLines: cfg.Compile.StripEmptyLines,
		OnUnreadable:    UnreadablePolicy(cfg.Compile.OnUnreadable),
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/brevity/internal/app"
	"github.com/five82/brevity/internal/config"
)

type rootFlags struct {
	config     string
	prefs      string
	at         string
	theme      string
	remote     string
	debug      bool
	continuous bool
	noWatch    bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "brevity <file[#/deck/slide]>",
		Short: "Present a Markdown slide deck in the terminal",
		Long: `brevity presents a Markdown file as a two-dimensional slide deck.

Decks are separated by "===" lines and slides within a deck by "---" lines.
Left and right move between decks, up and down move within one. A location
such as talk.md#/2/3 opens the third slide of the second deck.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{
				ConfigPath: f.config,
				PrefsPath:  f.prefs,
				Target:     args[0],
				At:         f.at,
				Overrides:  f.overrides(cmd),
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.config, "config", "", "config file (default ~/.config/brevity/config.toml)")
	flags.StringVar(&f.prefs, "prefs", "", "preferences file (default ~/.config/brevity/prefs.toml)")
	flags.StringVar(&f.at, "at", "", "start location, e.g. /2/3")
	flags.StringVar(&f.theme, "theme", "", "color theme (Nightfox, Dawnfox, Dracula, Slate)")
	flags.StringVar(&f.remote, "remote", "", "serve the remote control API on this address, e.g. 127.0.0.1:7711")
	flags.BoolVar(&f.debug, "debug", false, "write a debug log")
	flags.BoolVar(&f.continuous, "continuous", true, "let up/down continue into the neighbouring deck")
	flags.BoolVar(&f.noWatch, "no-watch", false, "do not reload the file when it changes")

	cmd.AddCommand(newInspectCmd(), newCtlCmd())
	return cmd
}

// overrides returns the settings given explicitly on the command line.
func (f rootFlags) overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("continuous") {
		o.Continuous = &f.continuous
	}
	if flags.Changed("debug") {
		o.Debug = &f.debug
	}
	if flags.Changed("remote") {
		o.Remote = &f.remote
	}
	if f.noWatch {
		watch := false
		o.Watch = &watch
	}
	o.Theme = f.theme
	return o
}

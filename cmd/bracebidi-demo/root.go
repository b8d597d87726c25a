package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/bracebidi"
	"github.com/iw2rmb/bracebidi/editor"
	"github.com/iw2rmb/bracebidi/internal/log"
)

const defaultText = "הורדת {foo}LTR{bar}"

type options struct {
	text        string
	lineNumbers bool
	direction   editor.Direction
	debugPath   string
	logLevel    log.Level
}

func newRootCmd() *cobra.Command {
	var v *viper.Viper
	cmd := &cobra.Command{
		Use:          "bracebidi-demo",
		Short:        "Edit right-to-left text with left-to-right {keyword} islands",
		Version:      bracebidi.Version(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.String("text", defaultText, "initial document text")
	f.Bool("line-numbers", false, "show line numbers")
	f.String("direction", "auto", "paragraph direction: auto, rtl or ltr")
	f.String("debug", "", "write a debug log to this file")
	f.String("log-level", "debug", "minimum debug log level")

	v = bindConfig(cmd)
	return cmd
}

// bindConfig reads settings from cmd's flags, overridden by BRACEBIDI_*
// environment variables unless the flag was set explicitly.
func bindConfig(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix("bracebidi")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func loadOptions(v *viper.Viper) (options, error) {
	dir, ok := editor.ParseDirection(v.GetString("direction"))
	if !ok {
		return options{}, fmt.Errorf("invalid direction %q: want auto, rtl or ltr", v.GetString("direction"))
	}
	level, ok := log.ParseLevel(v.GetString("log-level"))
	if !ok {
		return options{}, fmt.Errorf("invalid log level %q", v.GetString("log-level"))
	}
	return options{
		text:        v.GetString("text"),
		lineNumbers: v.GetBool("line-numbers"),
		direction:   dir,
		debugPath:   v.GetString("debug"),
		logLevel:    level,
	}, nil
}

func run(opts options) error {
	if opts.debugPath != "" {
		closeLog, err := log.Init(opts.debugPath, opts.logLevel)
		if err != nil {
			return err
		}
		defer closeLog()
	}
	log.Info(log.CatCLI, "starting", "version", bracebidi.Version(), "direction", opts.direction)

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.ErrorErr(log.CatCLI, "program exited", err)
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

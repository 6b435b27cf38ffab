package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bento-atlas/bento"
	"github.com/bento-atlas/bento/gui"
	"github.com/bento-atlas/bento/internal/loader"
)

func newGuiCommand() *cobra.Command {
	f := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "gui [input...]",
		Short: "Launch the interactive preview GUI",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			if f.verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			cfg := bento.DefaultConfig()
			cfg.MaxWidth = f.maxWidth
			cfg.MaxHeight = f.maxHeight
			cfg.Padding = f.padding
			cfg.Trim = !f.noTrim

			var sprites []*bento.Sprite
			if len(args) > 0 {
				var err error
				sprites, err = loader.Load(args, "", loader.Options{Log: log})
				if err != nil {
					return err
				}
			}

			gui.Run(sprites, cfg, f.name, log)
			return nil
		},
	}
	registerCommonFlags(cmd, f)
	return cmd
}

// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lizardplot draws charts in the BioLizard house style.
//
// lizardplot plot reads columns of numbers, plots every column after
// the first against the first and writes the chart with the
// BioLizard footer:
//
//	lizardplot plot --caption "Source: assay 12" data.txt
//
// lizardplot palettes lists the available palettes and lizardplot
// swatch writes a PNG strip of one of them.
//
// Every flag can also be set in lizardplot.toml in the working
// directory, or in the environment as LIZARDPLOT_<FLAG>, with dashes
// replaced by underscores. Flags shared by plot and swatch, such as
// width, read the same setting.
package main

import (
	"errors"
	"os"
	"strings"

	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each is also the name of a flag.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"

	keyCaption  = "caption"
	keyTitle    = "title"
	keyFontSize = "font-size"
	keyPDF      = "pdf"
	keyOutput   = "output"
	keyName     = "name"
	keyDPI      = "dpi"
	keyLogo     = "logo"
	keyStyle    = "style"
	keyFonts    = "fonts"
	keyWidth    = "width"
	keyHeight   = "height"
	keyTable    = "table"
)

type app struct {
	v   *viper.Viper
	fs  afero.Fs
	log *logrus.Logger
}

func newApp(fs afero.Fs) *app {
	log := logrus.New()
	log.Out = os.Stderr
	return &app{v: viper.New(), fs: fs, log: log}
}

func main() {
	a := newApp(afero.NewOsFs())
	if err := a.command().Execute(); err != nil {
		a.log.Fatal(err)
	}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "lizardplot",
		Short:         "Draw charts in the BioLizard house style",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "read configuration from `file` (default ./lizardplot.toml)")
	pf.String(keyLogLevel, "warn", "log `level` (debug, info, warn, error)")
	a.bind(pf, keyConfig, keyLogLevel)

	root.AddCommand(a.plotCommand(), a.palettesCommand(), a.swatchCommand())
	return root
}

// bind makes viper read keys from the flags of the same name. Only
// the running command's flags are bound, since plot and swatch
// share some names.
func (a *app) bind(fs *pflag.FlagSet, keys ...string) {
	for _, k := range keys {
		lo.Must0(a.v.BindPFlag(k, fs.Lookup(k)))
	}
}

// setup reads the configuration file and environment and configures
// logging. It runs before every subcommand.
func (a *app) setup() error {
	const op = "lizardplot.setup"
	a.v.SetFs(a.fs)
	a.v.SetEnvPrefix("LIZARDPLOT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfg := a.v.GetString(keyConfig)
	if cfg != "" {
		a.v.SetConfigFile(cfg)
	} else {
		a.v.SetConfigName("lizardplot")
		a.v.SetConfigType("toml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfg != "" || !errors.As(err, &notFound) {
			return &lzerr.Error{Kind: lzerr.Configuration, Op: op, Path: cfg, Err: err}
		}
	}

	lvl, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return &lzerr.Error{Kind: lzerr.Configuration, Op: op, Err: err}
	}
	a.log.SetLevel(lvl)
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configured")
	return nil
}

// Copyright 2026 go-imgstat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-imgstat/imgstat"
	"github.com/ajroetker/go-imgstat/imgstat/lanes"
)

// options holds the parsed command line.
type options struct {
	op          string
	order       string
	channelType string
	stack       bool
	lazy        bool
	dropAlpha   bool
	format      string
	logLevel    string
	logFormat   string
}

func registerFlags(fs *pflag.FlagSet, o *options) {
	defaultLevel := "info"
	if env := os.Getenv("IMGSTAT_LOG_LEVEL"); env != "" {
		defaultLevel = env
	}

	fs.StringVarP(&o.op, "op", "o", "all", "statistic to compute: min, max, minmax, mean or all")
	fs.StringVar(&o.order, "order", imgstat.StorageOrder.String(), "traversal order: storage or reference")
	fs.StringVarP(&o.channelType, "channel-type", "t", "u16", "channel type: u8, u16, f32 or f16")
	fs.BoolVar(&o.stack, "stack", false, "treat the files as planes of one view")
	fs.BoolVar(&o.lazy, "lazy", false, "read pixels through the decoded image instead of copying them first")
	fs.BoolVar(&o.dropAlpha, "drop-alpha", false, "reduce color images over R, G, B only")
	fs.StringVarP(&o.format, "format", "f", "text", "output format: text or json")
	fs.StringVar(&o.logLevel, "log-level", defaultLevel, "log level (env IMGSTAT_LOG_LEVEL)")
	fs.StringVar(&o.logFormat, "log-format", "console", "log format: console or json")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "imgstat [flags] FILE...",
		Short:         "Print min, max and mean channel values of images",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), o, args)
		},
	}
	registerFlags(cmd.Flags(), o)
	return cmd
}

func setupLogging(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	switch format {
	case "console":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	case "json":
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	default:
		return fmt.Errorf("log format: unknown format %q", format)
	}
	return nil
}

func validOp(op string) bool {
	switch op {
	case "min", "max", "minmax", "mean", "all":
		return true
	}
	return false
}

func run(w io.Writer, o *options, files []string) error {
	if !validOp(o.op) {
		return fmt.Errorf("op: unknown statistic %q", o.op)
	}
	if o.format != "text" && o.format != "json" {
		return fmt.Errorf("format: unknown output format %q", o.format)
	}
	order, err := imgstat.ParseOrder(o.order)
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	log.Debug().
		Str("order", order.String()).
		Str("dispatch", lanes.CurrentLevel().String()).
		Int("width", lanes.CurrentWidth()).
		Msg("reduction settings")

	imgs, err := decodeAll(files)
	if err != nil {
		return err
	}

	results, err := reduceFiles(imgs, o, order)
	if err != nil {
		return err
	}
	return writeResults(w, o.format, results)
}

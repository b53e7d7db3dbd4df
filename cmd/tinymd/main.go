// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tinymd CLI, which converts a
// heading-and-paragraph markup file into an HTML file next to it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tinymd/internal/convert"
	"github.com/pdiddy/tinymd/internal/logger"
	"github.com/pdiddy/tinymd/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	exitOK         = 0
	exitFailure    = 1
	exitInvocation = 2
)

// errInvalidInvocation is returned when tinymd is not given exactly one file.
var errInvalidInvocation = errors.New("invalid invocation")

// configKeys maps flag names to their viper keys.
var configKeys = map[string]string{
	"output-dir": "output_dir",
	"report":     "report",
	"quiet":      "quiet",
	"debug":      "debug",
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "tinymd <somefile>.md",
		Short:   description,
		Version: version,
		Long: `tinymd converts a markup file into HTML. Lines starting with '#' become
<h1> headings, other non-empty lines become <p> paragraphs, and blank lines
separate blocks without producing output. The result is written next to the
input with the .md extension replaced by .html.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, "[ ERROR ] Invalid invocation (you done goofed!)")
				printLongBanner(w)
				return errInvalidInvocation
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}
			if cfg.Debug {
				defer logger.Setup(logger.Config{Debug: true, Writer: cmd.ErrOrStderr()})()
				if used := v.ConfigFileUsed(); used != "" {
					logger.L().Debug("config.loaded", "path", used)
				}
			}

			w := cmd.OutOrStdout()
			if !cfg.Quiet {
				printShortBanner(w)
			}

			report, err := convert.ConvertFile(convert.MarkupConverter{}, args[0], cfg, w)
			if cfg.ReportPath != "" {
				if rerr := convert.WriteReport(cfg.ReportPath, []types.Report{report}); rerr != nil {
					return errors.Join(err, rerr)
				}
			}
			return err
		},
	}

	cmd.Flags().String("config", "", "config file (default: ./tinymd.yaml or ~/.config/tinymd/tinymd.yaml)")
	cmd.Flags().String("output-dir", "", "write the .html file into this directory instead of next to the input")
	cmd.Flags().String("report", "", "write a conversion report to this .yaml or .json file")
	cmd.Flags().BoolP("quiet", "q", false, "suppress the banner and informational lines")
	cmd.Flags().Bool("debug", false, "log diagnostics to stderr")

	return cmd
}

// loadConfig merges flags, TINYMD_* environment variables, and the optional
// config file into a ConversionConfig. Flags win over the environment, which
// wins over the file.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (types.ConversionConfig, error) {
	var cfg types.ConversionConfig

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("tinymd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tinymd"))
		}
	}

	v.SetEnvPrefix("TINYMD")
	v.AutomaticEnv()

	for flag, key := range configKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return cfg, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// run executes the CLI with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errInvalidInvocation):
		return exitInvocation
	default:
		fmt.Fprintf(stderr, "[ ERROR ] %v\n", err)
		return exitFailure
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

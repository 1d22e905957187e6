package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calcpad/internal/app"
	"calcpad/internal/config"
	"calcpad/internal/tui"
)

var (
	configPath string
	addr       string
	logLevel   string
	logFile    string
	colorMode  string
	remoteURL  string

	appCtx *app.App
)

func Execute() error {
	return execute(newRoot())
}

// execute runs root and then closes the app, also when a command failed.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if appCtx != nil {
		if cerr := appCtx.Close(); err == nil {
			err = cerr
		}
		appCtx = nil
	}
	return err
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "calcpad",
		Short:        "Pocket calculator for the terminal and the browser",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			a, err := app.Wire(app.Options{
				ConfigPath: configPath,
				RemoteURL:  remoteURL,
				Override: func(c *config.Config) {
					if flags.Changed("addr") {
						c.Addr = addr
					}
					if flags.Changed("log-level") {
						c.LogLevel = logLevel
					}
					if flags.Changed("log-file") {
						c.LogFile = logFile
					}
					if flags.Changed("color") {
						c.Color = colorMode
					}
				},
			})
			if err != nil {
				return err
			}
			appCtx = a
			applyColor(a.Config.Color)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return tui.Run(appCtx.NewCalculator())
			}
			return evalLines(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.calcpad/config.json)")
	pf.StringVar(&addr, "addr", config.DefaultAddr, "listen address for serve")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or none")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&colorMode, "color", config.ColorAuto, "auto, always or never")

	root.AddCommand(evalCmd(), pressCmd(), tuiCmd(), serveCmd(), configCmd())
	return root
}

// evalLines evaluates each non-blank input line.
func evalLines(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(w, colorResult(appCtx.Eval.Evaluate(line)))
	}
	return sc.Err()
}

// termclip: copy to the terminal clipboard over OSC 52.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fwojciec/termclip"
	"github.com/fwojciec/termclip/clipboard"
	"github.com/fwojciec/termclip/lipgloss"
	"github.com/fwojciec/termclip/logging"
	"github.com/fwojciec/termclip/osc52"
	"github.com/fwojciec/termclip/terminal"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

// ErrUnknownBackend is returned for an unrecognised --backend value.
var ErrUnknownBackend = errors.New("unknown backend")

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the termclip command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "termclip",
		Short: "Copy to the terminal clipboard over OSC 52",
		Long: `termclip sets the clipboard of the terminal it runs in by writing
OSC 52 escape sequences, which also works over SSH and inside containers.

Config file search order (first found wins):
  path supplied via --config or TERMCLIP_CONFIG
  $HOME/.config/termclip/termclip.toml

All flags can be set via TERMCLIP_<FLAG> env vars (hyphens become
underscores, e.g. TERMCLIP_LOG_LEVEL) or config-file keys.
Set TERMCLIP_OSC52=1 or 0 to override terminal detection.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCopyCmd(),
		newClearCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)
	return root
}

func newCopyCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "copy [text...]",
		Short:   "Copy arguments or stdin to the clipboard (like pbcopy)",
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			target, err := termclip.ParseSelectionTarget(v.GetString("target"))
			if err != nil {
				return err
			}
			app, err := newApp(v)
			if err != nil {
				return err
			}
			return app.Copy(target, args)
		},
	}
	addCommonFlags(cmd)
	addTargetFlag(cmd)
	return cmd
}

func newClearCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Clear the clipboard",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			target, err := termclip.ParseSelectionTarget(v.GetString("target"))
			if err != nil {
				return err
			}
			app, err := newApp(v)
			if err != nil {
				return err
			}
			return app.Clear(target)
		},
	}
	addCommonFlags(cmd)
	addTargetFlag(cmd)
	return cmd
}

func newCheckCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Report whether clipboard access is available",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp(v)
			if err != nil {
				return err
			}
			return app.Check()
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termclip %s\n", Version)
		},
	}
}

// newApp wires the App from resolved configuration.
func newApp(v *viper.Viper) (*App, error) {
	logger := logging.Setup(
		logging.ParseFormat(v.GetString("log-format")),
		logging.ParseLevel(v.GetString("log-level")),
	)

	out := termenv.NewOutput(os.Stdout)
	transport, err := NewTransport(v.GetString("backend"), out, terminal.NewDetector(out.TTY()), logger)
	if err != nil {
		return nil, err
	}

	theme := lipgloss.DefaultTheme()
	if v.GetString("theme") == "light" {
		theme = lipgloss.LightTheme()
	}

	return &App{
		Clipboard: termclip.NewClipboard(transport),
		Stdin:     os.Stdin,
		Output:    os.Stderr,
		Status:    lipgloss.NewStatusRenderer(nil, theme),
		Logger:    logger,
		Quiet:     v.GetBool("quiet"),
	}, nil
}

// NewTransport selects the transport for backend. OSC 52 sequences are written to w.
func NewTransport(backend string, w io.Writer, detector termclip.Detector, logger *slog.Logger) (termclip.Transport, error) {
	term := osc52.NewTransport(w, detector, osc52.WithLogger(logger))
	native := clipboard.NewNative(clipboard.WithLogger(logger))

	switch backend {
	case "osc52":
		return term, nil
	case "native":
		return native, nil
	case "auto", "":
		return &termclip.Fallback{Primary: term, Secondary: native}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

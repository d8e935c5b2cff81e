package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"peruse/internal/config"
	"peruse/internal/editor"
	"peruse/internal/input"
	"peruse/internal/terminal"
	"peruse/internal/viewer"
)

var (
	// Flag variables
	configFile string
	logFile    string
)

// errorLabel styles the "error:" prefix on fatal stderr output.
var errorLabel = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "peruse [file]",
	Short: "Read-only terminal text viewer",
	Long: `Peruse opens a text file in a full-screen terminal viewport for
read-only navigation. Without a file argument it starts on the welcome
screen. A file that cannot be read is not an error; the session simply
starts empty.

Navigate with the arrow keys, Home/End, and PageUp/PageDown.
Quit with Ctrl-Q.

CONFIGURATION FILE

Peruse can be configured via a TOML file. By default it looks for
config.toml in the peruse directory under the user config directory
(for example ~/.config/peruse). Use --config to specify a different path.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       viewer.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPeruse,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append debug logging to this file (overrides config)")

	if termenv.EnvNoColor() {
		color.NoColor = true
	}
	versionStyle := lipgloss.NewStyle().Bold(true)
	rootCmd.SetVersionTemplate(versionStyle.Render(viewer.Name+" version "+viewer.Version) + "\n")
}

func runPeruse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	view := viewer.NewView()
	view.ShowWelcome = cfg.ShowWelcome
	if len(args) == 1 {
		view.Load(args[0])
	}

	term := terminal.New()
	events := input.NewReader(os.Stdin)
	return editor.New(term, events, view).Run()
}

// setupLogging points the standard logger at the configured file, or
// discards logging when none is configured. The session owns the tty in
// raw mode, so the default stderr logger would corrupt the display.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

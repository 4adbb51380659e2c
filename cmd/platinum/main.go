// Package main implements platinum, a Mac OS 9 style desktop in the terminal.
// Wide terminals get floating windows, a menu bar and a dock; narrow ones a
// paged springboard with full screen app views.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode       bool
	asciiOnly       bool
	themeName       string
	noAnimations    bool
	noMagnification bool
	language        string
	breakpoint      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "platinum",
		Short: "A classic desktop in your terminal",
		Long: `Platinum - a Mac OS 9 style desktop in your terminal

Drag and resize windows, minimize them to the dock, shade them with a
double click on the title bar. Terminals narrower than the breakpoint get
a paged springboard instead.`,
		Example: `  # Run platinum
  platinum

  # Run with a theme and without effects
  platinum --theme dracula --no-animations

  # Force the paged shell on a wide terminal
  platinum --breakpoint 2000

  # Serve over SSH
  platinum ssh --port 2222

  # Print one frame with two windows open
  platinum snapshot --run "open about" --run "open projects"`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the state directory")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of box drawing and symbols")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty for the Platinum grays")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Disable genie, restore, bounce and page effects")
	rootCmd.PersistentFlags().BoolVar(&noMagnification, "no-magnification", false, "Disable dock magnification")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "Language for window titles (en, fr, de, es)")
	rootCmd.PersistentFlags().IntVar(&breakpoint, "breakpoint", 0, "Widest viewport in pixels shown as the paged shell (default: from config or 640)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve platinum over SSH",
		Long: `Serve platinum over SSH

Every connection gets its own desktop sized to the client's terminal. The
host key is generated on first start if it does not exist.`,
		Example: `  # Start on the default port
  platinum ssh

  # Listen on all interfaces
  platinum ssh --host 0.0.0.0 --port 2222

  # Use a specific host key
  platinum ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (default: in the XDG data directory)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage platinum configuration",
		Long:  `Manage the platinum configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the platinum configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration as loaded, with defaults filled in`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the platinum configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Do not ask for confirmation")

	configCmd.AddCommand(configPathCmd, configShowCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect platinum keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Long:  `List built-in themes and custom themes from the themes directory`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listThemes()
		},
	}

	var snapWidth, snapHeight int
	var snapRun []string

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print a single frame and exit",
		Long: `Render one frame of the desktop to stdout and exit

The size defaults to the current terminal. Commands given with --run are
applied in order before rendering; they use the same verbs as the menus:
open, close, minimize, restore, zoom, shade, minimize-all, tile, tidy,
grid and notify.`,
		Example: `  # Current terminal size
  platinum snapshot

  # Paged shell at 60x30
  platinum snapshot --width 60 --height 30

  # Two tiled windows
  platinum snapshot --run "open about" --run "open projects" --run tile`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSnapshot(snapWidth, snapHeight, snapRun)
		},
	}

	snapshotCmd.Flags().IntVar(&snapWidth, "width", 0, "Width in cells (default: terminal width)")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 0, "Height in cells (default: terminal height)")
	snapshotCmd.Flags().StringArrayVar(&snapRun, "run", nil, "Command to apply before rendering (repeatable)")

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd, themesCmd, snapshotCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

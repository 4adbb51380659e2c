package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/command"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/input"
	"github.com/dodorz/platinum/internal/theme"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func showConfig() error {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		return err
	}
	path, _ := config.GetConfigPath()
	data, err := config.MarshalWithHeader(cfg, path)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func resetConfigToDefaults(yes bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if !yes {
		fmt.Printf("This will overwrite %s with the default configuration.\n", path)
		fmt.Print("Continue? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	written, err := config.WriteDefaultConfig()
	if err != nil {
		return err
	}
	fmt.Printf("Configuration reset: %s\n", written)
	return nil
}

func listKeybindings() error {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(cfg.Keybindings)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader())
	keyStyle := lipgloss.NewStyle().Foreground(theme.CLITableKey())
	dimStyle := lipgloss.NewStyle().Foreground(theme.CLITableDim())

	var sb strings.Builder
	for i, section := range config.GetKeybindings(registry) {
		if i > 0 {
			sb.WriteString("\n")
		}
		title := section.Title
		if section.Condition != "" {
			title += dimStyle.Render(" (" + section.Condition + " only)")
		}
		sb.WriteString(headerStyle.Render(title) + "\n")

		width := 0
		for _, b := range section.Bindings {
			width = max(width, lipgloss.Width(b.Key))
		}
		for _, b := range section.Bindings {
			sb.WriteString("  " + keyStyle.Width(width).Render(b.Key) + "  " + b.Description + "\n")
		}
	}

	return writeStyled(sb.String())
}

func listThemes() error {
	current := ""
	if cfg, err := config.LoadUserConfig(); err == nil {
		current = cfg.Appearance.Theme
	}
	for _, name := range theme.Names() {
		if name == current {
			fmt.Println(name, "(current)")
			continue
		}
		fmt.Println(name)
	}
	return nil
}

// runSnapshot renders a single frame after applying the given commands.
func runSnapshot(width, height int, run []string) error {
	userConfig, err := loadConfig()
	if err != nil {
		return err
	}
	config.AnimationsEnabled = false

	if width <= 0 || height <= 0 {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = fallbackWidth, fallbackHeight
		}
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}

	cmds := make([]command.Command, 0, len(run))
	for _, s := range run {
		cmd, err := command.Parse(s)
		if err != nil {
			return fmt.Errorf("--run %q: %w", s, err)
		}
		cmds = append(cmds, cmd)
	}

	app.SetInputHandler(input.HandleInput)
	m := app.New(app.Options{
		Config: userConfig,
		Width:  width,
		Height: height,
	})
	for _, cmd := range cmds {
		m.Run(cmd)
	}

	return writeStyled(lipgloss.Sprint(m.GetCanvas().Render()) + "\n")
}

// writeStyled writes s to stdout, downsampling colors to what the terminal
// supports.
func writeStyled(s string) error {
	w := colorprofile.NewWriter(os.Stdout, os.Environ())
	_, err := w.WriteString(s)
	return err
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	charmlog "github.com/charmbracelet/log"
	"github.com/dodorz/platinum/internal/app"
	"github.com/dodorz/platinum/internal/config"
	"github.com/dodorz/platinum/internal/debuglog"
	"github.com/dodorz/platinum/internal/input"
	"github.com/dodorz/platinum/internal/server"
	"github.com/dodorz/platinum/pkg/platinum"
)

// loadConfig reads the user configuration and applies the global flags.
func loadConfig() (*config.UserConfig, error) {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       asciiOnly,
		NoAnimations:    noAnimations,
		NoMagnification: noMagnification,
		ThemeName:       themeName,
		Language:        language,
		Breakpoint:      breakpoint,
	}, userConfig)

	result := config.ValidateConfig(userConfig)
	for _, w := range result.Warnings {
		log.Printf("Warning: [%s] %s: %s", w.Field, w.Key, w.Message)
	}
	if result.HasErrors() {
		e := result.Errors[0]
		return nil, fmt.Errorf("invalid configuration: [%s] %s: %s (%d errors)", e.Field, e.Key, e.Message, len(result.Errors))
	}

	return userConfig, nil
}

// openDebugLog returns the debug logger, or nil when --debug is off.
func openDebugLog() (*charmlog.Logger, func()) {
	if !debugMode {
		return nil, func() {}
	}
	logger, closeFn, err := debuglog.Open()
	if err != nil {
		log.Printf("Warning: debug log disabled: %v", err)
		return nil, func() {}
	}
	if path, err := debuglog.Path(); err == nil {
		fmt.Println("Debug log:", path)
	}
	return logger, func() {
		if err := closeFn(); err != nil {
			log.Printf("Warning: failed to close debug log: %v", err)
		}
	}
}

func runLocal() error {
	userConfig, err := loadConfig()
	if err != nil {
		return err
	}

	debugLogger, closeDebug := openDebugLog()
	defer closeDebug()

	if debugLogger != nil {
		configPath, _ := config.GetConfigPath()
		debugLogger.Debug("Starting", "version", version, "config", configPath)
	}

	app.SetInputHandler(input.HandleInput)

	opts := app.Options{
		Config: userConfig,
		Debug:  debugLogger,
	}
	if userConfig.WeatherOn() {
		opts.Weather = platinum.NewWeather(userConfig)
	}

	p := tea.NewProgram(
		app.New(opts),
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(app.FilterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	userConfig, err := loadConfig()
	if err != nil {
		return err
	}

	debugLogger, closeDebug := openDebugLog()
	defer closeDebug()

	logger := charmlog.Default()
	if debugLogger != nil {
		logger = debugLogger
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	go func() {
		<-c
		log.Println("Shutting down SSH server...")
		cancel()
	}()

	cfg := &server.SSHServerConfig{
		Host:       sshHost,
		Port:       sshPort,
		KeyPath:    sshKeyPath,
		Version:    version,
		UserConfig: userConfig,
		Logger:     logger,
	}
	// One provider for every session
	if userConfig.WeatherOn() {
		cfg.Weather = platinum.NewWeather(userConfig)
	}

	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

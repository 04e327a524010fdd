package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"resview/internal/bookmarks"
	"resview/internal/config"
	"resview/internal/service"
	"resview/internal/tui"
	"resview/internal/ui"
)

var (
	configFlag string
	dirFlag    string
)

// setup loads the configuration and wires the service.
func setup() (*config.Config, *service.Service, *logrus.Logger, error) {
	var cfg *config.Config
	var err error
	if configFlag != "" {
		cfg, err = config.LoadFile(configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, nil, err
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.BookmarkFile), 0750); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create bookmark directory: %w", err)
	}

	svc := service.New(bookmarks.NewStore(cfg.BookmarkFile, log), log)
	return cfg, svc, log, nil
}

func startDir(cfg *config.Config) string {
	if dirFlag != "" {
		return dirFlag
	}
	return cfg.DefaultDir
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "resview",
		Short: "resview - browse a directory of inference output images",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, log, err := setup()
			if err != nil {
				return err
			}
			ui.CreateApplication(cfgWithDir(cfg), svc, log).Run()
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse in the terminal instead of a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, _, err := setup()
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(svc, startDir(cfg)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	rootCmd.AddCommand(tuiCmd)

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Directory to open at startup")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cfgWithDir applies the --dir override for the GUI, which reads its
// start directory from the config.
func cfgWithDir(cfg *config.Config) *config.Config {
	if dirFlag != "" {
		cfg.DefaultDir = dirFlag
	}
	return cfg
}

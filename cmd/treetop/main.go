package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattgale/treetop/internal/app"
	"github.com/mattgale/treetop/internal/config"
)

var version = "dev"

var debug bool

var rootCmd = &cobra.Command{
	Use:     "treetop [path]",
	Short:   "Browse a directory tree in the terminal",
	Long:    "treetop is a file tree panel with lazy loading, inline create and rename, and mouse support. It opens on the given path, or the current directory.",
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "write debug logs")
}

func run(cmd *cobra.Command, args []string) error {
	workspace, err := resolveWorkspace(args)
	if err != nil {
		return err
	}

	closeLog := setupLogging()
	defer closeLog()

	app.Version = version
	log.WithField("workspace", workspace).Info("starting")

	p := tea.NewProgram(
		app.New(workspace, config.Load()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

func resolveWorkspace(args []string) (string, error) {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// setupLogging sends logs to a state file; the terminal belongs to the UI.
func setupLogging() func() {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	dir := filepath.Join(home, ".local", "state", "treetop")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "treetop.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { f.Close() }
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

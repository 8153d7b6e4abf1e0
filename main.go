package main

import (
	"fmt"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/jask/bmk/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		if err := runCLI(cfg, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runCLI(cfg config.Config, name string, args []string) error {
	if name == "config" {
		return runConfigCommand(cfg, args, os.Stdout)
	}
	st, err := openStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	return runCommand(st, name, args, os.Stdout, func(url string) error {
		return openInBrowser(cfg, url)
	})
}

// runTUI runs the interactive session. The bubbletea program owns raw mode
// and the alternate screen, restoring both on every exit path; the only
// data it hands back is the url of a bookmark opened with enter.
func runTUI(cfg config.Config) error {
	if os.Getenv("BMK_DEBUG") != "" {
		f, err := tea.LogToFile("bmk-debug.log", appName)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	st, err := openStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	p := tea.NewProgram(newModel(st), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	if m.urlToOpen != "" {
		return openInBrowser(cfg, m.urlToOpen)
	}
	return nil
}

// openInBrowser opens url with the configured browser command, falling back
// to the platform default.
func openInBrowser(cfg config.Config, url string) error {
	if cmd := cfg.Browser.Command; cmd != "" {
		return exec.Command(cmd, url).Start()
	}
	return browser.OpenURL(url)
}

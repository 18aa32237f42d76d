package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"versicle/internal/corpus"
	"versicle/internal/ui"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// defaultDataDir returns XDG_DATA_HOME/versicle or ~/.local/share/versicle.
func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "versicle")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "versicle")
}

func main() {
	dataDir := flag.String("d", defaultDataDir(), "Data directory holding verse files")
	showVersion := flag.Bool("v", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Versicle - Terminal Verse Reader\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  versicle [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCorpus files:\n")
		fmt.Fprintf(os.Stderr, "  Place verses_en.txt (or any verses_XX.txt) in the data directory.\n")
		fmt.Fprintf(os.Stderr, "  One verse per line: Reference|Book|Verse text\n")
		fmt.Fprintf(os.Stderr, "  e.g.  John 3:16|John|For God so loved the world...\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  ↑/↓      Move / scroll\n")
		fmt.Fprintf(os.Stderr, "  ←/→      Page / previous-next verse\n")
		fmt.Fprintf(os.Stderr, "  ENTER    Select\n")
		fmt.Fprintf(os.Stderr, "  B        Toggle bookmark\n")
		fmt.Fprintf(os.Stderr, "  /        Type a reference (online lookup)\n")
		fmt.Fprintf(os.Stderr, "  ESC      Back\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("versicle %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	session, err := corpus.OpenSession(*dataDir)
	if err != nil {
		if errors.Is(err, corpus.ErrNoCorpus) {
			fmt.Fprintf(os.Stderr, "Error: No verse files found in %s\n", *dataDir)
			fmt.Fprintln(os.Stderr, "Copy a corpus there first, e.g. verses_en.txt. Try: versicle -h")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	defer session.Close()

	p := tea.NewProgram(ui.NewModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/quill/internal/cmd"
	"github.com/gravitrone/quill/internal/config"
	"github.com/gravitrone/quill/internal/logging"
	"github.com/gravitrone/quill/internal/notes"
	"github.com/gravitrone/quill/internal/ui"
)

type rootFlags struct {
	seeds   []string
	logFile string
	debug   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "quill",
		Short: "quill - a terminal note pad",
		Long:  "quill: jot down, search, and edit short notes for the length of one terminal session.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringArrayVarP(&flags.seeds, "note", "n", nil, "start with this note (repeatable)")
	root.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file (overrides log_file)")
	root.Flags().BoolVar(&flags.debug, "debug", false, "log at debug level")

	root.AddCommand(cmd.VersionCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(flags rootFlags) error {
	cfg, err := cmd.LoadOrDefault()
	if err != nil {
		return err
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store, unsubscribe := newSession(cfg, logger, flags.seeds)
	defer unsubscribe()

	app := ui.NewApp(store, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	logger.Info("session closed", "notes", store.Len())
	return nil
}

// newSession builds the store for one run, seeds it, and hooks the event log.
func newSession(cfg *config.Config, logger *slog.Logger, seeds []string) (*notes.Store, func()) {
	store := notes.New(
		notes.WithIDGenerator(notes.GeneratorFor(cfg.IDScheme)),
		notes.WithLogger(logger),
	)
	unsubscribe := store.Subscribe(func(ev notes.Event) {
		logger.Debug("note event", "kind", ev.Kind.String(), "id", ev.NoteID, "selection_cleared", ev.SelectionCleared)
	})
	for _, text := range seeds {
		if _, ok := store.Add(text); !ok {
			logger.Warn("skipped blank seed note")
		}
	}
	// Seeding selects the last note; start with nothing open.
	store.ClearSelection()
	logger.Info("session started", "notes", store.Len(), "id_scheme", cfg.IDScheme)
	return store, unsubscribe
}

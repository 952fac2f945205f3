package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/playlist-lab/internal/audio"
	"github.com/handiism/playlist-lab/internal/command"
	"github.com/handiism/playlist-lab/internal/config"
	"github.com/handiism/playlist-lab/internal/logging"
	"github.com/handiism/playlist-lab/internal/session"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envFiles   []string
	verbose    bool

	settings *config.Settings
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "playlist-lab",
		Short:         "Play with a linked playlist, undo history, rating tree and k-means recommendations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Name() != "tui")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env", nil, ".env file(s) to load (default ./.env)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every operation to stderr")

	root.AddCommand(
		newReplayCmd(a),
		newImportCmd(a),
		newTagCmd(a),
		newExportCmd(a),
		newSnapshotCmd(a),
		newTUICmd(a),
	)

	return root
}

// setup loads settings and builds the logger. console is false for the
// TUI, which owns the terminal.
func (a *app) setup(console bool) error {
	settings := config.DefaultSettings()
	if a.configPath != "" {
		var err error
		settings, err = config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if err := settings.LoadEnv(a.envFiles...); err != nil {
		return err
	}
	if a.verbose {
		settings.LogLevel = "debug"
	}

	log, err := logging.New(settings.ToLoggingConfig(console && a.verbose))
	if err != nil {
		return err
	}

	a.settings = settings
	a.log = log
	return nil
}

func (a *app) newSession() *session.Session {
	return session.New(
		session.WithLogger(a.log),
		session.WithGenreWeight(a.settings.GenreWeight),
		session.WithDefaultK(a.settings.DefaultK),
	)
}

// load builds a session from MP3 files and an optional script. Script
// output goes to out, which may be io.Discard.
func (a *app) load(ctx context.Context, mp3s []string, script string, out io.Writer) (*session.Session, error) {
	s := a.newSession()

	if len(mp3s) > 0 {
		songs, err := audio.ImportFiles(ctx, mp3s, a.settings.ImportConcurrency)
		if err != nil {
			return nil, fmt.Errorf("importing: %w", err)
		}
		for _, song := range songs {
			s.Add(song)
		}
		a.log.Info("imported songs", zap.Int("count", len(songs)), zap.String("session", s.ID()))
	}

	if script == "" {
		return s, nil
	}

	r, closeFn, err := openScript(script)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if err := command.Replay(s, r, out); err != nil {
		return nil, fmt.Errorf("replaying %s: %w", script, err)
	}
	return s, nil
}

// openScript opens a script file, or stdin for "-".
func openScript(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening script: %w", err)
	}
	return f, func() { f.Close() }, nil
}

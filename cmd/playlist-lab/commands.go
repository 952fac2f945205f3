package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/playlist-lab/internal/audio"
	"github.com/handiism/playlist-lab/internal/command"
	ioutils "github.com/handiism/playlist-lab/internal/io"
	"github.com/handiism/playlist-lab/internal/model"
	"github.com/handiism/playlist-lab/internal/tui"
)

func newReplayCmd(a *app) *cobra.Command {
	var mp3s []string

	cmd := &cobra.Command{
		Use:   "replay <script|->",
		Short: "Run a command script and print each result",
		Long: `Run a command script, one command per line:

  add "Song name" 5 rock
  next | prev
  play <name>
  undo
  search <rating>
  recommend [k]
  show`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.load(cmd.Context(), mp3s, args[0], cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringSliceVar(&mp3s, "mp3", nil, "MP3 files to import before the script")

	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.mp3>...",
		Short: "Read songs from MP3 tags and show the resulting session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(cmd.Context(), args, "", io.Discard)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), command.Show(s))
			fmt.Fprintln(cmd.OutOrStdout(), "Recommendations: "+command.FormatList(s.Recommend(0)))
			return nil
		},
	}
}

func newTagCmd(a *app) *cobra.Command {
	var (
		name   string
		rating int
		genre  string
	)

	cmd := &cobra.Command{
		Use:   "tag <file.mp3>",
		Short: "Write a name, rating and genre into an MP3 file's tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if name == "" {
				base := filepath.Base(path)
				name = base[:len(base)-len(filepath.Ext(base))]
			}
			song := model.NewSong(name, rating, genre)
			if err := audio.NewTagger().SaveTags(path, song); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s: %s, %s\n", path, song, song.Genre)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Song name (default: file name)")
	cmd.Flags().IntVar(&rating, "rating", 1, "Rating")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		mp3s   []string
		format string
		title  string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export [script|-]",
		Short: "Build a session and write its playlist file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.settings.PlaylistFormat
			}
			pf, err := audio.ParseFormat(format)
			if err != nil {
				return err
			}

			s, err := a.load(cmd.Context(), mp3s, firstArg(args), io.Discard)
			if err != nil {
				return err
			}

			if out == "" {
				out = ioutils.SanitizeFileName(title) + pf.Extension()
			}
			content := audio.NewPlaylistCreator(pf, a.settings.M3UExtended).CreatePlaylist(title, s.Songs())
			if err := ioutils.WriteFile(cmd.Context(), out, []byte(content)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d songs to %s\n", len(s.Songs()), out)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&mp3s, "mp3", nil, "MP3 files to import before the script")
	cmd.Flags().StringVar(&format, "format", "", "Playlist format: m3u, pls, wpl, zpl (default from config)")
	cmd.Flags().StringVar(&title, "title", "playlist", "Playlist title")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: <title>.<format>)")

	return cmd
}

func newSnapshotCmd(a *app) *cobra.Command {
	var (
		mp3s []string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "snapshot [script|-]",
		Short: "Build a session and draw its playlist and rating tree as PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(cmd.Context(), mp3s, firstArg(args), io.Discard)
			if err != nil {
				return err
			}

			view := ioutils.SnapshotView{
				Songs:   s.Songs(),
				Current: s.CurrentPosition(),
				Tree:    s.TreeRoot(),
			}
			data, err := ioutils.NewSnapshotService().RenderPNG(cmd.Context(), view,
				a.settings.SnapshotWidth, a.settings.SnapshotHeight)
			if err != nil {
				return err
			}
			if err := ioutils.WriteFile(cmd.Context(), out, data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote snapshot to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&mp3s, "mp3", nil, "MP3 files to import before the script")
	cmd.Flags().StringVarP(&out, "out", "o", "snapshot.png", "Output PNG file")

	return cmd
}

func newTUICmd(a *app) *cobra.Command {
	var mp3s []string

	cmd := &cobra.Command{
		Use:   "tui [script|-]",
		Short: "Start the interactive terminal UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(cmd.Context(), mp3s, firstArg(args), io.Discard)
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}
	cmd.Flags().StringSliceVar(&mp3s, "mp3", nil, "MP3 files to import first")

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

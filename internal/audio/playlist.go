package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/playlist-lab/internal/model"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown playlist format")

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParseFormat converts "m3u", "pls", "wpl" or "zpl" into a PlaylistFormat.
func ParseFormat(name string) (PlaylistFormat, error) {
	switch strings.ToLower(name) {
	case "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	case "wpl":
		return FormatWPL, nil
	case "zpl":
		return FormatZPL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f PlaylistFormat) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// PlaylistCreator renders a session playlist in one of the supported
// formats.
//
// Each entry's location is the song's source path when it was imported
// from a file, or the song name otherwise. Locations are written as
// given, so relative paths stay relative.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist("Evening", session.Songs())
//
//	// Result:
//	// #EXTM3U
//	// #PLAYLIST:Evening
//	// #EXTINF:-1,Come Together
//	// /music/come-together.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Format returns the creator's output format.
func (p *PlaylistCreator) Format() PlaylistFormat {
	return p.format
}

// CreatePlaylist renders songs, in order, under the given title.
func (p *PlaylistCreator) CreatePlaylist(title string, songs []model.Song) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(songs)
	case FormatWPL:
		return p.createWPL(title, songs)
	case FormatZPL:
		return p.createZPL(title, songs)
	default:
		return p.createM3U(title, songs)
	}
}

// location is where a player should look for the song.
func location(song model.Song) string {
	if song.Path != "" {
		return filepath.ToSlash(song.Path)
	}
	return song.Name
}

// createM3U generates an M3U playlist.
//
// Durations are unknown, so extended entries use -1 as M3U allows.
func (p *PlaylistCreator) createM3U(title string, songs []model.Song) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
		if title != "" {
			fmt.Fprintf(&sb, "#PLAYLIST:%s\n", title)
		}
	}

	for _, song := range songs {
		if p.extended {
			fmt.Fprintf(&sb, "#EXTINF:-1,%s\n", song.Name)
		}
		sb.WriteString(location(song) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=song.mp3
//	Title1=Song Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(songs []model.Song) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, song := range songs {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, location(song))
		fmt.Fprintf(&sb, "Title%d=%s\n", idx, song.Name)
		fmt.Fprintf(&sb, "Length%d=-1\n", idx)
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(songs))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (p *PlaylistCreator) createWPL(title string, songs []model.Song) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, song := range songs {
		fmt.Fprintf(&sb, "      <media src=\"%s\"/>\n", escapeXML(location(song)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist with track title,
// genre and rating attributes.
func (p *PlaylistCreator) createZPL(title string, songs []model.Song) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("    <meta name=\"Generator\" content=\"playlist-lab\"/>\n")
	fmt.Fprintf(&sb, "    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(songs))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, song := range songs {
		fmt.Fprintf(&sb, "      <media src=\"%s\" trackTitle=\"%s\" genre=\"%s\" rating=\"%d\"/>\n",
			escapeXML(location(song)),
			escapeXML(song.Name),
			escapeXML(song.Genre),
			song.Rating)
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

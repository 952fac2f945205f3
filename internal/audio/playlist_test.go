package audio

import (
	"errors"
	"strings"
	"testing"

	"github.com/handiism/playlist-lab/internal/model"
)

func createTestSongs() []model.Song {
	return []model.Song{
		model.NewSong("track1", 5, "rock").WithPath("/music/track1.mp3"),
		model.NewSong("track2", 3, "pop"),
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist("Test", createTestSongs())

	want := "/music/track1.mp3\ntrack2\n"
	if content != want {
		t.Errorf("M3U = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist("Test", createTestSongs())

	if !strings.HasPrefix(content, "#EXTM3U\n#PLAYLIST:Test\n") {
		t.Error("Extended M3U should start with #EXTM3U and #PLAYLIST")
	}
	if !strings.Contains(content, "#EXTINF:-1,track1\n") {
		t.Error("Extended M3U should contain #EXTINF for each song")
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist("Test", createTestSongs())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=/music/track1.mp3") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "Title2=track2") {
		t.Error("PLS should contain Title2=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries=2")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatWPL, false)

	content := creator.CreatePlaylist("Test", createTestSongs())

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<title>Test</title>") {
		t.Error("WPL should contain the title")
	}
	if strings.Count(content, "<media src=") != 2 {
		t.Error("WPL should contain one media element per song")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	creator := NewPlaylistCreator(FormatZPL, false)

	content := creator.CreatePlaylist("Test", createTestSongs())

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `genre="rock" rating="5"`) {
		t.Error("ZPL should contain genre and rating attributes")
	}
	if !strings.Contains(content, `<meta name="ItemCount" content="2"/>`) {
		t.Error("ZPL should contain the item count")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	songs := []model.Song{model.NewSong("Track & \"Quote\"", 1, "<Special>")}

	creator := NewPlaylistCreator(FormatZPL, false)
	content := creator.CreatePlaylist("Mix & Match", songs)

	if !strings.Contains(content, "Mix &amp; Match") {
		t.Error("ZPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("ZPL should escape < and >")
	}
	if !strings.Contains(content, "&quot;Quote&quot;") {
		t.Error("ZPL should escape quotes")
	}
}

func TestPlaylistCreator_Empty(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist("", nil)
	if !strings.Contains(content, "NumberOfEntries=0") {
		t.Errorf("empty PLS = %q", content)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want PlaylistFormat
		ext  string
	}{
		{"m3u", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"wpl", FormatWPL, ".wpl"},
		{"zpl", FormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if err != nil || got != tt.want {
				t.Fatalf("ParseFormat(%q) = (%v, %v), want %v", tt.name, got, err, tt.want)
			}
			if got.Extension() != tt.ext {
				t.Errorf("Extension() = %q, want %q", got.Extension(), tt.ext)
			}
		})
	}

	if _, err := ParseFormat("xspf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xspf) error = %v, want ErrUnknownFormat", err)
	}
}

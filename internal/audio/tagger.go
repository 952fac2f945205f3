package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/playlist-lab/internal/model"
)

// RatingDescription is the TXXX frame description holding a song rating,
// the convention used by foobar2000 and Mp3tag.
const RatingDescription = "RATING"

// userDefinedTextID is the ID3v2 frame id for user-defined text.
const userDefinedTextID = "TXXX"

// ReadSong reads a song from an MP3 file's ID3 tags.
//
// The mapping is:
//   - TIT2 (title) → Name, or the file name without extension if empty
//   - TCON (genre) → Genre, or model.UnknownGenre if empty
//   - TXXX:RATING → Rating (see ParseTagRating), 0 if absent
//
// The returned song remembers path as its source.
func ReadSong(path string) (model.Song, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return model.Song{}, fmt.Errorf("read tags %s: %w", path, err)
	}
	defer tag.Close()

	return songFromTag(tag, path), nil
}

// ParseSong is ReadSong for tag data that is not in a file. path is only
// used for the fallback name and the song's source.
func ParseSong(r io.Reader, path string) (model.Song, error) {
	tag, err := id3v2.ParseReader(r, id3v2.Options{Parse: true})
	if err != nil {
		return model.Song{}, fmt.Errorf("parse tags: %w", err)
	}
	return songFromTag(tag, path), nil
}

func songFromTag(tag *id3v2.Tag, path string) model.Song {
	name := strings.TrimSpace(tag.Title())
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	genre := strings.TrimSpace(tag.Genre())

	return model.NewSong(name, ratingFromTag(tag), genre).WithPath(path)
}

func ratingFromTag(tag *id3v2.Tag) int {
	for _, f := range tag.GetFrames(userDefinedTextID) {
		udtf, ok := f.(id3v2.UserDefinedTextFrame)
		if !ok || !strings.EqualFold(udtf.Description, RatingDescription) {
			continue
		}
		return ParseTagRating(udtf.Value)
	}
	return 0
}

// ParseTagRating converts a tag rating into stars.
//
// Values 0-5 are stars already. Values 6-100 are read as a percentage
// and rounded to the nearest star (so 100 → 5, 50 → 3). Larger values
// clamp to 5. Anything unparsable or negative is 0 (unrated).
func ParseTagRating(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	switch {
	case n <= 5:
		return n
	case n <= 100:
		return (n + 10) / 20
	default:
		return 5
	}
}

// ImportFiles reads songs from many MP3 files, at most concurrency at a
// time. Songs come back in the order of paths. The first failure cancels
// the remaining reads and is returned.
func ImportFiles(ctx context.Context, paths []string, concurrency int) ([]model.Song, error) {
	songs := make([]model.Song, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			song, err := ReadSong(path)
			if err != nil {
				return err
			}
			songs[i] = song
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return songs, nil
}

// Tagger writes a song's name, genre and rating into an MP3 file.
//
// Example:
//
//	tagger := NewTagger()
//	err := tagger.SaveTags("/music/come-together.mp3", song)
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// SaveTags writes TIT2, TCON and TXXX:RATING to the file at path,
// creating the file if it does not exist. Other TXXX frames are kept.
func (t *Tagger) SaveTags(path string, song model.Song) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return err
		}
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(song.Name)
	tag.SetGenre(song.Genre)
	t.updateRating(tag, song.Rating)

	return tag.Save()
}

// updateRating replaces the TXXX:RATING frame, keeping the others.
func (t *Tagger) updateRating(tag *id3v2.Tag, rating int) {
	var keep []id3v2.UserDefinedTextFrame
	for _, f := range tag.GetFrames(userDefinedTextID) {
		if udtf, ok := f.(id3v2.UserDefinedTextFrame); ok && !strings.EqualFold(udtf.Description, RatingDescription) {
			keep = append(keep, udtf)
		}
	}

	tag.DeleteFrames(userDefinedTextID)
	for _, udtf := range keep {
		tag.AddUserDefinedTextFrame(udtf)
	}
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: RatingDescription,
		Value:       strconv.Itoa(rating),
	})
}

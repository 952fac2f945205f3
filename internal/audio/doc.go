// Package audio reads songs from MP3 files and writes session playlists
// to playlist files.
//
// # ID3 Import
//
// ReadSong maps ID3 tags to a song; ImportFiles does it for many files
// concurrently:
//
//	songs, err := audio.ImportFiles(ctx, paths, 4)
//	for _, song := range songs {
//	    s.Add(song)
//	}
//
// Ratings are stored in a TXXX frame described as RATING. Tagger writes
// them back:
//
//	err := audio.NewTagger().SaveTags(path, song)
//
// # Playlist Export
//
// Render a playlist in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("Evening", s.Songs())
//	os.WriteFile("evening.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio

// Package ioutils provides file system and image utilities for playlist-lab.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - PNG snapshots of a session's playlist and rating tree
//
// # File Operations
//
//	err := ioutils.WriteFile(ctx, "/path/to/evening.m3u", []byte("#EXTM3U\n"))
//	err = ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Mix: Part 1/2") // Returns "Mix_ Part 1_2"
//
// # Snapshots
//
// SnapshotService draws what the session holds, the way the original
// canvas view did:
//
//	svc := ioutils.NewSnapshotService()
//	data, _ := svc.RenderPNG(ctx, ioutils.SnapshotView{
//	    Songs:   s.Songs(),
//	    Current: s.CurrentPosition(),
//	    Tree:    s.TreeRoot(),
//	}, 600, 300)
package ioutils

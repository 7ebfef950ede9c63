// Package audio plays the audio files of a directory one after another.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions lists the file types Scan picks up when none are given.
var DefaultExtensions = []string{".mp3"}

// ErrNoTracks is returned when a directory holds no playable files.
var ErrNoTracks = errors.New("no audio files found")

// Scan lists the files in dir whose extension matches one of exts
// (case-insensitive), sorted by file name. Subdirectories are not visited.
func Scan(dir string, exts []string) ([]Track, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		want[e] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var tracks []Track
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !want[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		tracks = append(tracks, Track{
			Path: filepath.Join(dir, name),
			Name: name,
		})
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTracks, dir)
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Name < tracks[j].Name
	})
	return tracks, nil
}

package audio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/anuloma/internal/pathutil"
	"github.com/ayoisaiah/anuloma/internal/static"
)

const natureDir = "nature"

// NatureTrack is a looping background recording.
type NatureTrack struct {
	ID   string `yaml:"id"   json:"id"`
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
}

// Asset is the path of the track relative to the assets directory.
func (t NatureTrack) Asset() string {
	return filepath.Join(natureDir, t.File)
}

var supportedExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// NatureTracks returns the bundled tracks followed by any extra recordings
// found in the nature directory of assetsDir, in natural order.
func NatureTracks(assetsDir string) ([]NatureTrack, error) {
	var data struct {
		Tracks []NatureTrack `yaml:"tracks"`
	}

	if err := static.Decode("nature.yaml", &data); err != nil {
		return nil, err
	}

	tracks := data.Tracks

	known := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		known[t.File] = true
	}

	entries, err := os.ReadDir(filepath.Join(assetsDir, natureDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tracks, nil
		}

		return nil, errReadNatureDir.Wrap(err)
	}

	var extra []NatureTrack

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || known[name] {
			continue
		}

		if !slices.Contains(supportedExts, strings.ToLower(filepath.Ext(name))) {
			continue
		}

		id := pathutil.StripExtension(name)

		extra = append(extra, NatureTrack{
			ID:   id,
			Name: id,
			File: name,
		})
	}

	slices.SortFunc(extra, func(a, b NatureTrack) int {
		switch {
		case natural.Less(a.File, b.File):
			return -1
		case natural.Less(b.File, a.File):
			return 1
		}

		return 0
	})

	return append(tracks, extra...), nil
}

func trackIndex(tracks []NatureTrack, id string) int {
	return slices.IndexFunc(tracks, func(t NatureTrack) bool {
		return t.ID == id
	})
}

package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackIDs(tracks []NatureTrack) []string {
	ids := make([]string, 0, len(tracks))
	for _, t := range tracks {
		ids = append(ids, t.ID)
	}

	return ids
}

func TestNatureTracksBundled(t *testing.T) {
	tracks, err := NatureTracks(t.TempDir())
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{"birds-morning", "birds-forest", "birds-river", "rain"},
		trackIDs(tracks),
	)
	assert.Equal(t, filepath.Join("nature", "rain.mp3"), tracks[3].Asset())
}

func TestNatureTracksExtraFiles(t *testing.T) {
	dir := t.TempDir()
	nature := filepath.Join(dir, natureDir)

	require.NoError(t, os.MkdirAll(nature, 0o755))

	for _, name := range []string{
		"stream10.ogg",
		"stream2.ogg",
		"rain.mp3",
		"notes.txt",
		"stream1.FLAC",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(nature, name), nil, 0o600))
	}

	require.NoError(t, os.Mkdir(filepath.Join(nature, "old"), 0o755))

	tracks, err := NatureTracks(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"birds-morning",
		"birds-forest",
		"birds-river",
		"rain",
		"stream1",
		"stream2",
		"stream10",
	}, trackIDs(tracks))
}

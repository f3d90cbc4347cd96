package audio

import "github.com/ayoisaiah/anuloma/internal/apperr"

var (
	errSpeakerInit = &apperr.Error{
		Message: "unable to open the audio device",
	}

	errUnsupportedFormat = &apperr.Error{
		Message: "unsupported sound format %q: use mp3, ogg, flac or wav",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound",
	}

	errReadNatureDir = &apperr.Error{
		Message: "unable to list nature recordings",
	}
)

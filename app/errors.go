package app

import "github.com/ayoisaiah/anuloma/internal/apperr"

var (
	errParsingDate = &apperr.Error{
		Message: "unable to parse date %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end date must not be earlier than the start date",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "unknown period %q",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse the system.cmd option",
	}

	errSettingArgs = &apperr.Error{
		Message: "expected a setting key and a value, for example: sound.voice_volume 60",
	}

	errNoProfile = &apperr.Error{
		Message: "no profile found, run 'anuloma setup' to create one",
	}

	errSetupCancelled = &apperr.Error{
		Message: "profile setup was cancelled",
	}

	errInitPaths = &apperr.Error{
		Message: "unable to resolve the application directories",
	}
)

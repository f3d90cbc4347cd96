package config

import "github.com/ayoisaiah/anuloma/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file failed",
	}

	errParseEnv = &apperr.Error{
		Message: "parsing environment failed",
	}

	errInvalidEnvNumber = &apperr.Error{
		Message: "%s must be a whole number, got %q",
	}

	errUnknownSetting = &apperr.Error{
		Message: "unknown setting: %s",
	}

	errInvalidSettingValue = &apperr.Error{
		Message: "invalid value %q for %s",
	}

	errWatchConfig = &apperr.Error{
		Message: "watching config file failed",
	}
)

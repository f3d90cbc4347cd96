package progress

import "github.com/ayoisaiah/anuloma/internal/apperr"

var (
	errLoadProfile = &apperr.Error{
		Message: "unable to load your profile",
	}

	errSaveProfile = &apperr.Error{
		Message: "unable to save your profile",
	}

	errResetProfile = &apperr.Error{
		Message: "unable to reset your profile",
	}

	errHeroNameRequired = &apperr.Error{
		Message: "a hero name is required",
	}

	errInvalidCharacter = &apperr.Error{
		Message: "character must be male or female, got %q",
	}
)

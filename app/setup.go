package app

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/anuloma/internal/audio"
	"github.com/ayoisaiah/anuloma/internal/models"
)

// setupOptions holds the answers of the profile setup form.
type setupOptions struct {
	HeroName    string
	Character   models.Character
	NatureTrack string
}

func validateHeroName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("the hero name is required")
	}

	return nil
}

// promptSetup asks for the profile details and the preferred nature track.
func promptSetup(tracks []audio.NatureTrack, opts *setupOptions) error {
	trackOptions := make([]huh.Option[string], 0, len(tracks))

	for _, t := range tracks {
		o := huh.NewOption(t.Name, t.ID)
		if t.ID == opts.NatureTrack {
			o = o.Selected(true)
		}

		trackOptions = append(trackOptions, o)
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&opts.HeroName).
				Validate(validateHeroName),
			huh.NewSelect[models.Character]().
				Title("Choose your character").
				Options(
					huh.NewOption("Male", models.Male).Selected(true),
					huh.NewOption("Female", models.Female),
				).
				Value(&opts.Character),
		),
	}

	if len(trackOptions) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Nature sounds to practise with").
				Options(trackOptions...).
				Value(&opts.NatureTrack),
		))
	}

	err := huh.NewForm(groups...).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return errSetupCancelled
	}

	opts.HeroName = strings.TrimSpace(opts.HeroName)

	return err
}

package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/anuloma/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the anuloma app instance.
func Get() *cli.App {
	cli.AppHelpTemplate = helpText()

	anulomaApp := &cli.App{
		Name: "anuloma",
		Usage: `
		Anuloma is a guided Anuloma Viloma (alternate nostril) breathing timer
		for the command-line. Every completed round unlocks the next location
		on your practice path.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "setup",
				Usage:  "Create your practitioner profile",
				Flags:  []cli.Flag{heroNameFlag, characterFlag, yesFlag},
				Action: setupAction,
			},
			{
				Name:   "profile",
				Usage:  "Show your progress and achievements",
				Flags:  []cli.Flag{jsonFlag},
				Action: profileAction,
				Subcommands: []*cli.Command{
					{
						Name:   "reset",
						Usage:  "Delete your profile and practice history",
						Flags:  []cli.Flag{yesFlag},
						Action: resetProfileAction,
					},
				},
			},
			{
				Name:   "map",
				Usage:  "Show the practice path and the locations unlocked so far",
				Action: mapAction,
			},
			{
				Name:   "cycles",
				Usage:  "List the breathing cycles and how long a session takes",
				Action: cyclesAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your practice with statistics reporting. Defaults to a
				reporting period of 7 days`,
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					periodFlag,
					jsonFlag,
					listFlag,
				},
				Action: statsAction,
			},
			{
				Name:  "settings",
				Usage: "View or change your preferences",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print every preference",
						Flags:  []cli.Flag{jsonFlag},
						Action: showSettingsAction,
					},
					{
						Name:      "set",
						Usage:     "Change one preference (e.g. sound.voice_volume 60)",
						ArgsUsage: "<key> <value>",
						Action:    setSettingAction,
					},
					{
						Name:   "reset",
						Usage:  "Restore the default preferences",
						Flags:  []cli.Flag{yesFlag},
						Action: resetSettingsAction,
					},
					{
						Name:   "edit",
						Usage:  "Edit the configuration file",
						Action: editSettingsAction,
					},
				},
				Action: showSettingsAction,
			},
		},
		Flags: []cli.Flag{
			roundsFlag,
			cycleFlag,
			locationFlag,
			voiceFlag,
			noSoundFlag,
			debugFlag,
			noColorFlag,
			dataDirFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return anulomaApp
}

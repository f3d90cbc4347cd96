package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
)

func periodNames() string {
	names := make([]string, len(timeutil.PeriodCollection))
	for i, p := range timeutil.PeriodCollection {
		names[i] = string(p)
	}

	return strings.Join(names, ", ")
}

var (
	roundsFlag = &cli.IntFlag{
		Name:    "rounds",
		Aliases: []string{"r"},
		Usage: fmt.Sprintf(
			"Number of rounds to practise, between 1 and %d (default: %d)",
			breath.MaxRounds,
			breath.DefaultRounds,
		),
	}

	cycleFlag = &cli.IntFlag{
		Name:    "cycle",
		Aliases: []string{"c"},
		Usage: fmt.Sprintf(
			"Index of the breathing cycle in the catalog, between 0 and %d (default: %d). See 'anuloma cycles'",
			len(breath.Catalog)-1,
			breath.DefaultCycleIndex,
		),
	}

	locationFlag = &cli.IntFlag{
		Name:    "location",
		Aliases: []string{"l"},
		Usage:   "Location of the first round, between 1 and 10 (default: 1)",
	}

	voiceFlag = &cli.StringFlag{
		Name:  "voice",
		Usage: "Narration language: ru, en or sa",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable every audio channel for this session",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug output to the log file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	dataDirFlag = &cli.StringFlag{
		Name:  "data-dir",
		Usage: "Keep the config file, database and logs in this directory",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Start of the reporting period (e.g. '2024-03-01' or '2 weeks ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "End of the reporting period (default: now)",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Predefined reporting period: " + periodNames(),
		Value:   string(timeutil.Period7Days),
	}

	listFlag = &cli.BoolFlag{
		Name:  "list",
		Usage: "List the sessions of the period instead of the summary",
	}

	heroNameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Hero name of the new profile (skips the interactive form)",
	}

	characterFlag = &cli.StringFlag{
		Name:  "character",
		Usage: "Character of the new profile: male or female",
		Value: "male",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)

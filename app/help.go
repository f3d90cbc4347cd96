package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("KEYS"),
		keyHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + keys + env
}

func keyHelp() string {
	return `
p, space: pause or resume the session
s, enter: skip the rest between rounds
m: toggle the location ambience
[, ]: previous or next nature track
c: toggle subtitles
q: stop the session`
}

func envHelp() string {
	return `
ANULOMA_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

ANULOMA_USER: practise under this profile instead of $USER.

ANULOMA_ROUNDS, ANULOMA_CYCLE, ANULOMA_LOCATION: override the practice defaults of the config file.

ANULOMA_VOICE_LANGUAGE: narration language (ru, en or sa).

ANULOMA_NO_SOUND, ANULOMA_DEBUG: set to true to mute every channel or to enable debug logging.

ANULOMA_ENV: keep a separate config file, database and log for this environment name.`
}

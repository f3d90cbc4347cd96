package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	ambience   key.Binding
	prevNature key.Binding
	nextNature key.Binding
	subtitles  key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	skip: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "skip rest"),
	),
	ambience: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "ambience"),
	),
	prevNature: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev nature"),
	),
	nextNature: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next nature"),
	),
	subtitles: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "subtitles"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

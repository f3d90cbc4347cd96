// Package i18n registers the phase labels and narration texts with
// golang.org/x/text/message and resolves them for a voice language
package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/static"
)

// Lang is a narration and label language.
type Lang string

const (
	Russian  Lang = "ru"
	English  Lang = "en"
	Sanskrit Lang = "sa"
)

// DefaultLang is used whenever a language is unknown.
const DefaultLang = Russian

type catalogFile struct {
	Messages map[string]string `yaml:"messages"`
	Locale   string            `yaml:"locale"`
}

var (
	cat     *catalog.Builder
	loadErr error
	once    sync.Once
)

// Load parses the embedded catalogs. It is safe to call more than once.
func Load() error {
	once.Do(func() {
		cat = catalog.NewBuilder(catalog.Fallback(language.Russian))
		loadErr = register(cat)
	})

	return loadErr
}

func register(b *catalog.Builder) error {
	files, err := static.Glob("i18n/*.yaml")
	if err != nil {
		return err
	}

	for _, name := range files {
		var f catalogFile

		if err := static.Decode(name, &f); err != nil {
			return err
		}

		tag, err := language.Parse(f.Locale)
		if err != nil {
			return fmt.Errorf("catalog %s: parse locale %q: %w", name, f.Locale, err)
		}

		for key, msg := range f.Messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return fmt.Errorf("catalog %s: %w", name, err)
			}
		}
	}

	return nil
}

// Parse converts s into a supported language, falling back to DefaultLang.
func Parse(s string) Lang {
	switch Lang(s) {
	case Russian, English, Sanskrit:
		return Lang(s)
	default:
		return DefaultLang
	}
}

// Printer returns a printer for lang backed by the embedded catalogs.
func Printer(lang Lang) *message.Printer {
	_ = Load()

	return message.NewPrinter(
		language.Make(string(Parse(string(lang)))),
		message.Catalog(cat),
	)
}

// Text returns the translated text for key, or the key itself when it has no
// translation.
func Text(lang Lang, key string) string {
	return Printer(lang).Sprintf(key)
}

// PhaseLabel is the short display label of a phase.
func PhaseLabel(lang Lang, key breath.Key) string {
	return Text(lang, "phase."+string(key)+".label")
}

// Narration is the sentence spoken when a phase begins.
func Narration(lang Lang, key breath.Key) string {
	return Text(lang, "phase."+string(key)+".voice")
}

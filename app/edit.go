package app

import (
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/osutil"
	"github.com/ayoisaiah/anuloma/internal/ui"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func editor() string {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	return firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)
}

// editConfig opens the config file in the user's default text editor.
func editConfig(path string) error {
	cmd := exec.Command(editor(), path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// setSetting updates one preference and writes the config file.
func setSetting(cfg *config.Config, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return err
	}

	cfg.AppSettings.Clamp()

	return config.SaveSettings(cfg)
}

// resetSettings restores the factory preferences. Practice defaults are kept.
func resetSettings(cfg *config.Config) error {
	cfg.AppSettings.Reset()

	return config.SaveSettings(cfg)
}

// printSettings prints every preference with its current value.
func printSettings(w io.Writer, cfg *config.Config) {
	values := cfg.Settings()

	tableBody := [][]string{
		{"SETTING", "VALUE"},
	}

	for _, k := range config.SettingKeys() {
		tableBody = append(tableBody, []string{k, pterm.Sprint(values[k])})
	}

	ui.PrintTable(tableBody, w)
}

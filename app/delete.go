package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/anuloma/internal/progress"
)

// confirm prints a warning and waits for the user to press ENTER. Typing
// anything other than an empty line or "y" declines.
func confirm(w io.Writer, r io.Reader, msg string) bool {
	warning := pterm.Warning.Sprint(msg + ". Press ENTER to proceed")

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	answer, _ := reader.ReadString('\n')

	switch answer {
	case "", "\n", "\r\n", "y\n", "y\r\n":
		return true
	}

	return false
}

// resetProfile deletes the profile and practice history of the tracked user.
// It requests for confirmation unless skip is set.
func resetProfile(
	tracker *progress.Tracker,
	w io.Writer,
	r io.Reader,
	skip bool,
) error {
	if !tracker.HasProfile() {
		return errNoProfile
	}

	printProfile(w, tracker.Profile())

	if !skip && !confirm(w, r, "The above profile and its practice history will be deleted permanently") {
		return nil
	}

	if err := tracker.Reset(); err != nil {
		return err
	}

	pterm.Success.Println("profile deleted")

	return nil
}

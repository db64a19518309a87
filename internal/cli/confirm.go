package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/charmbracelet/huh"
)

// confirmFunc runs the interactive confirmation. A variable so tests can
// bypass the terminal form.
var confirmFunc = runConfirmForm

// printResolvedConfig shows the configuration a mutating command is about
// to act on, with the credential masked.
func printResolvedConfig(w io.Writer, cfg *domain.Config) {
	_, _ = fmt.Fprintf(w, "GitHub Repository: %s\n", cfg.Slug())
	_, _ = fmt.Fprintf(w, "Tasks File: %s\n", cfg.TasksFile)
	_, _ = fmt.Fprintf(w, "GitHub Token: %s\n\n", cfg.MaskedToken())
}

// confirm prints the resolved configuration and asks the user to proceed.
// skip short-circuits to true for --yes. Declining is not an error; the
// caller cancels with no side effects.
func confirm(w io.Writer, cfg *domain.Config, title string, skip bool) (bool, error) {
	printResolvedConfig(w, cfg)
	if skip {
		return true, nil
	}
	return confirmFunc(title)
}

func runConfirmForm(title string) (bool, error) {
	var proceed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&proceed),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return proceed, nil
}

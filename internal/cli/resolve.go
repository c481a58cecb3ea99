package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveEmployeeID accepts a full ID, an email address or a unique ID prefix.
func resolveEmployeeID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("employee is required (use --employee)")
	}

	employees, err := app.Employees.List(ctx)
	if err != nil {
		return "", err
	}

	for _, e := range employees {
		if e.ID == input || (e.Email != "" && strings.EqualFold(e.Email, input)) {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range employees {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}
	return pickMatch("employee", input, matches)
}

// resolveTaskID accepts a full task ID or a unique prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	return pickMatch("task", input, matches)
}

func pickMatch(kind, input string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

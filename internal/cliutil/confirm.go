// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cliutil

import "github.com/charmbracelet/huh"

// Confirm prompts the user with a yes/no question, defaulting to "no".
// Used by destructive commands (uninstall, cache clear) before a
// --yes flag is honored to skip the prompt outright.
func Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

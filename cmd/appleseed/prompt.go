package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errPromptAborted signals the user cancelled the preset prompt (e.g. Ctrl+C).
var errPromptAborted = errors.New("language selection aborted")

func promptLanguage(names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no language presets available")
	}

	prompt := &survey.Select{
		Message:  "Select a language preset:",
		Options:  names,
		PageSize: 10,
	}
	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errPromptAborted
		}
		return "", err
	}
	return selected, nil
}

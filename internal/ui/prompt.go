package ui

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// askOne allows mocking in tests.
var askOne = survey.AskOne

// AskSystemName prompts for the name identifying this machine in the
// results file.
func AskSystemName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "System name for this machine:",
	}
	if err := askOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("system name must not be empty")
	}
	return name, nil
}

// ConfirmDelete asks before removing all records for a system.
func ConfirmDelete(name string, count int) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Delete %d record(s) for %q?", count, name),
		Default: false,
	}
	if err := askOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

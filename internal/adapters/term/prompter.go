// Package term provides the interactive terminal prompter.
package term

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	terminal "github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter implements ports.Prompter over a survey confirm prompt.
type Prompter struct{}

// New creates a Prompter.
func New() *Prompter {
	return &Prompter{}
}

// Confirm asks a yes/no question, defaulting to no. An interrupted prompt
// counts as a "no" rather than an error.
func (p *Prompter) Confirm(question string) (bool, error) {
	var yes bool
	prompt := &survey.Confirm{
		Message: question,
		Default: false,
	}
	if err := survey.AskOne(prompt, &yes); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return yes, nil
}

package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter abstracts single-value input so the fill flow can be driven by an
// interactive survey prompt on a terminal or by plain line input everywhere
// else (pipes, tests).
type Prompter interface {
	// Input asks for one value. An empty answer yields defaultValue.
	Input(message, defaultValue string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, defaultValue string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

type plainPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func (p *plainPrompter) Input(message, defaultValue string) (string, error) {
	label := message
	if defaultValue != "" {
		label = fmt.Sprintf("%s [%s]", message, defaultValue)
	}
	line, err := GetSimpleText(p.reader, label, p.w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

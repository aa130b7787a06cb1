package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey renders prompts on a terminal.
type Survey struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

var _ Prompter = (*Survey)(nil)

func (s *Survey) ask(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	if s.In != nil && s.Out != nil {
		errOut := s.Err
		if errOut == nil {
			errOut = s.Out
		}
		opts = append(opts, survey.WithStdio(s.In, s.Out, errOut))
	}
	if err := survey.AskOne(p, response, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return ErrCancelled
		}
		return fmt.Errorf("reading answer: %w", err)
	}
	return nil
}

func (s *Survey) ProjectName(defaultName string) (string, error) {
	var name string
	err := s.ask(&survey.Input{Message: projectNameMessage, Default: defaultName}, &name,
		survey.WithValidator(stringValidator(validateProjectName)))
	return name, err
}

func (s *Survey) Overwrite(targetDir string) (OverwriteChoice, error) {
	labels := make([]string, len(overwriteOptions))
	for i, o := range overwriteOptions {
		labels[i] = o.label
	}

	var idx int
	if err := s.ask(&survey.Select{Message: OverwriteMessage(targetDir), Options: labels}, &idx); err != nil {
		return OverwriteCancel, err
	}
	return overwriteOptions[idx].choice, nil
}

func (s *Survey) PackageName(defaultName string) (string, error) {
	var name string
	err := s.ask(&survey.Input{Message: packageNameMessage, Default: defaultName}, &name,
		survey.WithValidator(stringValidator(validatePackageName)))
	return name, err
}

func (s *Survey) Framework(choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no frameworks to choose from")
	}
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}

	var idx int
	if err := s.ask(&survey.Select{Message: frameworkMessage, Options: labels}, &idx); err != nil {
		return "", err
	}
	return choices[idx].Value, nil
}

func (s *Survey) Immediate(agent string) (bool, error) {
	var yes bool
	err := s.ask(&survey.Confirm{Message: ImmediateMessage(agent), Default: false}, &yes)
	return yes, err
}

func stringValidator(check func(string) error) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer type %T", ans)
		}
		return check(s)
	}
}

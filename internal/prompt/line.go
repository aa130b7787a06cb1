package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line asks questions as plain text and numbered menus. It is used when an
// interactive run is forced but the streams are not a terminal.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

var _ Prompter = (*Line)(nil)

// NewLine returns a Line prompter reading answers from r and writing
// questions to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

func (l *Line) ProjectName(defaultName string) (string, error) {
	return l.text(projectNameMessage, defaultName, validateProjectName)
}

func (l *Line) Overwrite(targetDir string) (OverwriteChoice, error) {
	labels := make([]string, len(overwriteOptions))
	for i, o := range overwriteOptions {
		labels[i] = o.label
	}
	idx, err := l.selectFromList(OverwriteMessage(targetDir), labels)
	if err != nil {
		return OverwriteCancel, err
	}
	return overwriteOptions[idx].choice, nil
}

func (l *Line) PackageName(defaultName string) (string, error) {
	return l.text(packageNameMessage, defaultName, validatePackageName)
}

func (l *Line) Framework(choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no frameworks to choose from")
	}
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	idx, err := l.selectFromList(frameworkMessage, labels)
	if err != nil {
		return "", err
	}
	return choices[idx].Value, nil
}

func (l *Line) Immediate(agent string) (bool, error) {
	for {
		fmt.Fprintf(l.w, "%s (y/N) ", ImmediateMessage(agent))
		line, err := l.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "", "n", "no":
			return false, nil
		case "y", "yes":
			return true, nil
		}
		fmt.Fprintln(l.w, "Please answer y or n.")
	}
}

// text asks until validate accepts the answer. An empty answer takes def.
func (l *Line) text(message, def string, validate func(string) error) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(l.w, "%s (%s) ", message, def)
		} else {
			fmt.Fprintf(l.w, "%s ", message)
		}
		answer, err := l.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = def
		}
		if err := validate(answer); err != nil {
			fmt.Fprintln(l.w, err)
			continue
		}
		return answer, nil
	}
}

// selectFromList presents a numbered list and returns the selected index,
// asking again on out-of-range input.
func (l *Line) selectFromList(message string, items []string) (int, error) {
	fmt.Fprintf(l.w, "\n%s\n", message)
	for i, item := range items {
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, item)
	}
	for {
		fmt.Fprintf(l.w, "Enter number [1-%d]: ", len(items))
		line, err := l.readLine()
		if err != nil {
			return 0, err
		}
		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(l.w, "Invalid selection %q: choose 1-%d\n", line, len(items))
	}
}

// readLine returns the trimmed next line. End of input cancels the prompt.
func (l *Line) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

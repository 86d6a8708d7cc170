// Where: cli-rt/internal/infra/interaction/line.go
// What: Line-based prompts for non-terminal input.
// Why: Keep piped and scripted runs working without a TTY.
package interaction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LinePrompter reads one answer per line. A blank answer or end of input
// selects the default.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter prompts on out and reads answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Select(ctx context.Context, title string, options []string, defaultValue string) (string, error) {
	_, _ = fmt.Fprintln(p.out, title)
	for i, opt := range options {
		marker := " "
		if opt == defaultValue {
			marker = "*"
		}
		_, _ = fmt.Fprintf(p.out, " %s %d) %s\n", marker, i+1, opt)
	}
	for {
		answer, err := p.readLine(ctx, fmt.Sprintf("Choose [%s]: ", defaultValue))
		if err != nil {
			return "", fmt.Errorf("prompt select: %w", err)
		}
		if answer == "" {
			return defaultValue, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, opt := range options {
			if strings.EqualFold(opt, answer) {
				return opt, nil
			}
		}
		_, _ = fmt.Fprintf(p.out, "Invalid choice %q.\n", answer)
	}
}

func (p *LinePrompter) Confirm(ctx context.Context, title string, defaultValue bool) (bool, error) {
	hint := "[y/N]"
	if defaultValue {
		hint = "[Y/n]"
	}
	answer, err := p.readLine(ctx, fmt.Sprintf("%s %s: ", title, hint))
	if err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultValue, nil
	}
}

func (p *LinePrompter) Input(ctx context.Context, title, defaultValue string) (string, error) {
	answer, err := p.readLine(ctx, fmt.Sprintf("%s (%s): ", title, defaultValue))
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// readLine treats end of input as a blank answer.
func (p *LinePrompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, _ = fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		_, _ = fmt.Fprintln(p.out)
	}
	return strings.TrimSpace(line), nil
}

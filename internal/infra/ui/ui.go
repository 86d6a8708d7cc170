// Where: cli-rt/internal/infra/ui/ui.go
// What: UserInterface facade over Console.
// Why: Give the command layer a small, fakeable output surface.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Title(text string)
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
	Done()
	Accent(value string) string
	Block(emoji, title string, rows []KeyValue)
}

// New returns a UserInterface writing to out.
func New(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewConsole(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (u consoleUI) Title(text string)          { u.console.Title(text) }
func (u consoleUI) Info(msg string)            { u.console.Info(msg) }
func (u consoleUI) Warn(msg string)            { u.console.Warn(msg) }
func (u consoleUI) Success(msg string)         { u.console.Success(msg) }
func (u consoleUI) Error(msg string)           { u.console.Error(msg) }
func (u consoleUI) Done()                      { u.console.Done() }
func (u consoleUI) Accent(value string) string { return u.console.Accent(value) }

func (u consoleUI) Block(emoji, title string, rows []KeyValue) {
	u.console.BlockStart(emoji, title)
	for _, kv := range rows {
		u.console.Item(kv.Key, kv.Value)
	}
	u.console.BlockEnd()
}

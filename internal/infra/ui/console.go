// Where: cli-rt/internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, badges, and indentation across the scaffold flow.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
	styles       styles
}

type styles struct {
	title      lipgloss.Style
	errorBadge lipgloss.Style
	doneBadge  lipgloss.Style
	accent     lipgloss.Style
}

// NewConsole creates a Console writing to out. Colors follow the
// capabilities of out, so buffers and pipes get plain text.
func NewConsole(out io.Writer, emojiEnabled bool) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		Out:          out,
		EmojiEnabled: emojiEnabled,
		styles: styles{
			title: r.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("6")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("6")).
				Padding(0, 2),
			errorBadge: r.NewStyle().Bold(true).Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")),
			doneBadge:  r.NewStyle().Bold(true).Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0")),
			accent:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		},
	}
}

// Title prints the application banner.
func (c *Console) Title(text string) {
	fmt.Fprintln(c.Out, c.styles.title.Render(text))
}

// Header prints a section header with an emoji.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart starts a logical block of information with an emoji header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Key: Value.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-16s %v\n", key+":", value)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", "[ok] "), msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

// Error prints msg behind an ERROR badge.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.styles.errorBadge.Render("ERROR"), msg)
}

// Done prints the DONE badge.
func (c *Console) Done() {
	fmt.Fprintln(c.Out, c.styles.doneBadge.Render("DONE"))
}

// Accent highlights a value inside a message.
func (c *Console) Accent(value string) string {
	return c.styles.accent.Render(value)
}

func (c *Console) prefix(emoji, fallback string) string {
	if p := c.emojiPrefix(emoji); p != "" {
		return p
	}
	return fallback
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}

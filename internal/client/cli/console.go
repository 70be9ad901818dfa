package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// Console is the Terminal backed by a reader and a writer, normally stdin and
// stdout. Secrets are read without echo when the input is a TTY and as plain
// lines otherwise.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int

	header   lipgloss.Style
	cell     lipgloss.Style
	border   lipgloss.Style
	severity map[Severity]lipgloss.Style
}

// NewConsole builds a Console. Colours are enabled only when out is a colour
// capable terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	r := lipgloss.NewRenderer(out)
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     fd,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(lipgloss.Color("8")),
		severity: map[Severity]lipgloss.Style{
			SeverityInfo:    r.NewStyle(),
			SeverityWarn:    r.NewStyle().Foreground(lipgloss.Color("3")),
			SeverityError:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			SeveritySuccess: r.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}
}

func (c *Console) Prompt(text string) (string, error) {
	return GetSimpleText(c.reader, text, c.out)
}

func (c *Console) PromptRaw(text string) (string, error) {
	return GetLine(c.reader, text, c.out)
}

func (c *Console) PromptSecret(text string) ([]byte, error) {
	if c.fd >= 0 {
		return GetPassword(c.fd, text, c.out)
	}
	return GetPasswordLine(c.reader, text, c.out)
}

func (c *Console) DisplayTable(columns []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(c.border).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.header
			}
			return c.cell
		})
	fmt.Fprintln(c.out, t.Render())
}

func (c *Console) DisplayMessage(text string, sev Severity) {
	fmt.Fprintln(c.out, c.severity[sev].Render(text))
}

package cli

// Severity tells the terminal how a message should be presented.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
	SeveritySuccess
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeveritySuccess:
		return "success"
	default:
		return "info"
	}
}

// Terminal is everything the commands need from the user's console. Commands
// pass data and a Severity; colours and table layout are the implementation's
// business.
type Terminal interface {
	// Prompt shows text and returns one trimmed line.
	Prompt(text string) (string, error)
	// PromptRaw is Prompt that keeps leading whitespace; only the line
	// terminator and trailing blanks are removed.
	PromptRaw(text string) (string, error)
	// PromptSecret reads a line without echo. The caller wipes the result.
	PromptSecret(text string) ([]byte, error)
	DisplayTable(columns []string, rows [][]string)
	DisplayMessage(text string, sev Severity)
}

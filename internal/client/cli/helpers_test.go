package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/storage"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type message struct {
	text string
	sev  Severity
}

// scriptTerm is a Terminal that answers prompts from a queue and records
// everything shown. An empty queue reads as end of input.
type scriptTerm struct {
	answers  []string
	prompts  []string
	messages []message
	tables   [][][]string
}

func (s *scriptTerm) feed(answers ...string) {
	s.answers = append(s.answers, answers...)
}

func (s *scriptTerm) Prompt(text string) (string, error) {
	s.prompts = append(s.prompts, text)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return strings.TrimSpace(a), nil
}

func (s *scriptTerm) PromptRaw(text string) (string, error) {
	s.prompts = append(s.prompts, text)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return strings.TrimRight(a, " \t\r\n"), nil
}

func (s *scriptTerm) PromptSecret(text string) ([]byte, error) {
	s.prompts = append(s.prompts, text)
	if len(s.answers) == 0 {
		return nil, io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return []byte(a), nil
}

func (s *scriptTerm) DisplayTable(columns []string, rows [][]string) {
	s.tables = append(s.tables, rows)
}

func (s *scriptTerm) DisplayMessage(text string, sev Severity) {
	s.messages = append(s.messages, message{text: text, sev: sev})
}

func (s *scriptTerm) lastTable() [][]string {
	if len(s.tables) == 0 {
		return nil
	}
	return s.tables[len(s.tables)-1]
}

func (s *scriptTerm) saw(text string) bool {
	for _, m := range s.messages {
		if strings.Contains(m.text, text) {
			return true
		}
	}
	return false
}

func (s *scriptTerm) lastMessage() message {
	if len(s.messages) == 0 {
		return message{}
	}
	return s.messages[len(s.messages)-1]
}

type testEnv struct {
	cfg   *config.Config
	repos *storage.Repositories
	term  *scriptTerm
	app   *App
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()
	cfg.BcryptCost = bcrypt.MinCost

	repos, err := storage.Open(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	env := &testEnv{cfg: cfg, repos: repos, term: &scriptTerm{}}
	env.app = NewApp(cfg, env.term, repos, logging.Discard())
	return env
}

// restart simulates a new process over the same data directory.
func (e *testEnv) restart() {
	e.term = &scriptTerm{}
	e.app = NewApp(e.cfg, e.term, e.repos, logging.Discard())
}

func (e *testEnv) login(t *testing.T, username, password string) {
	t.Helper()
	ctx := context.Background()
	e.term.feed(username, password)
	require.NoError(t, e.app.Register(ctx))
	e.term.feed(username, password)
	require.NoError(t, e.app.Login(ctx))
}

func (e *testEnv) seed(t *testing.T, username string, titles ...string) []models.Task {
	t.Helper()
	list := make([]models.Task, 0, len(titles))
	for i, title := range titles {
		list = append(list, models.Task{
			Title:       title,
			Description: models.NoDescription,
			CreatedAt:   time.Date(2024, 5, 1+i, 9, 30, 0, 0, time.UTC).Format(models.TimeLayout),
		})
	}
	require.NoError(t, e.repos.Tasks.Save(context.Background(), username, list))
	return list
}

func (e *testEnv) stored(t *testing.T, username string) []models.Task {
	t.Helper()
	list, err := e.repos.Tasks.Load(context.Background(), username)
	require.NoError(t, err)
	return list
}

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	old := nowFn
	nowFn = func() time.Time { return at }
	t.Cleanup(func() { nowFn = old })
}

func titles(list []models.Task) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.Title)
	}
	return out
}

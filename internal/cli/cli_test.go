package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/audit"
	"github.com/networkbook/networkbook/internal/config"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/storage"
)

// cliEnv isolates config and data directories for one test.
type cliEnv struct {
	t      *testing.T
	dir    string
	config string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	env := &cliEnv{t: t, dir: dir, config: filepath.Join(dir, "config.toml")}
	t.Setenv(config.EnvConfig, env.config)
	t.Setenv(config.EnvBook, "")
	t.Setenv(config.EnvBookPath, "")
	t.Setenv(config.EnvStorage, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Cleanup(resetFlags)
	return env
}

func resetFlags() {
	bookName, bookPathFlag, configPath, logLevel = "", "", "", ""
	jsonOutput, noLinks = false, false
	initBackend = ""
	historySince = 0
	if c, _, err := rootCmd.Find([]string{"clear"}); err == nil {
		_ = c.Flags().Set("yes", "false")
	}
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}

func (e *cliEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

// run executes nb with args and returns everything written to stdout.
func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, out)
	return out
}

type listResponse struct {
	OK   bool `json:"ok"`
	Data struct {
		Command  string       `json:"command"`
		Feedback string       `json:"feedback"`
		Persons  []PersonJSON `json:"persons"`
	} `json:"data"`
	Error *ErrorInfo `json:"error"`
}

func decode(t *testing.T, out string) listResponse {
	t.Helper()
	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func TestGeneratedCommandsRoundTrip(t *testing.T) {
	env := newCLIEnv(t)
	book := env.path("book.yaml")

	out := env.mustRun("--book-path", book, "create", "n/Alice", "Pauline", "p/94351253")
	assert.Contains(t, out, "New person added: Alice Pauline")
	env.mustRun("--book-path", book, "create", "n/Benson", "Meier")
	env.mustRun("--book-path", book, "create", "n/Carl", "Kurz", "t/friend")

	out = env.mustRun("--book-path", book, "edit", "2", "n/Alice", "Tan", "e/alice@x.com")
	assert.Contains(t, out, "Edited Person: Alice Tan")

	resp := decode(t, env.mustRun("--json", "--book-path", book, "list"))
	require.True(t, resp.OK)
	assert.Equal(t, "Listed all persons", resp.Data.Feedback)
	require.Len(t, resp.Data.Persons, 3)
	assert.Equal(t, 2, resp.Data.Persons[1].Num)
	assert.Equal(t, "Alice Tan", resp.Data.Persons[1].Name)
	assert.Equal(t, []string{"alice@x.com"}, resp.Data.Persons[1].Emails)
	assert.Equal(t, []string{"friend"}, resp.Data.Persons[2].Tags)
}

func TestRunCommandText(t *testing.T) {
	env := newCLIEnv(t)
	book := env.path("book.yaml")
	env.mustRun("--book-path", book, "run", "create n/Bob g/2025")
	env.mustRun("--book-path", book, "run", "create n/Amy g/AY2324-S1")
	env.mustRun("--book-path", book, "run", "create n/Cid")

	resp := decode(t, env.mustRun("--json", "--book-path", book, "run", "sort by/grad o/desc"))
	require.True(t, resp.OK)
	assert.Equal(t, "sort", resp.Data.Command)
	names := []string{}
	for _, p := range resp.Data.Persons {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Bob", "Amy", "Cid"}, names)
}

func TestJSONErrors(t *testing.T) {
	env := newCLIEnv(t)
	book := env.path("book.yaml")
	env.mustRun("--book-path", book, "create", "n/Alice")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"index out of range", []string{"delete", "5"}, ErrInvalidIndex},
		{"repeated name", []string{"edit", "1", "n/A", "n/B"}, ErrTokenizeFormat},
		{"duplicate person", []string{"create", "n/alice"}, ErrDuplicatePerson},
		{"bad phone", []string{"add", "1", "p/12"}, ErrInvalidFieldFormat},
		{"unknown command", []string{"run", "frobnicate"}, ErrUnknownCommand},
		{"nothing to edit", []string{"edit", "1"}, ErrNothingToEdit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--json", "--book-path", book}, tt.args...)
			out, err := env.run(args...)
			require.ErrorIs(t, err, errSilent)

			resp := decode(t, out)
			assert.False(t, resp.OK)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	env := newCLIEnv(t)
	book := env.path("book.yaml")
	env.mustRun("--book-path", book, "create", "n/Alice")

	prev := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = prev })

	out, err := env.run("--json", "--book-path", book, "clear")
	require.ErrorIs(t, err, errSilent)
	assert.Equal(t, ErrConfirmationNeeded, decode(t, out).Error.Code)

	persons, err := storage.NewYAMLStore(book).Load()
	require.NoError(t, err)
	assert.Len(t, persons, 1)

	out = env.mustRun("--book-path", book, "clear", "--yes")
	assert.Contains(t, out, "Network book has been cleared!")
	persons, err = storage.NewYAMLStore(book).Load()
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestInitRegistersSQLiteBook(t *testing.T) {
	env := newCLIEnv(t)
	dbPath := env.path("work.db")

	out := env.mustRun("--book", "work", "init", dbPath)
	assert.Contains(t, out, "Created book work")

	cfg, err := config.LoadFrom(env.config)
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.Books["work"])
	assert.Equal(t, "work", cfg.DefaultBook)

	env.mustRun("run", "create n/Alice c/CS2103T")
	persons, err := storage.NewSQLiteStore(dbPath).Load()
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, []string{"CS2103T"}, persons[0].Courses.Strings())

	var books struct {
		Data struct {
			Books []bookRow `json:"books"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "books")), &books))
	require.Len(t, books.Data.Books, 1)
	assert.Equal(t, bookRow{Name: "work", Path: dbPath, Backend: "sqlite", Default: true, Current: true}, books.Data.Books[0])
}

func TestHelpThroughRun(t *testing.T) {
	env := newCLIEnv(t)
	out := env.mustRun("--book-path", env.path("book.yaml"), "run", "help", "sort")
	assert.Contains(t, out, "by/none")
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, ErrInvalidIndex, codeFor(errs.New(errs.KindInvalidIndex, "x")))
	assert.Equal(t, ErrStorage, codeFor(errs.Wrap(errs.KindStorage, assert.AnError, "x")))
	assert.Equal(t, ErrInternal, codeFor(assert.AnError))
	assert.Equal(t, "phone", fieldOf(errs.ForField("phone", "bad")))
	assert.NotEmpty(t, suggestionFor(errs.New(errs.KindUnknownCommand, "x")))
}

func TestBookRowsAddsUnconfiguredCurrentBook(t *testing.T) {
	c := &config.Config{Books: map[string]string{"work": "/b/work.yaml"}, DefaultBook: "work"}
	current := config.Book{Name: "personal", Path: "/data/personal.yaml", Backend: storage.BackendYAML}

	rows := bookRows(c, current)
	require.Len(t, rows, 2)
	assert.Equal(t, bookRow{Name: "work", Path: "/b/work.yaml", Backend: "yaml", Default: true}, rows[0])
	assert.Equal(t, bookRow{Name: "personal", Path: "/data/personal.yaml", Backend: "yaml", Current: true}, rows[1])
}

func TestHistoryRecordsChanges(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.config, []byte("[audit]\nenabled = true\n"), 0o644))
	book := env.path("book.yaml")

	env.mustRun("--book-path", book, "create", "n/Alice")
	env.mustRun("--book-path", book, "list")
	env.mustRun("--book-path", book, "run", "edit 1 t/friend")

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Entries []audit.Entry `json:"entries"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "--book-path", book, "history")), &resp))
	require.True(t, resp.OK)
	require.Len(t, resp.Data.Entries, 2, "read-only commands are not recorded")
	assert.Equal(t, "create", resp.Data.Entries[0].Operation)
	assert.Equal(t, "edit 1 t/friend", resp.Data.Entries[1].Input)
	assert.True(t, resp.Data.Entries[1].Saved)
}

func TestHistoryDisabledHint(t *testing.T) {
	env := newCLIEnv(t)
	out := env.mustRun("--book-path", env.path("book.yaml"), "history")
	assert.Contains(t, out, "[audit] enabled = true")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "y\n", want: true},
		{answer: " YES \n", want: true},
		{answer: "n\n", want: false},
		{answer: "\n", want: false},
		{answer: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(bytes.NewBufferString(tt.answer), &out, "Remove everyone?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Remove everyone?")
		})
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/afk552/people/internal/browse"
	"github.com/afk552/people/internal/config"
	"github.com/afk552/people/internal/person"
	"github.com/afk552/people/internal/store"
	"github.com/afk552/people/internal/table"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Color string `help:"Colorize output: auto, always, or never (default from config)." placeholder:"MODE"`
}

// CLI is the top-level command structure for people.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Display DisplayCmd       `cmd:"" help:"Show everyone in the address book."`
	Select  SelectCmd        `cmd:"" help:"Show people born in a given month."`
	Add     AddCmd           `cmd:"" help:"Add a person to the address book."`
	Browse  BrowseCmd        `cmd:"" help:"Browse the address book interactively."`
}

// app bundles the dependencies a command needs once configuration is resolved.
type app struct {
	cfg    *config.Config
	store  *store.FileStore
	out    *table.Renderer
	stdout io.Writer
}

// setupError marks failures that happen before any data file is touched.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/people/config.yaml"),
		".people/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(".env"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp loads configuration, applies global flag overrides, and wires the
// store and renderer to stdout and stderr.
func newApp(g *Globals, stdout, stderr io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, &setupError{err: err}
	}
	return newAppWithConfig(cfg, g, stdout, stderr)
}

// newAppWithConfig wires an app from an already loaded config, enabling testable wiring.
func newAppWithConfig(cfg *config.Config, g *Globals, stdout, stderr io.Writer) (*app, error) {
	if g != nil && g.Color != "" {
		cfg.Display.Color = g.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, &setupError{err: err}
	}
	mode, err := table.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return nil, &setupError{err: err}
	}
	return &app{
		cfg:    cfg,
		store:  store.NewFileStore(stderr),
		out:    table.NewRenderer(stdout, table.Options{Color: mode}),
		stdout: stdout,
	}, nil
}

// file returns arg, or the configured data file when arg is empty.
func (a *app) file(arg string) string {
	if arg != "" {
		return arg
	}
	return a.cfg.Data.File
}

// DisplayCmd prints every person in the data file.
type DisplayCmd struct {
	File string `arg:"" optional:"" help:"JSON data file (default: data.file from config)."`
}

// Run executes the display command.
func (d *DisplayCmd) Run(g *Globals) error {
	a, err := newApp(g, os.Stdout, os.Stderr)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return d.run(a)
}

func (d *DisplayCmd) run(a *app) error {
	people, err := a.store.Load(a.file(d.File))
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return a.out.Render(people)
}

// SelectCmd prints the people born in a given month.
type SelectCmd struct {
	File  string `arg:"" optional:"" help:"JSON data file (default: data.file from config)."`
	Month string `help:"Birth month as a number (3, 03) or a month name (март)." required:""`
}

// Run executes the select command.
func (s *SelectCmd) Run(g *Globals) error {
	a, err := newApp(g, os.Stdout, os.Stderr)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	return s.run(a)
}

func (s *SelectCmd) run(a *app) error {
	people, err := a.store.Load(a.file(s.File))
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}

	selected := person.SelectByMonth(people, s.Month)
	if len(selected) == 0 {
		return a.out.Message(table.SelectEmptyMessage)
	}
	return a.out.Render(selected)
}

// AddCmd appends a person to the data file.
type AddCmd struct {
	File    string `arg:"" optional:"" help:"JSON data file (default: data.file from config)."`
	Name    string `help:"First name." required:""`
	Surname string `help:"Surname." required:""`
	Pnumber string `help:"Phone number."`
	Birth   string `help:"Birth date as dd.mm.yyyy (01.01.2077)." required:""`
}

// Run executes the add command.
func (c *AddCmd) Run(g *Globals) error {
	a, err := newApp(g, os.Stdout, os.Stderr)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return c.run(a)
}

func (c *AddCmd) run(a *app) error {
	// Validate before touching the file so bad input never loads or rewrites it.
	p, err := person.New(person.Input{
		Name:    c.Name,
		Surname: c.Surname,
		Pnumber: c.Pnumber,
		Birth:   c.Birth,
	})
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	path := a.file(c.File)
	people, err := a.store.Load(path)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	people = append(people, p)

	saved, err := a.store.Save(path, people)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if !saved {
		return fmt.Errorf("add: %w", store.ErrNotSaved)
	}

	_, _ = fmt.Fprintf(a.stdout, "Added %s to %s (%d total)\n", p.Name, path, len(people))
	return nil
}

// BrowseCmd opens the interactive address book view.
type BrowseCmd struct {
	File string `arg:"" optional:"" help:"JSON data file (default: data.file from config)."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run loads the data file and launches the browser TUI.
func (b *BrowseCmd) Run(g *Globals) error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		return &setupError{err: errors.New("browse: requires a terminal (TTY)")}
	}

	a, err := newApp(g, os.Stdout, os.Stderr)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	path := a.file(b.File)
	people, err := a.store.Load(path)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	prog := tea.NewProgram(browse.NewModel(path, people), tea.WithAltScreen())
	return b.run(isTTY, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return &setupError{err: errors.New("browse: requires a terminal (TTY)")}
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitData    = 1
	exitUsage   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitUsage
	}
	if errors.Is(err, person.ErrInvalidInput) || errors.Is(err, store.ErrNotSaved) {
		return exitUsage
	}
	return exitData
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("people"),
		kong.Description("Keep an address book of names, phone numbers, and birthdays in a JSON file."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

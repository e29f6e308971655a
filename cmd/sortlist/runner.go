package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/sortlist/internal/board"
	"github.com/idilsaglam/sortlist/internal/config"
	"github.com/idilsaglam/sortlist/internal/model"
	"github.com/idilsaglam/sortlist/internal/shared"
	"github.com/idilsaglam/sortlist/internal/tui"
	"github.com/idilsaglam/sortlist/internal/ui"
)

const defaultConfigPath = "sortlist.toml"

// Runner holds what every command needs once flags and config are resolved.
type Runner struct {
	config *config.Config
	logger *log.Logger
	closer io.Closer
	out    io.Writer
	errOut io.Writer

	// runTUI and termOut are swapped out in tests.
	runTUI  func(ctx context.Context, b *board.Board, opts tui.Options) error
	termOut func(w io.Writer) *termenv.Output
}

// NewRunner creates a Runner writing to out and errOut.
func NewRunner(out, errOut io.Writer) *Runner {
	return &Runner{
		config:  config.Default(),
		logger:  shared.DiscardLogger(),
		out:     out,
		errOut:  errOut,
		runTUI:  tui.Run,
		termOut: newTermOutput,
	}
}

func newTermOutput(w io.Writer) *termenv.Output {
	return termenv.NewOutput(w)
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	return NewRunner(out, errOut).Execute(ctx, args)
}

// Execute runs the command tree and maps errors onto exit codes.
func (r *Runner) Execute(ctx context.Context, args []string) int {
	defer r.close()

	err := r.command().Run(ctx, args)
	if err == nil {
		return 0
	}
	ui.Fail(r.errOut, err.Error())
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

func (r *Runner) command() *cli.Command {
	return &cli.Command{
		Name:      "sortlist",
		Usage:     "Add, reorder and delete categorized items in the terminal",
		Writer:    r.out,
		ErrWriter: r.errOut,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   defaultConfigPath,
			},
		}, runFlags()...),
		Action:   r.RunList,
		Commands: r.register(),

		DisableSliceFlagSeparator: true,
		OnUsageError:              usageError,
		ExitErrHandler:            func(context.Context, *cli.Command, error) {},
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		runCommand, categoriesCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return cli.Exit(err.Error(), 2)
}

// load reads the config and sets up logging. The default config path is
// optional; an explicit --config must exist.
func (r *Runner) load(cmd *cli.Command) error {
	path := cmd.String("config")
	cfg, err := config.Load(path, !cmd.IsSet("config"))
	if err != nil {
		return err
	}
	r.config = cfg
	ui.SetTheme(cfg.UI.Theme)
	return r.setupLogger()
}

func (r *Runner) setupLogger() error {
	if r.config.Log.File == "" {
		return nil
	}
	l, closer, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return err
	}
	lvl, err := shared.ParseLevel(r.config.Log.Level)
	if err != nil {
		_ = closer.Close()
		return err
	}
	l.SetLevel(lvl)
	r.logger = l.With("app", "sortlist")
	r.closer = closer
	return nil
}

func (r *Runner) close() {
	if r.closer != nil {
		_ = r.closer.Close()
		r.closer = nil
	}
}

// RunList starts the interactive list.
func (r *Runner) RunList(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(cmd); err != nil {
		return err
	}
	cfg := r.config
	if theme := cmd.String("theme"); theme != "" {
		cfg.UI.Theme = theme
		if err := cfg.Validate(); err != nil {
			return cli.Exit(err.Error(), 2)
		}
		ui.SetTheme(cfg.UI.Theme)
	}
	if cmd.Bool("no-mouse") {
		cfg.UI.Mouse = false
	}

	b := board.New(board.WithLogger(r.logger))
	for _, spec := range cmd.StringSlice("item") {
		content, cat, err := parseItemSpec(spec)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		if _, err := b.AddItem(content, cat); err != nil {
			return cli.Exit(fmt.Sprintf("--item %q: %v", spec, err), 2)
		}
	}

	theme := ui.Current()
	scope := ui.EnterScope(r.termOut(r.out), theme)
	defer scope.Exit()

	r.logger.Info("session started", "theme", theme.Name, "seeded", b.Len())
	err := r.runTUI(ctx, b, tui.Options{
		Theme:       theme,
		Placeholder: cfg.UI.Placeholder,
		CharLimit:   cfg.UI.CharLimit,
		AltScreen:   cfg.UI.AltScreen,
		Mouse:       cfg.UI.Mouse,
		Logger:      r.logger,
	})
	scope.Exit()
	if err != nil {
		r.logger.Error("session failed", "err", err)
		return err
	}
	r.logger.Info("session ended", "items", b.Len())

	if cmd.Bool("summary") {
		fmt.Fprintln(r.out, summary(theme, b))
	}
	return nil
}

// Categories prints the categories in declaration order.
func (r *Runner) Categories(_ context.Context, _ *cli.Command) error {
	for _, c := range model.Categories() {
		fmt.Fprintln(r.out, c)
	}
	return nil
}

// ConfigInit writes the example configuration.
func (r *Runner) ConfigInit(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := config.Init(path); err != nil {
		return err
	}
	ui.OK(r.out, "wrote "+path)
	return nil
}

// ConfigShow prints the effective configuration.
func (r *Runner) ConfigShow(_ context.Context, cmd *cli.Command) error {
	if err := r.load(cmd); err != nil {
		return err
	}
	return r.config.Write(r.out)
}

// parseItemSpec splits "Category:content". The content is kept as written.
func parseItemSpec(spec string) (string, model.Category, error) {
	name, content, ok := strings.Cut(spec, ":")
	if !ok {
		return "", 0, fmt.Errorf("%w: %q (want Category:content)", shared.ErrInvalidItemSpec, spec)
	}
	cat, err := model.ParseCategory(name)
	if err != nil {
		return "", 0, err
	}
	return content, cat, nil
}

// summary renders the final list with a bar per category.
func summary(t ui.Theme, b *board.Board) string {
	items := b.Items()
	lines := []string{t.Title.Render(fmt.Sprintf("Items (%d)", len(items)))}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, it.Label()))
	}
	lines = append(lines, "")

	counts := b.Counts()
	for _, c := range model.Categories() {
		lines = append(lines, fmt.Sprintf("%-11s %s", c, ui.ProgressBar(counts[c], len(items), 20)))
	}
	return ui.Panel(t, lines)
}

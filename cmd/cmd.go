package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rubiojr/ifexpr/compiler"
	"github.com/rubiojr/ifexpr/config"
)

// errChanges makes check exit with status 1 without an error message.
var errChanges = errors.New("files would change")

// Execute runs the ifexpr CLI with the given version string.
func Execute(version string) {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := a.command(version).Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errChanges) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	color  bool
}

func (a *app) command(version string) *cli.Command {
	return &cli.Command{
		Name:                   "ifexpr",
		Usage:                  "Rewrite If(...).then(...).end() chains into conditional expressions",
		Version:                version,
		UseShortOptionHandling: true,
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Print debug output",
				Sources: cli.EnvVars("IFEXPR_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (default " + config.FileName + " when present)",
			},
			&cli.StringFlag{
				Name:    "macro",
				Aliases: []string{"m"},
				Usage:   "Module specifier the macro is imported from",
				Sources: cli.EnvVars("IFEXPR_MACRO"),
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Before: a.before,
		// Allow `ifexpr file.js` as shorthand for `ifexpr emit file.js`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 && slices.Contains(a.cfg.Extensions, filepath.Ext(cmd.Args().First())) {
				return a.emitAction(ctx, cmd)
			}
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "emit",
				Usage:     "Print the rewritten source of a file",
				ArgsUsage: "<file.js>",
				Action:    a.emitAction,
			},
			{
				Name:      "fix",
				Usage:     "Rewrite files and directories",
				ArgsUsage: "<file | directory>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "Write results back to the source files",
					},
					jobsFlag(),
				},
				Action: a.fixAction,
			},
			{
				Name:      "check",
				Usage:     "Report files that would be rewritten",
				ArgsUsage: "<file | directory>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "diff",
						Aliases: []string{"d"},
						Usage:   "Print a unified diff for each file",
					},
					jobsFlag(),
				},
				Action: a.checkAction,
			},
		},
	}
}

func jobsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "Files processed in parallel (default from config)",
		Sources: cli.EnvVars("IFEXPR_JOBS"),
	}
}

// before sets up logging and loads the configuration. Flags and
// environment variables override the file.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logrus.SetOutput(a.stderr)
	logrus.SetLevel(logrus.ErrorLevel)
	if cmd.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	path, optional := cmd.String("config"), false
	if path == "" {
		path, optional = config.FileName, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return ctx, err
	}
	if m := cmd.String("macro"); m != "" {
		cfg.Macro = m
	}
	a.cfg = cfg
	logrus.WithFields(logrus.Fields{"macro": cfg.Macro, "jobs": cfg.Jobs}).Debug("configuration loaded")

	a.color = false
	if f, ok := a.stdout.(*os.File); ok {
		a.color = term.IsTerminal(int(f.Fd()))
	}
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		a.color = false
	}
	return ctx, nil
}

func (a *app) compiler() *compiler.Compiler {
	return &compiler.Compiler{Macro: a.cfg.Macro, Log: logrus.StandardLogger()}
}

func (a *app) jobs(cmd *cli.Command) int {
	if cmd.IsSet("jobs") {
		return int(cmd.Int("jobs"))
	}
	return a.cfg.Jobs
}

func (a *app) emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: ifexpr emit <file.js>")
	}
	src, err := a.compiler().Emit(cmd.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprint(a.stdout, src)
	return nil
}

// compileTargets collects and compiles the files named on the command line.
// A nil result slice means nothing was compiled.
func (a *app) compileTargets(ctx context.Context, cmd *cli.Command) ([]*compiler.CompileResult, error) {
	if cmd.NArg() < 1 {
		return nil, fmt.Errorf("usage: ifexpr %s <file | directory>...", cmd.Name)
	}
	files, err := compiler.CollectFiles(cmd.Args().Slice(), a.cfg.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files with extensions %s found", strings.Join(a.cfg.Extensions, ", "))
	}
	return a.compiler().CompileFiles(ctx, files, a.jobs(cmd))
}

func (a *app) fixAction(ctx context.Context, cmd *cli.Command) error {
	results, compileErr := a.compileTargets(ctx, cmd)
	if results == nil {
		return compileErr
	}

	var merr *multierror.Error
	if compileErr != nil {
		merr = multierror.Append(merr, compileErr)
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		if !cmd.Bool("write") {
			fmt.Fprint(a.stdout, r.Output)
			continue
		}
		if !r.Changed() {
			continue
		}
		if err := writeFile(r.SourceFile, r.Output); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		fmt.Fprintf(a.stderr, "fixed %s (%d chains)\n", r.SourceFile, r.Chains)
	}
	return merr.ErrorOrNil()
}

func (a *app) checkAction(ctx context.Context, cmd *cli.Command) error {
	results, compileErr := a.compileTargets(ctx, cmd)
	if results == nil {
		return compileErr
	}

	changed := 0
	for _, r := range results {
		if r == nil || !r.Changed() {
			continue
		}
		changed++
		if !cmd.Bool("diff") {
			fmt.Fprintln(a.stdout, r.SourceFile)
			continue
		}
		d, err := unifiedDiff(r.SourceFile, r.Source, r.Output)
		if err != nil {
			return err
		}
		if a.color {
			d = colorize(d)
		}
		fmt.Fprint(a.stdout, d)
	}

	if compileErr != nil {
		return compileErr
	}
	if changed > 0 {
		return errChanges
	}
	return nil
}

// writeFile replaces path's content, keeping its permissions.
func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Where: cli-rt/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable parse → prompt → scaffold dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/cli-rt/cli-rt/internal/domain/project"
	"github.com/cli-rt/cli-rt/internal/domain/template"
	"github.com/cli-rt/cli-rt/internal/infra/config"
	"github.com/cli-rt/cli-rt/internal/infra/installer"
	"github.com/cli-rt/cli-rt/internal/infra/interaction"
	"github.com/cli-rt/cli-rt/internal/infra/logging"
	"github.com/cli-rt/cli-rt/internal/infra/ui"
	"github.com/cli-rt/cli-rt/internal/meta"
	"github.com/cli-rt/cli-rt/internal/version"
)

// Dependencies holds all injected dependencies required for CLI execution.
// Zero values are replaced with production defaults in Run, so tests only
// set what they need.
type Dependencies struct {
	Out    io.Writer
	ErrOut io.Writer

	Prompter  interaction.Prompter
	Installer installer.Installer
	Progress  ui.Progress
	Catalog   *template.Catalog
	Logger    *slog.Logger

	Getwd         func() (string, error)
	Getenv        func(string) string
	TemplatesRoot func(configured string, testMode bool, cwd string) (string, error)
	Now           func() time.Time

	// UserConfigPath locates the user config. It is resolved after .env is
	// loaded; nil disables loading and recording recent projects.
	UserConfigPath func() (string, error)
	EmojiEnabled   bool
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Packages []string `short:"p" sep:"," placeholder:"PKG" help:"Custom dependencies to install (name or name@version)"`
	Template string   `short:"t" help:"Template label or alias (react, styled-components, tailwind, ...)"`
	Firebase bool     `short:"f" help:"Install firebase into the project"`
	Test     bool     `short:"g" help:"Resolve templates from ./templates (test mode)"`
	Name     string   `short:"n" help:"Name of the project directory"`
	Help     bool     `short:"h" help:"Display this help list"`
}

// Options converts parsed flags into CliOptions.
func (c CLI) Options() project.CliOptions {
	return project.CliOptions{
		Packages: append([]string(nil), c.Packages...),
		Template: c.Template,
		Firebase: c.Firebase,
		Test:     c.Test,
		Name:     c.Name,
		Help:     c.Help,
	}
}

// Run is the main entry point for CLI execution. It returns the process
// exit code: 1 on parse errors and fatal scaffold errors, 0 otherwise.
func Run(ctx context.Context, args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out
	console := newUI(out, deps.EmojiEnabled)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(fmt.Sprintf("React template CLI (%s)", version.GetVersion())),
		kong.NoDefaultHelp(),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(console, err)
	}

	kctx, err := parser.Parse(expandPackageArgs(args))
	if err != nil {
		return handleParseError(console, err)
	}

	console.Title(meta.Title)
	if cli.Help {
		if err := kctx.PrintUsage(false); err != nil {
			return exitWithError(console, err)
		}
		return 0
	}

	return runScaffold(ctx, cli.Options(), deps, console)
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	if deps.TemplatesRoot == nil {
		deps.TemplatesRoot = config.ResolveTemplatesRoot
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Progress == nil {
		deps.Progress = ui.LineProgress{Out: deps.Out}
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.NewLinePrompter(os.Stdin, deps.ErrOut)
	}
	return deps
}

// session carries everything resolved before the pipeline starts.
type session struct {
	deps     Dependencies
	ui       ui.UserInterface
	logger   *slog.Logger
	settings   config.Settings
	userCfg    config.UserConfig
	configPath string
	cwd        string
}

func newSession(deps Dependencies, console ui.UserInterface) (*session, error) {
	cwd, err := deps.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	if err := config.LoadDotEnv(cwd); err != nil {
		console.Warn(fmt.Sprintf("failed to load .env: %v", err))
	}

	userCfg := config.DefaultUserConfig()
	configPath := ""
	if deps.UserConfigPath != nil {
		if path, err := deps.UserConfigPath(); err != nil {
			console.Warn(fmt.Sprintf("ignoring user config: %v", err))
		} else {
			configPath = path
		}
	}
	if configPath != "" {
		loaded, err := config.LoadUserConfig(configPath)
		if err != nil {
			console.Warn(fmt.Sprintf("ignoring user config: %v", err))
		} else {
			userCfg = loaded
		}
	}
	settings := config.ResolveSettings(userCfg, deps.Getenv)

	logger := deps.Logger
	if logger == nil {
		logger = logging.New(deps.ErrOut, settings.LogLevel)
	}

	if deps.Installer == nil {
		var manager installer.Manager
		if settings.PackageManager != "" {
			manager, err = installer.ParseManager(settings.PackageManager)
			if err != nil {
				return nil, err
			}
		}
		deps.Installer = installer.NewNodeInstaller(manager, logger)
	}
	if deps.Catalog == nil {
		catalog, err := template.Default()
		if err != nil {
			return nil, err
		}
		deps.Catalog = catalog
	}

	return &session{
		deps:     deps,
		ui:       console,
		logger:   logger,
		settings:   settings,
		userCfg:    userCfg,
		configPath: configPath,
		cwd:        cwd,
	}, nil
}

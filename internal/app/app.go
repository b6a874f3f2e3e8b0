// Package app wires configuration, logging, the API client and the
// controllers together for a single CLI invocation.
package app

import (
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dtnitsch/summarizer/internal/common"
	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/api"
	"github.com/dtnitsch/summarizer/pkg/controller"
	"github.com/dtnitsch/summarizer/pkg/logging"
	"github.com/dtnitsch/summarizer/pkg/storage"
	"github.com/dtnitsch/summarizer/pkg/terminal"
	"github.com/dtnitsch/summarizer/pkg/ui"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitConfig  = 2
)

// GlobalFlags are accepted before any command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML config file",
			Value:   "summarizer.yaml",
			EnvVars: []string{"SUMMARIZER_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "api-url",
			Usage: "backend base URL (default " + models.DefaultAPIURL + ")",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "request timeout (default " + models.DefaultTimeout.String() + ")",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "log debug output",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "also write JSON logs to this file",
		},
	}
}

// App is everything one command needs.
type App struct {
	Config    *models.Config
	Logger    *zap.Logger
	Client    *api.Client
	State     *ui.State
	Bus       *ui.Bus
	Navigator *terminal.Navigator
	Auth      *controller.AuthController
	Summarize *controller.SummarizeController

	// Out receives command results, Err receives dialogs and alerts.
	Out io.Writer
	Err io.Writer

	closeLog func()
}

// New builds the App for the command in c, starting on page start.
// Configuration problems are returned as exit code 2.
func New(c *cli.Context, start models.Page) (*App, error) {
	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, cli.Exit(err.Error(), ExitConfig)
	}

	logger, closeLog := logging.New(logging.Options{
		Quiet:   c.Bool("quiet"),
		Debug:   c.Bool("debug"),
		LogFile: cfg.LogFile,
	})
	logger.Debug("configuration loaded",
		zap.String("api_url", cfg.APIURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("download_dir", cfg.DownloadDir))

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Client:   api.NewClient(cfg.APIURL, api.WithTimeout(cfg.Timeout), api.WithLogger(logger)),
		State:    ui.NewState(start),
		Bus:      ui.NewBus(),
		Out:      c.App.Writer,
		Err:      c.App.ErrWriter,
		closeLog: closeLog,
	}
	a.Navigator = &terminal.Navigator{Out: a.Err, Current: start}

	a.Auth = controller.NewAuthController(a.State, a.Client, terminal.Dialog{Out: a.Err}, a.Navigator, logger)
	a.Summarize = controller.NewSummarizeController(
		a.State,
		a.Client,
		terminal.Alerter{Out: a.Err},
		terminal.Clipboard{},
		&storage.Storage{Dir: cfg.DownloadDir},
		logger,
	)
	if !c.Bool("quiet") {
		a.Summarize.SetRenderer(terminal.StatusRenderer{Out: a.Err})
	}
	controller.Bind(a.Bus, a.Auth, a.Summarize)

	return a, nil
}

// Close flushes the logger.
func (a *App) Close() {
	if a.closeLog != nil {
		a.closeLog()
	}
}

// LoadConfig reads the config file and applies flag overrides on top of it.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("api-url") {
		cfg.APIURL = c.String("api-url")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("download-dir") {
		cfg.DownloadDir = c.String("download-dir")
	}

	apiURL, err := common.ValidateURL(cfg.APIURL)
	if err != nil {
		return nil, &models.ConfigError{Field: "api_url", Message: err.Error()}
	}
	cfg.APIURL = apiURL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResultExit maps a backend result to the command's exit status.
func ResultExit(res models.ApiResult) error {
	if res.Success {
		return nil
	}
	return cli.Exit("", ExitFailure)
}

// Elapsed logs how long a command took.
func (a *App) Elapsed(command string, start time.Time) {
	a.Logger.Debug("command finished", zap.String("command", command), zap.Duration("elapsed", time.Since(start)))
}

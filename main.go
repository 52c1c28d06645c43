package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/app"
	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/config"
	"github.com/llehouerou/prodify/internal/errmsg"
	"github.com/llehouerou/prodify/internal/icons"
	"github.com/llehouerou/prodify/internal/logging"
	"github.com/llehouerou/prodify/internal/media"
	"github.com/llehouerou/prodify/internal/mpris"
	"github.com/llehouerou/prodify/internal/notify"
	"github.com/llehouerou/prodify/internal/playback"
	"github.com/llehouerou/prodify/internal/state"
	"github.com/llehouerou/prodify/internal/stderr"
)

var catalogFile string

var rootCmd = &cobra.Command{
	Use:           "prodify",
	Short:         "Browse the beat catalog and preview tracks from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "",
		"browse a JSON track file instead of the catalog API")
	rootCmd.AddCommand(playCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env holds what every command shares once config and logging are up.
type env struct {
	cfg       *config.Config
	logger    *zap.Logger
	logCloser io.Closer
}

// setup loads the config and builds the logger. extra receives a copy of
// the log output; the TUI passes nil so nothing is written over the screen.
func setup(extra io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)

	lc := cfg.GetLogConfig()
	logger, closer, err := logging.New(logging.Config{
		Level:      lc.Level,
		File:       lc.File,
		MaxSize:    lc.MaxSize,
		MaxBackups: lc.MaxBackups,
		MaxAge:     lc.MaxAge,
		Compress:   *lc.Compress,
	}, extra)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return &env{cfg: cfg, logger: logger, logCloser: closer}, nil
}

func (e *env) close() {
	_ = e.logCloser.Close()
}

// source returns the offline catalog when one is given, the API client otherwise.
func (e *env) source() (catalog.Source, error) {
	path := catalogFile
	if path == "" && e.cfg.HasCatalogFile() {
		path = e.cfg.Catalog
	}
	if path != "" {
		local, err := catalog.LoadLocal(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errmsg.OpCatalogLoad, err)
		}
		e.logger.Info("using offline catalog", zap.String("path", path), zap.Int("tracks", local.Len()))
		return local, nil
	}
	api := e.cfg.GetAPIConfig()
	return catalog.NewClient(api.BaseURL, api.Token, api.Timeout), nil
}

// newController builds the audio element and the controller that owns it.
func (e *env) newController(volume float64) *playback.Controller {
	pc := e.cfg.GetPlayerConfig()
	el := media.NewPlayer(
		media.WithMaxBytes(int64(pc.MaxDownloadMB)<<20),
		media.WithPositionInterval(pc.PositionInterval),
		media.WithPlayerLogger(e.logger.Named("media")),
	)
	return playback.New(el,
		playback.WithLogger(e.logger.Named("playback")),
		playback.WithVolume(volume),
		playback.WithSkipIncrement(pc.SkipIncrement),
	)
}

// savedVolume returns the persisted volume, or the configured default.
func (e *env) savedVolume(stateMgr state.Interface) float64 {
	if stateMgr == nil {
		return e.cfg.DefaultVolume()
	}
	v, err := stateMgr.GetVolume()
	if err != nil {
		e.logger.Warn(string(errmsg.OpVolumeLoad), zap.Error(err))
		return e.cfg.DefaultVolume()
	}
	return v
}

func runTUI() error {
	e, err := setup(nil)
	if err != nil {
		return err
	}
	defer e.close()

	// The TUI owns the terminal; C library output goes to the log.
	if restore, err := stderr.Capture(e.logger.Named("stderr")); err != nil {
		e.logger.Warn("stderr capture unavailable", zap.Error(err))
	} else {
		defer restore()
	}

	src, err := e.source()
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer stateMgr.Close()
	stateMgr.SetDefaultVolume(e.cfg.DefaultVolume())

	ctrl := e.newController(e.savedVolume(stateMgr))
	defer ctrl.Close()

	previews := notify.NewPreviews(notify.New(e.logger))
	defer func() { _ = previews.Dismiss() }()

	adapter, err := mpris.New(ctrl, e.logger.Named("mpris"))
	if err != nil {
		e.logger.Warn("mpris unavailable", zap.Error(err))
	} else {
		defer adapter.Close()
	}

	model := app.New(app.Options{
		Catalog:        src,
		Playback:       ctrl,
		State:          stateMgr,
		Notifier:       previews,
		Logger:         e.logger.Named("app"),
		SearchDebounce: e.cfg.GetSearchDebounce(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

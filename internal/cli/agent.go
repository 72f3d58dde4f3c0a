package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gen2brain/beeep"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.design/x/hotkey/mainthread"

	"github.com/micmute/micmute/internal/config"
	"github.com/micmute/micmute/internal/daemon/hotkey"
	"github.com/micmute/micmute/internal/daemon/hotkey/native"
	"github.com/micmute/micmute/internal/daemon/mic"
	"github.com/micmute/micmute/internal/daemon/popup"
	"github.com/micmute/micmute/internal/daemon/reactor"
	"github.com/micmute/micmute/internal/daemon/throttle"
	"github.com/micmute/micmute/internal/daemon/tray"
	"github.com/micmute/micmute/internal/daemon/watcher"
	"github.com/micmute/micmute/internal/models"
)

const appName = "Mic Mute"

func init() {
	beeep.AppName = appName
}

// alert raises a desktop alert. Tests replace it.
var alert = beeep.Alert

// agent owns everything the event loop needs. It is built and the shortcut
// is bound before any UI shows; start runs once the tray (or main thread)
// is up.
type agent struct {
	opts         options
	settingsPath string
	shortcut     hotkey.Shortcut

	registrar hotkey.Registrar
	runTray   func(onStart, onExit func())

	clock     clockwork.Clock
	store     *mic.Store
	presenter *popup.Presenter
	binder    *hotkey.Binder
	watcher   *watcher.Watcher
	ticker    clockwork.Ticker

	done chan error
}

func runAgent(parent context.Context, o options) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newAgent(ctx, o)
	if err != nil {
		reportStartupFailure(err)
		return err
	}

	if o.noTray {
		log.Info().Msg("Running without menu-bar icon")
		return a.runHeadless(ctx)
	}
	return a.runWithTray(ctx)
}

func newAgent(ctx context.Context, o options) (*agent, error) {
	path, err := config.SettingsFile(o.configPath)
	if err != nil {
		return nil, err
	}

	a := &agent{
		opts:         o,
		settingsPath: path,
		shortcut:     loadShortcut(path),
		registrar:    native.Registrar{},
		runTray:      tray.Run,
		clock:        clockwork.NewRealClock(),
		done:         make(chan error, 1),
	}

	a.store = mic.NewStore(newController(o.dryRun), o.deviceTimeout)
	if _, err := a.store.Sync(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to read microphone state, assuming unmuted")
	}

	monitors, err := resolveMonitors(o.monitor)
	if err != nil {
		return nil, err
	}
	a.presenter = popup.NewPresenter(popup.NewNotifyWindow(monitors), popup.NewPointer(monitors))

	return a, nil
}

// loadShortcut reads the shortcut from the settings file, falling back to
// the default when the file or the shortcut is unusable.
func loadShortcut(path string) hotkey.Shortcut {
	settings, err := config.LoadSettings(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load settings, using default shortcut")
	}

	shortcut, err := hotkey.Parse(settings.Shortcut)
	if err != nil {
		log.Warn().Err(&config.ConfigError{Path: path, Err: err}).Msg("Invalid shortcut, using default")
		return hotkey.MustParse(models.DefaultShortcut)
	}
	return shortcut
}

func newController(dryRun bool) mic.Controller {
	if dryRun {
		log.Info().Msg("Dry run, microphone state is kept in memory")
		return mic.NewMemory(false)
	}
	ctl, err := mic.NewSystemController()
	if err != nil {
		log.Warn().Err(err).Msg("No microphone control available, state is kept in memory")
		return mic.NewMemory(false)
	}
	return ctl
}

func resolveMonitors(fallback string) ([]popup.Monitor, error) {
	if monitors := popup.ProbeMonitors(); len(monitors) > 0 {
		return monitors, nil
	}
	if fallback == "" {
		return []popup.Monitor{popup.DefaultMonitor}, nil
	}
	m, err := popup.ParseGeometry("fallback", fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid --monitor: %w", err)
	}
	return []popup.Monitor{m}, nil
}

// bind registers the configured shortcut. A failure here aborts startup.
func (a *agent) bind() error {
	a.binder = hotkey.NewBinder(a.registrar)
	if err := a.binder.Bind(a.shortcut); err != nil {
		_ = a.binder.Close()
		a.binder = nil
		return err
	}
	return nil
}

// start begins watching the settings file and runs the event loop in the
// background. The result of the loop is sent on a.done.
func (a *agent) start(ctx context.Context, menu <-chan models.MenuEvent, indicator reactor.Indicator) {

	w, err := watcher.New(a.settingsPath)
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		log.Warn().Err(err).Str("path", a.settingsPath).Msg("Failed to watch settings, shortcut changes need a restart")
	} else {
		a.watcher = w
		go a.watchSettings(ctx, indicator != nil)
	}

	a.ticker = a.clock.NewTicker(a.opts.tick)
	r := reactor.New(a.store, a.presenter, throttle.NewWithClock(a.opts.throttle, a.clock), reactor.Config{
		HideDelay: a.opts.hideDelay,
		Clock:     a.clock,
		Indicator: indicator,
	})

	log.Info().
		Str("shortcut", a.shortcut.String()).
		Bool("muted", a.store.Muted()).
		Str("path", a.settingsPath).
		Msg("Agent started")

	go func() {
		a.done <- r.Run(ctx, reactor.Sources{
			Native: a.ticker.Chan(),
			Menu:   menu,
			Hotkey: a.binder.Events(),
		})
	}()
}

func (a *agent) watchSettings(ctx context.Context, withTray bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-a.watcher.Events():
			if !ok {
				return
			}
			a.reloadShortcut(withTray)
		}
	}
}

// reloadShortcut rebinds the shortcut after a settings change. Any failure
// keeps the current binding.
func (a *agent) reloadShortcut(withTray bool) {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring settings change")
		return
	}
	shortcut, err := hotkey.Parse(settings.Shortcut)
	if err != nil {
		log.Warn().Err(err).Str("shortcut", settings.Shortcut).Msg("Ignoring invalid shortcut")
		return
	}
	if err := a.binder.Bind(shortcut); err != nil {
		log.Error().Err(err).Msg("Failed to register new shortcut, keeping the previous one")
		return
	}
	if withTray {
		tray.SetShortcut(shortcut.String())
	}
}

func (a *agent) stop() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.binder != nil {
		if err := a.binder.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to unregister shortcut")
		}
	}
}

// runWithTray runs the tray on the calling goroutine, which must be the
// main one on macOS.
func (a *agent) runWithTray(ctx context.Context) error {
	if err := a.bind(); err != nil {
		reportStartupFailure(err)
		return err
	}

	result := make(chan error, 1)

	onStart := func() {
		tray.SetShortcut(a.shortcut.String())
		a.start(ctx, tray.Events(), tray.Indicator{})
		go func() {
			result <- loopResult(<-a.done)
			tray.Quit()
		}()
	}

	onExit := func() {
		a.stop()
		log.Info().Msg("Agent stopped")
	}

	a.runTray(onStart, onExit)

	select {
	case err := <-result:
		return err
	default:
		return nil
	}
}

// runHeadless runs without a tray. Only a signal stops the agent.
func (a *agent) runHeadless(ctx context.Context) error {
	var runErr error
	mainthread.Init(func() {
		if err := a.bind(); err != nil {
			runErr = err
			reportStartupFailure(err)
			return
		}
		a.start(ctx, nil, nil)
		runErr = loopResult(<-a.done)
		a.stop()
		log.Info().Msg("Agent stopped")
	})
	return runErr
}

// loopResult treats cancellation by signal as a clean exit.
func loopResult(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// reportStartupFailure tells the user why the agent could not start, on
// stderr and as a desktop alert.
func reportStartupFailure(err error) {
	log.Error().Err(err).Msg("Failed to start")
	fmt.Fprintln(os.Stderr, styleError.Render("micmuted: "+err.Error()))

	msg := err.Error()
	var regErr *hotkey.RegistrationError
	if errors.As(err, &regErr) {
		msg = fmt.Sprintf("Could not register the shortcut %s. Choose another one with \"micmuted settings shortcut\".", regErr.Shortcut)
	}
	if alertErr := alert(appName, msg, ""); alertErr != nil {
		log.Debug().Err(alertErr).Msg("Failed to show alert")
	}
}

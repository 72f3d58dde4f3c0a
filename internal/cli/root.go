// Package cli implements the micmuted commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/micmute/micmute/internal/daemon/mic"
	"github.com/micmute/micmute/internal/daemon/reactor"
)

// DefaultTickInterval is the cadence of background ticks into the event loop.
const DefaultTickInterval = 100 * time.Millisecond

type options struct {
	logLevel      string
	configPath    string
	hideDelay     time.Duration
	throttle      time.Duration
	tick          time.Duration
	deviceTimeout time.Duration
	dryRun        bool
	noTray        bool
	monitor       string
}

var opts = options{}

// validate rejects intervals the ticker and timers can't run with.
func (o options) validate() error {
	switch {
	case o.tick <= 0:
		return fmt.Errorf("--tick must be positive, got %s", o.tick)
	case o.throttle < 0:
		return fmt.Errorf("--throttle must not be negative, got %s", o.throttle)
	case o.hideDelay <= 0:
		return fmt.Errorf("--hide-delay must be positive, got %s", o.hideDelay)
	case o.deviceTimeout <= 0:
		return fmt.Errorf("--device-timeout must be positive, got %s", o.deviceTimeout)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "micmuted",
	Short: "Mute the microphone from a global shortcut or the menu bar",
	Long: `micmuted runs in the background and toggles the microphone mute state when the
configured shortcut is pressed or the menu-bar item is selected. A small popup
confirms every change; the microphone is unmuted again when the agent quits.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(opts.logLevel, os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := opts.validate(); err != nil {
			return err
		}
		return runAgent(cmd.Context(), opts)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", zerolog.LevelInfoValue, "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default <user config dir>/mic-mute/settings.yaml)")

	agent := rootCmd.Flags()
	agent.DurationVar(&opts.hideDelay, "hide-delay", reactor.DefaultHideDelay, "How long the unmuted confirmation stays visible")
	agent.DurationVar(&opts.throttle, "throttle", reactor.DefaultThrottleWindow, "Minimum interval between cursor re-detections")
	agent.DurationVar(&opts.tick, "tick", DefaultTickInterval, "Background tick interval")
	agent.DurationVar(&opts.deviceTimeout, "device-timeout", mic.DefaultTimeout, "Timeout for a single device mute call")
	agent.BoolVar(&opts.dryRun, "dry-run", false, "Keep mute state in memory without touching the device")
	agent.BoolVar(&opts.noTray, "no-tray", false, "Run without the menu-bar icon")
	agent.StringVar(&opts.monitor, "monitor", "", "Fallback monitor geometry as WxH+X+Y")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging configures the global logger. Terminals get the console
// writer, anything else gets JSON lines.
func setupLogging(level string, out *os.File) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var w io.Writer = out
	if term.IsTerminal(int(out.Fd())) {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

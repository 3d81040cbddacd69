package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/axiswm/tilecore/internal/logging"
)

var serveInterval time.Duration

// serveCmd runs the long-lived observation loop: a single goroutine owns
// the Core, consuming snapshot triggers off a buffered channel one at a
// time so platform callbacks never reach the core concurrently. A hotkey
// dispatcher would normally feed user commands onto this same channel;
// this loop only drives the tick.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the observation loop against a platform bridge",
	Long: `serve owns a single Core for the process lifetime and ticks its
observation loop (refresh -> filter_for_screen -> reconcile -> repaint ->
focus handoff) at a fixed interval, marshalling every tick onto one
goroutine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		triggers := make(chan struct{}, 8)
		ticker := time.NewTicker(serveInterval)
		defer ticker.Stop()

		go func() {
			for range ticker.C {
				select {
				case triggers <- struct{}{}:
				default:
					// A tick is already pending; skip rather than block.
				}
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		printSuccess("serving (press Ctrl-C to stop)")
		for {
			select {
			case <-triggers:
				if err := c.OnSnapshot(demoDisplay); err != nil {
					logging.Error().Err(err).Msg("tilectl: observation tick failed")
				}
			case <-sigCh:
				printSuccess("stopping")
				return nil
			}
		}
	},
}

func init() {
	serveCmd.Flags().DurationVar(&serveInterval, "interval", 250*time.Millisecond, "observation tick interval")
}

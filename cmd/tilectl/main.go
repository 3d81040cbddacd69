package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/axiswm/tilecore/internal/logging"
)

var (
	socketPath string
	configPath string
	demoMode   bool
	jsonOutput bool
	noColor    bool
	debugMode  bool

	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is tilectl's base command: the CLI surface for the tiling core
// (the command surface, driven here over C9's platform bridge).
var rootCmd = &cobra.Command{
	Use:   "tilectl",
	Short: "tilecore CLI - a tiling window manager core",
	Long: `tilectl drives a tiling window manager core's command surface.

It talks to a platform bridge daemon over a unix socket (see --socket), or,
with --demo, exercises the full command surface against an in-memory sandbox
with no platform daemon required.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		level := zerolog.InfoLevel
		if debugMode {
			level = zerolog.DebugLevel
		}
		logging.SetOutput(os.Stderr, level)
	},
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logging.Fatal().Interface("panic", r).Msg("tilectl: recovered panic")
			printError(fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "platform bridge unix socket path (default: bridge.DefaultSocketPath)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file path (default: ~/.config/tilecore/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "run against an in-memory sandbox instead of a real platform bridge")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output machine-readable JSON where supported")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging to stderr")

	rootCmd.AddCommand(
		treeCmd,
		windowsCmd,
		focusCmd,
		shiftCmd,
		swapCmd,
		swapMarkCmd,
		markCmd,
		floatCmd,
		fullscreenCmd,
		parentCmd,
		detachCmd,
		modeCmd,
		splitAxisCmd,
		configCmd,
		serveCmd,
		demoCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func printError(msg string) {
	errorColor.Fprintln(os.Stderr, "✗ "+msg)
}

func printSuccess(msg string) {
	successColor.Println("✓ " + msg)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

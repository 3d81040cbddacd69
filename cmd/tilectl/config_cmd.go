package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axiswm/tilecore/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cfg)
		}
		keyColor.Print("Gap: ")
		fmt.Println(cfg.Settings.Gap)
		keyColor.Print("Padding (T/L/R/B): ")
		fmt.Printf("%v/%v/%v/%v\n", cfg.Settings.PaddingTop, cfg.Settings.PaddingLeft, cfg.Settings.PaddingRight, cfg.Settings.PaddingBottom)
		keyColor.Print("Default mode: ")
		fmt.Println(cfg.Settings.DefaultMode)
		keyColor.Print("Split axis override: ")
		if cfg.Settings.SplitAxis == "" {
			fmt.Println("(none)")
		} else {
			fmt.Println(cfg.Settings.SplitAxis)
		}
		keyColor.Print("Nav wrap/extend: ")
		fmt.Printf("%v/%v\n", cfg.Settings.NavWrap, cfg.Settings.NavExtend)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a settings file without applying it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := config.LoadConfig(path); err != nil {
			return err
		}
		printSuccess("settings file is valid")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configValidateCmd)
}

// Package main is the entry point for the dungeon command line
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/logging"
)

var (
	configPath string
	cfg        *config.Config
	flushLogs  = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "rpg-dungeon",
	Short: "Roguelike dungeon level engine",
	Long: `rpg-dungeon generates dungeon levels and runs a player through them,
keeping recently visited levels cached and tracking the deepest level reached.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		flush, err := logging.Setup(loaded.Logging)
		if err != nil {
			return err
		}
		cfg, flushLogs = loaded, flush
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLogs()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(crawlCmd)
	rootCmd.AddCommand(scalingCmd)
	rootCmd.AddCommand(repairCmd)
}

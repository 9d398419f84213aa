package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
)

var (
	generateSeed      uint64
	generateAlgorithm string
	generateWidth     int
	generateHeight    int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and print the first level",
	Long:  `Generate the first level of a dungeon, populate it and print it as ASCII with its staircases.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "random seed (0 picks one)")
	generateCmd.Flags().StringVar(&generateAlgorithm, "algorithm", "", "rooms, cave or simple (default from config)")
	generateCmd.Flags().IntVar(&generateWidth, "width", 0, "map width (default from config)")
	generateCmd.Flags().IntVar(&generateHeight, "height", 0, "map height (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c := *cfg
	if generateAlgorithm != "" {
		c.Dungeon.Algorithm = generateAlgorithm
	}
	if generateWidth > 0 {
		c.Dungeon.Width = generateWidth
	}
	if generateHeight > 0 {
		c.Dungeon.Height = generateHeight
	}
	if err := c.Validate(); err != nil {
		return err
	}

	a, err := newApp(ctx, &c, generateSeed)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := a.manager.Start(ctx, &dungeon.StartInput{PlayerID: a.playerID})
	if err != nil {
		return err
	}
	level := out.Level

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "seed %d, %s, %dx%d, %d rooms, %d walkable tiles\n",
		a.seed, level.Algorithm, level.Map.Width(), level.Map.Height(),
		len(level.Rooms), level.Map.WalkableCount())
	return renderLevel(w, level, a.world, a.playerID, false)
}

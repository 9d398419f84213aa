package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/difficulty"
)

var scalingMaxDepth int

var scalingCmd = &cobra.Command{
	Use:   "scaling",
	Short: "Print the difficulty curve",
	Long:  `Print enemy stat multipliers, loot rates and depth in feet for each level.`,
	RunE:  runScaling,
}

func init() {
	scalingCmd.Flags().IntVar(&scalingMaxDepth, "max-depth", 30, "deepest level to print")
}

func runScaling(cmd *cobra.Command, args []string) error {
	if scalingMaxDepth < 1 {
		return fmt.Errorf("max-depth must be at least 1, got %d", scalingMaxDepth)
	}

	scaler, err := difficulty.New(cfg.ScalerConfig())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "depth\tfeet\tmultiplier\thp\tattack\tdefense\tloot%\tequipment%\tmax loot\t")
	for depth := 1; depth <= scalingMaxDepth; depth++ {
		st := scaler.Stats(depth)
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			st.Depth, st.DepthInFeet, st.Multiplier,
			st.ExampleHealth, st.ExampleAttack, st.ExampleDefense,
			st.LootDropRate, st.EquipmentRate, st.MaxLootCount)
	}
	return tw.Flush()
}

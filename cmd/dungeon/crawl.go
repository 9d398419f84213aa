package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
)

var (
	crawlSeed   uint64
	crawlDepths int
	crawlAscend int
	crawlRender bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Run a player down through the dungeon",
	Long: `Start a run, descend the given number of levels, optionally climb back up,
and report each transition along with the level cache and field of view.`,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().Uint64Var(&crawlSeed, "seed", 0, "random seed (0 picks one)")
	crawlCmd.Flags().IntVar(&crawlDepths, "depths", 5, "number of descents to attempt")
	crawlCmd.Flags().IntVar(&crawlAscend, "ascend", 0, "number of ascents after descending")
	crawlCmd.Flags().BoolVar(&crawlRender, "render", false, "print the explored part of the final level")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	if crawlDepths < 0 || crawlAscend < 0 {
		return fmt.Errorf("depths and ascend must not be negative")
	}
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	a, err := newApp(ctx, cfg, crawlSeed)
	if err != nil {
		return err
	}
	defer a.close()

	subscribe(a.bus, w)

	if _, err := a.manager.Start(ctx, &dungeon.StartInput{PlayerID: a.playerID}); err != nil {
		return err
	}
	fmt.Fprintf(w, "seed %d, personal best %d\n", a.seed, a.manager.PersonalBest())
	report(w, a, nil)

	input := &dungeon.TransitionInput{PlayerID: a.playerID}
	for range crawlDepths {
		result, err := a.manager.Descend(ctx, input)
		if err != nil {
			return err
		}
		report(w, a, result)
		if result.Victory {
			break
		}
	}
	for range crawlAscend {
		result, err := a.manager.Ascend(ctx, input)
		if err != nil {
			return err
		}
		report(w, a, result)
		if !result.Success {
			break
		}
	}

	if crawlRender {
		return renderLevel(w, a.manager.CurrentLevel(), a.world, a.playerID, true)
	}
	return nil
}

func subscribe(bus events.EventBus, w io.Writer) {
	bus.SubscribeFunc(dungeon.EventDepthRecord, 0, func(_ context.Context, e events.Event) error {
		if depth, ok := dungeon.DepthOf(e); ok {
			fmt.Fprintf(w, "  new personal best: level %d\n", depth)
		}
		return nil
	})
	bus.SubscribeFunc(dungeon.EventCompleted, 0, func(_ context.Context, e events.Event) error {
		fmt.Fprintln(w, "  the dungeon is conquered")
		return nil
	})
}

func report(w io.Writer, a *app, result *dungeon.TransitionResult) {
	if result != nil {
		fmt.Fprintf(w, "%s [%s]", result.Message, result.Outcome)
		if len(result.Evicted) > 0 {
			fmt.Fprintf(w, " evicted %v", result.Evicted)
		}
		fmt.Fprintln(w)
	}

	depth := a.manager.CurrentDepth()
	level := a.manager.CurrentLevel()
	visible, err := a.manager.Observe(a.playerID)
	if err != nil {
		fmt.Fprintf(w, "  observe failed: %v\n", err)
		return
	}

	enemies, items := 0, 0
	for _, e := range a.world.NonPlayer() {
		switch {
		case e.Components.Enemy != nil:
			enemies++
		case e.Components.Item != nil:
			items++
		}
	}

	fmt.Fprintf(w, "  level %d, %s, %d enemies, %d items, %d visible, %d explored, cached %v\n",
		depth, a.scaler.DepthDisplay(depth), enemies, items,
		len(visible), level.Explored.Count(), a.manager.CachedDepths())
}

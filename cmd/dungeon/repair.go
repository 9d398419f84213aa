package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/progress"
)

var repairDelete bool

var repairCmd = &cobra.Command{
	Use:   "repair-progress",
	Short: "Find and optionally delete corrupted progress records",
	Long: `Scan the progress records stored in Redis and list the ones that cannot be
loaded or hold impossible values. Pass --delete to remove them.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairDelete, "delete", false, "delete the corrupted records")
}

func runRepair(cmd *cobra.Command, args []string) error {
	if cfg.Redis.Addr == "" {
		return fmt.Errorf("redis address is not configured")
	}

	client, err := redis.NewClient(cfg.Redis.Addr, cfg.RedisOptions())
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx := cmd.Context()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	out, err := progress.Audit(ctx, &progress.AuditInput{Client: client, Delete: repairDelete})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "checked %d records, found %d corrupted\n", out.Checked, len(out.Findings))
	for _, f := range out.Findings {
		fmt.Fprintf(w, "  %s: %s\n", f.Key, f.Problem)
	}
	if repairDelete {
		fmt.Fprintf(w, "deleted %d records\n", out.Deleted)
	}
	return nil
}

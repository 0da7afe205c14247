package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"malkedit/utils"
	"malkedit/watch"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the save directory and summarize saves as the game writes them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots := make(chan *watch.Snapshot)
			watcher := watch.New_watcher(cfg.Dir, cfg.Pattern, logger)

			err := watcher.Start_watching(snapshots)
			if err != nil {
				return err
			}
			defer watcher.Stop_watching()

			fmt.Println("Watching...", cfg.Dir)
			fmt.Println()

			// Wait forever!  CTRL-C is the way out.
			for snap := range snapshots {
				fmt.Println(snap.Filename, "-", utils.Timestamp_string(&snap.Fields))
				for _, line := range dump_fields(&snap.Fields)[2:] {
					fmt.Println("   " + line)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

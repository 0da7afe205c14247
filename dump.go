package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"malkedit/progress"
	"malkedit/tables"
	"malkedit/types"
	"malkedit/utils"
)

func init() {
	rootCmd.AddCommand(newDumpCmd(), newFieldsCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "List everything in the stash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := retrieve()
			if err != nil {
				return err
			}
			fmt.Println(s.Filename)
			for _, line := range dump_fields(&s.Fields) {
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Describe every editable field",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i := range tables.Fields {
				f := &tables.Fields[i]
				fmt.Printf("%-20s %v-%v\n", f.Name, f.Min, f.Max)
				fmt.Println("   " + f.Desc)
			}
		},
	}
}

// dump_fields lays out a save the way the old GUI did: timestamp, counters, levels, then the card grid
func dump_fields(sf *types.SaveFields) []string {
	out := []string{
		"Timestamp: " + utils.Timestamp_string(sf),
		"",
		fmt.Sprintf("Gags: %v", sf.Gags),
		"Coins: " + utils.Coins_string(sf.Coins),
		"",
		fmt.Sprintf("Last level played: %v", sf.Last_level_played),
		fmt.Sprintf("Last mission selected: %v", sf.Last_mission),
		fmt.Sprintf("Last level unlocked: %v", sf.Last_level_unlocked),
		"",
		"Collector cards",
		"      1234567",
	}
	for l, mask := range sf.Cards {
		out = append(out, fmt.Sprintf("   L%v %v", l+1, utils.Card_string(mask)))
	}

	out = append(out, "")
	report := progress.Summarize(sf)
	out = append(out, report.Lines()...)

	return out
}

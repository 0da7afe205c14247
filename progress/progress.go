package progress

import (
	"fmt"

	"malkedit/tables"
	"malkedit/types"
	"malkedit/utils"
)

type Milestone struct {
	Id   string
	Name string
	Expl string
	Test func(sf *types.SaveFields) bool
}

// all_cards makes a "collect every card on level n" milestone
func all_cards(level int) Milestone {
	return Milestone{
		fmt.Sprintf("MID_CARDS_L%v", level+1),
		fmt.Sprintf("Level %v scrap book", level+1),
		fmt.Sprintf("Collect all %v cards on level %v", types.CARDS_PER_LEVEL, level+1),
		func(sf *types.SaveFields) bool {
			return utils.Count_cards(sf.Cards[level]) == types.CARDS_PER_LEVEL
		},
	}
}

// Milestone ids are shown to users and may be grepped for; don't rename them.
var Milestone_list = func() []Milestone {
	out := []Milestone{
		{"MID_ALL_GAGS", "Gag reel", "Find every gag", func(sf *types.SaveFields) bool {
			return sf.Gags >= tables.By_id(types.FIELD_GAGS).Max
		}},
		{"MID_ALL_LEVELS", "All the way", "Unlock the last level", func(sf *types.SaveFields) bool {
			return sf.Last_level_unlocked >= tables.By_id(types.FIELD_LAST_LEVEL_UNLOCKED).Max
		}},
		{"MID_COIN_MILLION", "Millionaire", "Hold a million coins", func(sf *types.SaveFields) bool {
			return sf.Coins >= 1000000
		}},
		{"MID_COIN_MAX", "Wallet full", "Hold as many coins as the game allows", func(sf *types.SaveFields) bool {
			return sf.Coins >= tables.By_id(types.FIELD_COINS).Max
		}},
	}
	for l := range types.LEVELS {
		out = append(out, all_cards(l))
	}
	return out
}()

type Report struct {
	Gags      int
	Max_gags  int
	Cards     [types.LEVELS]int
	Card_sum  int
	Max_cards int
	Unlocked  int
	Levels    int

	// last level played is beyond last level unlocked
	Hint_violated bool

	Reached []Milestone
	Missing []Milestone
}

func Summarize(sf *types.SaveFields) Report {
	r := Report{
		Gags:          sf.Gags,
		Max_gags:      tables.By_id(types.FIELD_GAGS).Max,
		Max_cards:     types.LEVELS * types.CARDS_PER_LEVEL,
		Unlocked:      sf.Last_level_unlocked,
		Levels:        types.LEVELS,
		Hint_violated: sf.Level_hint_violated(),
	}
	for l := range types.LEVELS {
		r.Cards[l] = utils.Count_cards(sf.Cards[l])
		r.Card_sum += r.Cards[l]
	}

	for _, m := range Milestone_list {
		if m.Test(sf) {
			r.Reached = append(r.Reached, m)
		} else {
			r.Missing = append(r.Missing, m)
		}
	}

	return r
}

// Lines renders the report for a terminal.
func (r *Report) Lines() []string {
	out := []string{
		fmt.Sprintf("Gags: %v/%v", r.Gags, r.Max_gags),
		fmt.Sprintf("Cards: %v/%v", r.Card_sum, r.Max_cards),
	}
	for l, c := range r.Cards {
		out = append(out, fmt.Sprintf("   L%v: %v/%v", l+1, c, types.CARDS_PER_LEVEL))
	}
	out = append(out, fmt.Sprintf("Levels unlocked: %v/%v", r.Unlocked, r.Levels))
	if r.Hint_violated {
		out = append(out, "Warning: last level played is beyond last level unlocked")
	}

	out = append(out, fmt.Sprintf("Milestones (%v/%v):", len(r.Reached), len(r.Reached)+len(r.Missing)))
	for _, m := range r.Reached {
		out = append(out, "   "+m.Name+" ("+m.Expl+")")
	}
	return out
}

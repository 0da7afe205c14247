package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"malkedit/types"
)

// Card_string renders a card mask as the scrap book shows it: card 1 (bit 0) first, '1' for unlocked.
// e.g. 5 -> "1010000"
func Card_string(mask int) string {
	out := ""
	for bit := range types.CARDS_PER_LEVEL {
		if mask&(1<<bit) != 0 {
			out += "1"
		} else {
			out += "0"
		}
	}
	return out
}

// Parse_cards is the reverse of Card_string.
func Parse_cards(str string) (int, error) {
	if len(str) != types.CARDS_PER_LEVEL {
		return 0, fmt.Errorf("card string %q should have exactly %v characters", str, types.CARDS_PER_LEVEL)
	}
	mask := 0
	for bit, c := range str {
		switch c {
		case '1':
			mask |= 1 << bit
		case '0':
		default:
			return 0, errors.New("card strings may only contain 0 and 1, got " + string(c))
		}
	}
	return mask, nil
}

// Count_cards counts unlocked cards in a mask.  Only the low 7 bits count.
func Count_cards(mask int) int {
	return strings.Count(Card_string(mask), "1")
}

// Timestamp_string formats the save timestamp as YYYY-MM-DD HH:MM:SS.
// No calendar checks, so 2004-13-99 is quite possible.
func Timestamp_string(sf *types.SaveFields) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", sf.Year, sf.Month, sf.Day, sf.Hour, sf.Minute, sf.Second)
}

var printer = message.NewPrinter(language.English)

// Coins_string formats a coin count with thousands separators.
func Coins_string(coins int) string {
	return printer.Sprintf("%d", coins)
}

package main

// save file editor for The Simpsons: Hit & Run
//
// example usage:
//
// malkedit load SaveGame1
// malkedit get coins
// malkedit set coins 9999999
// malkedit set cards_l1 1010000
// malkedit set last_level_unlocked 7
// malkedit dump
// malkedit save

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"malkedit/codec"
	"malkedit/types"
	"malkedit/utils"
)

// Evil global variables
var g_stash_filename = "malkedit.tmp"

var (
	// Global flags
	dir_flag    string
	config_flag string
	verbose     bool

	cfg    utils.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "malkedit",
	Short: "Inspect and edit Simpsons: Hit & Run save files",
	Long: `malkedit reads a save file into a temporary stash, lets you get and set
gags, coins, level progress and collector cards, and writes the result back
without touching any byte it does not understand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dir_flag, "dir", "", "Save file directory (overrides malkedit.ini)")
	rootCmd.PersistentFlags().StringVar(&config_flag, "config", utils.CONFIG_FILENAME, "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log what the codec is doing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() error {
	var err error
	cfg, err = utils.Load_config(config_flag)
	if err != nil {
		return fmt.Errorf("failed to read %v: %w", config_flag, err)
	}
	if dir_flag != "" {
		cfg.Dir = dir_flag
	}

	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	codec.SetLogger(logger)
	logger.Debug("config", zap.String("dir", cfg.Dir), zap.String("pattern", cfg.Pattern), zap.Bool("backup", cfg.Backup))

	return nil
}

// full_filename puts relative names in the save dir
func full_filename(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}

// stash is everything that has to survive between invocations: the file's name, its original bytes,
// and the (possibly edited) fields.  The raw bytes are the base that save patches fields into.
type stash struct {
	Filename string
	Raw      []byte
	Fields   types.SaveFields
}

func write_stash(s *stash) error {
	f, err := os.Create(g_stash_filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	encoder := gob.NewEncoder(w)
	err = encoder.Encode(s)
	if err != nil {
		return err
	}
	err = w.Flush()
	if err != nil {
		return err
	}

	return f.Sync()
}

// retrieve fails with types.ErrNoBufferLoaded if nothing has been loaded
func retrieve() (*stash, error) {
	f, err := os.Open(g_stash_filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (use \"load\" first)", types.ErrNoBufferLoaded)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := stash{}
	err = gob.NewDecoder(bufio.NewReader(f)).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("stash %v is unreadable: %w", g_stash_filename, err)
	}

	return &s, nil
}

// smash smashes "funny characters" in a string into the '_' character.
// Field names are lower case, so input is folded to lower case first: "Cards-L1" smashes to "cards_l1".
func smash(in string) string {
	return strings.Map(func(c rune) rune {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return c
		}
		return '_'
	}, strings.ToLower(in))
}

// string matching functions, in strictly increasing order of desperation.
// The candidates are always layout table field names; there is no exact-case rung because smash folds case
// and a name that fails every rung gets a levenshtein suggestion from fuzzy_lookup instead.
var fuzzy = []func(input string, candidate string) bool{
	func(i string, c string) bool { return i == c },
	func(i string, c string) bool { return smash(i) == smash(c) },
	func(i string, c string) bool { return strings.HasPrefix(smash(c), smash(i)) },
	func(i string, c string) bool { return strings.Contains(smash(c), smash(i)) },
}

// fuzzy_lookup finds the one candidate that matches input at the earliest level of desperation.
// If nothing matches, the error suggests the closest candidate by edit distance.
func fuzzy_lookup(candidates []string, input string, what string) (string, error) {
	for _, match := range fuzzy {
		matches := []string{}
		for _, c := range candidates {
			if match(input, c) {
				matches = append(matches, c)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			return "", fmt.Errorf("ambiguous %v: %v could be anything from {%v}", what, input, strings.Join(matches, ", "))
		}

		return matches[0], nil
	}

	msg := fmt.Sprintf("%v is not a valid %v", input, what)
	if best := closest(candidates, input); best != "" {
		msg += fmt.Sprintf(" (did you mean %v?)", best)
	}
	return "", errors.New(msg)
}

func closest(candidates []string, input string) string {
	best, best_dist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(input), c)
		if best_dist < 0 || d < best_dist {
			best, best_dist = c, d
		}
	}
	// Anything further than this is not a typo
	if best_dist > max(2, len(input)/2) {
		return ""
	}
	return best
}

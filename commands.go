package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"malkedit/codec"
	"malkedit/tables"
	"malkedit/types"
	"malkedit/utils"
)

func init() {
	rootCmd.AddCommand(newLoadCmd(), newGetCmd(), newSetCmd(), newSaveCmd())
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load a save file into the stash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(full_filename(args[0]))
			if err != nil {
				return err
			}
			fmt.Println("Imported", s.Filename)
			return write_stash(s)
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <field>",
		Short: "Display a field from the stash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := retrieve()
			if err != nil {
				return err
			}
			str, err := get(args[0], &s.Fields)
			if err != nil {
				return err
			}
			fmt.Println(str)
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change a field in the stash",
		Long: `Change a field in the stash.  Nothing is written to the save file until "save".

Card fields take either a number (0-127) or the scrap book notation, card 1 first:
  malkedit set cards_l3 1111000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := retrieve()
			if err != nil {
				return err
			}
			name, value, err := set(args[0], args[1], &s.Fields)
			if err != nil {
				return err
			}
			fmt.Println(name, "set to", value)
			if s.Fields.Level_hint_violated() {
				fmt.Println("Warning: last level played is beyond last level unlocked; the game may not like that")
			}
			return write_stash(s)
		},
	}
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file]",
		Short: "Write the stash back to the loaded file (or to another file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := retrieve()
			if err != nil {
				return err
			}
			filename := s.Filename
			if len(args) == 1 {
				filename = full_filename(args[0])
			}

			err = save(s, filename, cfg.Backup)
			if err != nil {
				return err
			}
			fmt.Println("New file written to", filename)

			err = os.Remove(g_stash_filename)
			if err != nil {
				return err
			}
			fmt.Println("Temporary data cleaned up")
			return nil
		},
	}
}

func load(filename string) (*stash, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	fields, err := codec.New_session().Decode(bytes)
	if err != nil {
		return nil, fmt.Errorf("import of %v failed: %w", filename, err)
	}
	return &stash{filename, bytes, fields}, nil
}

// save patches the stashed fields into the stashed original bytes and writes them to filename.
// An existing file is renamed to *.old first if backup is set.
func save(s *stash, filename string, backup bool) error {
	session := codec.New_session()
	_, err := session.Decode(s.Raw)
	if err != nil {
		return fmt.Errorf("stashed save data is no longer valid: %w", err)
	}
	out, err := session.Encode(s.Fields)
	if err != nil {
		return err
	}

	if backup {
		if _, err := os.Stat(filename); err == nil {
			newname := filename + ".old"
			err = os.Rename(filename, newname)
			if err != nil {
				return err
			}
			fmt.Println(filename, "renamed to", newname)
		}
	}

	err = os.WriteFile(filename, out, 0644)
	if err != nil {
		return err
	}
	logger.Debug("save written", zap.String("file", filename), zap.Int("len", len(out)))

	return nil
}

// format_value renders a field value for humans
func format_value(f *tables.Field, v int) string {
	switch {
	case f.Id >= types.FIELD_CARDS_L1 && f.Id <= types.FIELD_CARDS_L7:
		return fmt.Sprintf("%v (%v)", utils.Card_string(v), v)
	case f.Id == types.FIELD_COINS:
		return utils.Coins_string(v)
	}
	return strconv.Itoa(v)
}

// parse_value turns user input into a field value.  Out of range values are an error here:
// the codec would clamp them, but a user typing one has probably made a mistake.
func parse_value(f *tables.Field, str string) (int, error) {
	is_card := f.Id >= types.FIELD_CARDS_L1 && f.Id <= types.FIELD_CARDS_L7
	if is_card && len(str) == types.CARDS_PER_LEVEL && strings.Trim(str, "01") == "" {
		return utils.Parse_cards(str)
	}

	v, err := strconv.Atoi(strings.ReplaceAll(str, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("%v expects a number: %w", f.Name, err)
	}
	if v < f.Min || v > f.Max {
		return 0, fmt.Errorf("%v must be between %v and %v (got %v)", f.Name, f.Min, f.Max, v)
	}
	return v, nil
}

func lookup_field(what string) (*tables.Field, error) {
	name, err := fuzzy_lookup(tables.Names(), what, "field")
	if err != nil {
		return nil, err
	}
	f := tables.By_name(name)
	if f == nil {
		return nil, errors.New("internal malkedit error: matched field " + name + " is not in the table")
	}
	return f, nil
}

// get gets something and returns it as a human-readable string
func get(what string, fields *types.SaveFields) (string, error) {
	f, err := lookup_field(what)
	if err != nil {
		return "", err
	}
	return format_value(f, *fields.Value(f.Id)), nil
}

// set sets something.  Returns the matched field name and the value as it will be shown by get.
func set(what string, to string, fields *types.SaveFields) (string, string, error) {
	f, err := lookup_field(what)
	if err != nil {
		return "", "", err
	}
	v, err := parse_value(f, to)
	if err != nil {
		return "", "", err
	}
	*fields.Value(f.Id) = v
	return f.Name, format_value(f, v), nil
}

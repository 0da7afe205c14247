package utils

import (
	"os"

	"gopkg.in/ini.v1"
)

const CONFIG_FILENAME = "malkedit.ini"

// Config comes from the default section of malkedit.ini:
//
//	dir = C:\Users\me\Documents\My Games\The Simpsons Hit & Run
//	pattern = SaveGame*
//	backup = true
type Config struct {
	Dir     string
	Pattern string
	Backup  bool
}

func Default_config() Config {
	wd, _ := os.Getwd()
	return Config{Dir: wd, Pattern: "SaveGame*", Backup: true}
}

// Load_config reads filename over the defaults.  A missing file is not an error; a broken one is.
func Load_config(filename string) (Config, error) {
	cfg := Default_config()

	// Loose: a missing file just means defaults
	data, err := ini.LoadSources(ini.LoadOptions{Loose: true}, filename)
	if err != nil {
		return cfg, err
	}

	// Classic read of values, default section can be represented as empty string
	sec := data.Section("")
	if dir := sec.Key("dir").String(); dir != "" {
		cfg.Dir = dir
	}
	if pattern := sec.Key("pattern").String(); pattern != "" {
		cfg.Pattern = pattern
	}
	if sec.HasKey("backup") {
		backup, err := sec.Key("backup").Bool()
		if err != nil {
			return cfg, err
		}
		cfg.Backup = backup
	}

	return cfg, nil
}

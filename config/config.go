package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/deadrun/constant"
)

// FileName is the settings file searched for in the config directory
const FileName = "deadrun.cfg.json"

// Settings holds the resolved game options after defaults and file values
type Settings struct {
	Difficulty    string
	PopulationCap int
	GodMode       bool
	AudioEnabled  bool
	Seed          uint64
	LogFile       string
	LogLevel      string
	ScorePath     string
}

// Load reads configuration from the JSON file in configDir and sets
// default values. A missing file runs on defaults; a malformed one is a
// startup error.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("difficulty", "moderate")
	viper.SetDefault("populationCap", constant.DefaultPopulationCap)
	viper.SetDefault("godMode", false)

	viper.SetDefault("audio.enabled", true)

	viper.SetDefault("log.file", "deadrun.log")
	viper.SetDefault("log.level", "info")

	viper.SetDefault("scoreboard.path", "deadrun_scores.db")

	// Seed 0 means a fresh road every run
	viper.SetDefault("seed", 0)

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// GetSettings returns the typed settings view
func GetSettings() Settings {
	s := Settings{
		Difficulty:    viper.GetString("difficulty"),
		PopulationCap: viper.GetInt("populationCap"),
		GodMode:       viper.GetBool("godMode"),
		AudioEnabled:  viper.GetBool("audio.enabled"),
		Seed:          viper.GetUint64("seed"),
		LogFile:       viper.GetString("log.file"),
		LogLevel:      viper.GetString("log.level"),
		ScorePath:     viper.GetString("scoreboard.path"),
	}

	if s.PopulationCap < 1 {
		s.PopulationCap = constant.DefaultPopulationCap
	}
	return s
}

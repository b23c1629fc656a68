package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/JustinWhittecar/mekrules/internal/hitloc"
	"github.com/JustinWhittecar/mekrules/internal/psr"
)

// FileName is the config file Load looks for.
const FileName = "mekrules.cfg.json"

// HitConfig holds the optional hit-location rules.
type HitConfig struct {
	TAC            string `json:"tac" mapstructure:"tac"`
	EdgeOnTAC      bool   `json:"edgeOnTAC" mapstructure:"edgeOnTAC"`
	EdgeOnHeadHit  bool   `json:"edgeOnHeadHit" mapstructure:"edgeOnHeadHit"`
	ProneRearTable bool   `json:"proneRearTable" mapstructure:"proneRearTable"`
}

// PSRConfig holds the optional piloting rules.
type PSRConfig struct {
	CarefulStand      bool `json:"carefulStand" mapstructure:"carefulStand"`
	CarefulMovement   bool `json:"carefulMovement" mapstructure:"carefulMovement"`
	Fatigue           bool `json:"fatigue" mapstructure:"fatigue"`
	FatigueBaseRounds int  `json:"fatigueBaseRounds" mapstructure:"fatigueBaseRounds"`
}

// DBConfig locates the equipment catalog. An empty SQLitePath and
// PostgresDSN means the built-in catalog.
type DBConfig struct {
	SQLitePath  string `json:"sqlitePath" mapstructure:"sqlitePath"`
	PostgresDSN string `json:"postgresDSN" mapstructure:"postgresDSN"`
}

// Game is the full option set of a rules session.
type Game struct {
	LogLevel string    `json:"logLevel" mapstructure:"logLevel"`
	Hit      HitConfig `json:"hit" mapstructure:"hit"`
	PSR      PSRConfig `json:"psr" mapstructure:"psr"`
	DB       DBConfig  `json:"db" mapstructure:"db"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("hit.tac", "standard")
	viper.SetDefault("hit.edgeOnTAC", false)
	viper.SetDefault("hit.edgeOnHeadHit", false)
	viper.SetDefault("hit.proneRearTable", false)

	viper.SetDefault("psr.carefulStand", false)
	viper.SetDefault("psr.carefulMovement", false)
	viper.SetDefault("psr.fatigue", false)
	viper.SetDefault("psr.fatigueBaseRounds", psr.DefaultFatigueBaseRounds)

	viper.SetDefault("db.sqlitePath", "")
	viper.SetDefault("db.postgresDSN", "")
}

// Load reads FileName from configDir over the defaults. A missing file is
// not an error; a malformed one is.
func Load(configDir string) (Game, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Game{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var g Game
	if err := viper.Unmarshal(&g); err != nil {
		return Game{}, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := hitloc.ParseTACMode(g.Hit.TAC); err != nil {
		return Game{}, fmt.Errorf("hit.tac: %w", err)
	}
	return g, nil
}

// HitOptions converts the hit section for the resolver. Load has already
// validated the TAC mode.
func (g Game) HitOptions() hitloc.Options {
	tac, _ := hitloc.ParseTACMode(g.Hit.TAC)
	return hitloc.Options{
		TAC:            tac,
		EdgeOnTAC:      g.Hit.EdgeOnTAC,
		EdgeOnHeadHit:  g.Hit.EdgeOnHeadHit,
		ProneRearTable: g.Hit.ProneRearTable,
	}
}

func (g Game) PilotingOptions() psr.Options {
	return psr.Options{
		CarefulStand:      g.PSR.CarefulStand,
		CarefulMovement:   g.PSR.CarefulMovement,
		Fatigue:           g.PSR.Fatigue,
		FatigueBaseRounds: g.PSR.FatigueBaseRounds,
	}
}

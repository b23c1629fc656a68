package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekrules/internal/hitloc"
	"github.com/JustinWhittecar/mekrules/internal/psr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"hit": { "tac": "floating", "edgeOnTAC": true, "proneRearTable": true },
		"psr": { "carefulStand": true, "fatigue": true, "fatigueBaseRounds": 20 },
		"db": { "sqlitePath": "/data/mechs.db" }
	}`)

	g, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", g.LogLevel)
	assert.Equal(t, "floating", g.Hit.TAC)
	assert.True(t, g.Hit.EdgeOnTAC)
	assert.False(t, g.Hit.EdgeOnHeadHit)
	assert.True(t, g.PSR.CarefulStand)
	assert.Equal(t, 20, g.PSR.FatigueBaseRounds)
	assert.Equal(t, "/data/mechs.db", g.DB.SQLitePath)
	assert.Equal(t, "", g.DB.PostgresDSN)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	g, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", g.LogLevel)
	assert.Equal(t, "standard", g.Hit.TAC)
	assert.False(t, g.Hit.EdgeOnTAC)
	assert.False(t, g.PSR.CarefulMovement)
	assert.Equal(t, psr.DefaultFatigueBaseRounds, g.PSR.FatigueBaseRounds)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	g, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "info", g.LogLevel)
	assert.Equal(t, "standard", g.Hit.TAC)
}

func TestLoad_Malformed(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load(writeConfig(t, `{"logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_BadTACMode(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load(writeConfig(t, `{"hit": {"tac": "sometimes"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hit.tac")
}

func TestOptions(t *testing.T) {
	g := Game{
		Hit: HitConfig{TAC: "none", EdgeOnHeadHit: true},
		PSR: PSRConfig{CarefulMovement: true, FatigueBaseRounds: 12},
	}
	assert.Equal(t, hitloc.Options{TAC: hitloc.TACNone, EdgeOnHeadHit: true}, g.HitOptions())
	assert.Equal(t, psr.Options{CarefulMovement: true, FatigueBaseRounds: 12}, g.PilotingOptions())
}

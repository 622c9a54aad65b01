package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ltmesh/mesh"
	"github.com/spf13/viper"
)

// envPrefix prefixes environment overrides, e.g. LTMESH_X2=50.
const envPrefix = "LTMESH"

// settings is the resolved configuration of a generate run.
type settings struct {
	Params  mesh.Params
	Half    bool
	Format  string
	Verbose bool
}

// initConfig wires environment variables and the optional config file into v.
// Precedence: flag > env > config file > default.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file := v.GetString("config")
	if file == "" {
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", file, err)
	}

	return nil
}

// loadSettings reads the generate keys out of v.
func loadSettings(v *viper.Viper) settings {
	return settings{
		Params: mesh.Params{
			N:  v.GetInt("n"),
			X0: v.GetFloat64("x0"),
			X1: v.GetFloat64("x1"),
			X2: v.GetFloat64("x2"),
		},
		Half:    v.GetBool("half"),
		Format:  strings.ToLower(v.GetString("format")),
		Verbose: v.GetBool("verbose"),
	}
}

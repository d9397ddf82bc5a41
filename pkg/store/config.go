package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the dataset and the snapshot directory.
type Config interface {
	DataPath() string
	SnapshotPath() string
}

// LoadConfig reads .homec.yaml (cwd, or HOMEC_CONFIG_PATH) with HOMEC_*
// environment overrides. A missing config file is fine; defaults apply.
func LoadConfig() (Config, error) {
	viper.SetDefault("data", "~/.homec/data.json")
	viper.SetDefault("snapshots", "~/.homec/snapshots")
	viper.SetConfigName(".homec") // .yaml is implicit
	viper.SetEnvPrefix("HOMEC")
	viper.AutomaticEnv()

	if override := os.Getenv("HOMEC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	data, err := homedir.Expand(viper.GetString("data"))
	if err != nil {
		return nil, fmt.Errorf("store: expand data path: %w", err)
	}
	snaps, err := homedir.Expand(viper.GetString("snapshots"))
	if err != nil {
		return nil, fmt.Errorf("store: expand snapshot path: %w", err)
	}
	return &fileConfig{Data: data, Snapshots: snaps}, nil
}

type fileConfig struct {
	Data      string `json:"data"`
	Snapshots string `json:"snapshots"`
}

func (f *fileConfig) DataPath() string     { return f.Data }
func (f *fileConfig) SnapshotPath() string { return f.Snapshots }

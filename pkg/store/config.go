package store

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/growth/pkg/logging"
)

const (
	DefaultPath     = "~/.growth"
	DefaultFileName = "user_data.json"

	// EnvConfigPath names a directory searched for .growth.yaml.
	EnvConfigPath = "GROWTH_CONFIG_PATH"
)

type Config interface {
	BasePath() string
	FileName() string
	Animations() bool
	LogLevel() string
}

// LoadConfig reads .growth.yaml from $GROWTH_CONFIG_PATH or the working
// directory, overlaid with GROWTH_* environment variables. A .env file in the
// working directory is loaded into the environment first.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("file", DefaultFileName)
	v.SetDefault("animations", false)
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".growth") // .yaml is implicit
	v.SetEnvPrefix("GROWTH")
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logging.Logger().Error("error reading config file", "err", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:       path,
		File:       v.GetString("file"),
		Animate:    v.GetBool("animations"),
		Level:      v.GetString("log_level"),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path       string `json:"path"`
	File       string `json:"file"`
	Animate    bool   `json:"animations"`
	Level      string `json:"log_level"`
	ConfigFile string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) FileName() string {
	if f.File == "" {
		return DefaultFileName
	}
	return f.File
}

func (f *fileConfig) Animations() bool {
	return f.Animate
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

// ConfigFileUsed reports the config file viper read, if any.
func ConfigFileUsed(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.ConfigFile
	}
	return ""
}

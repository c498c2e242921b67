package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type StorageConfig struct {
	// Filename of the embedded store; relative paths resolve under workdir.
	Filename string `yaml:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system"`
	Web     WebConfig     `yaml:"web"`
	Logger  LogConfig     `yaml:"logger"`
	Storage StorageConfig `yaml:"storage"`
}

// StorePath resolves the store filename against the configured workdir.
func (c *AppConfig) StorePath() string {
	if filepath.IsAbs(c.Storage.Filename) {
		return c.Storage.Filename
	}
	return filepath.Join(c.System.Workdir, c.Storage.Filename)
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "tourcrm",
			Location: "Local",
			Workdir:  "/var/tourcrm",
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 1890,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/tourcrm/tourcrm.log",
		},
		Storage: StorageConfig{
			Filename: "tourcrm.db",
		},
	}
}

// LoadConfig reads the YAML config at path, falling back to defaults when
// path is empty or the file does not exist. Fields left empty in the file
// keep their default values.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Storage.Filename == "" {
		cfg.Storage.Filename = "tourcrm.db"
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tenants TenantsConfig `mapstructure:"tenants"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	StaticDir   string `mapstructure:"static_dir"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var globalConfig Config
var tenantsConfig TenantsConfig

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		// Defaults and the demo registry still apply so the service stays
		// usable without a config file.
		setDefaultValues()
		tenantsConfig = DefaultTenants()
		globalConfig.Tenants = tenantsConfig
		return fmt.Errorf("could not load main config file: %w", err)
	}

	setDefaultValues()

	if err := loadConfigFile(configPath, "tenants", &tenantsConfig); err != nil {
		// A missing tenants file is not fatal: the built-in demo tenants
		// keep the service usable.
		tenantsConfig = DefaultTenants()
	}
	if len(tenantsConfig.Tenants) == 0 {
		tenantsConfig = DefaultTenants()
	}

	globalConfig.Tenants = tenantsConfig

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Server.StaticDir == "" {
		globalConfig.Server.StaticDir = "./static"
	}
}

func GetConfig() *Config {
	return &globalConfig
}

package config

import (
	"os"
	"path"

	"github.com/labstack/gommon/random"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

// DefaultAppConfig is a runnable development configuration: sqlite store in the
// workdir, no log file, random session secret per start.
var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "MiniAmazon",
		Location: "Europe/Moscow",
		Workdir:  "/var/miniamazon",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1880,
		Secret: random.String(32),
	},
	Database: DBConfig{
		Type:  "sqlite",
		Name:  "miniamazon",
		Debug: false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
	},
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

// LoadConfig reads the yaml configuration file and applies environment
// overrides. A missing or empty path yields DefaultAppConfig.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg = new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("MINIAMAZON_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("MINIAMAZON_WEB_SECRET", &cfg.Web.Secret)
	setEnvValue("MINIAMAZON_DB_TYPE", &cfg.Database.Type)
	setEnvValue("MINIAMAZON_DB_HOST", &cfg.Database.Host)
	setEnvValue("MINIAMAZON_DB_NAME", &cfg.Database.Name)
	setEnvValue("MINIAMAZON_DB_USER", &cfg.Database.User)
	setEnvValue("MINIAMAZON_DB_PWD", &cfg.Database.Passwd)
	setEnvBoolValue("MINIAMAZON_SYSTEM_DEBUG", &cfg.System.Debug)

	if cfg.System.Workdir == "" {
		cfg.System.Workdir = DefaultAppConfig.System.Workdir
	}
	if cfg.Web.Secret == "" {
		cfg.Web.Secret = random.String(32)
	}
	if cfg.Logger.FileEnable && cfg.Logger.Filename == "" {
		cfg.Logger.Filename = path.Join(cfg.System.Workdir, "miniamazon.log")
	}
	return cfg
}

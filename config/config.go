package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"`
}

type DBConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type SmtpConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	NotifyTo string `yaml:"notify_to"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system"`
	Web      WebConfig  `yaml:"web"`
	Database DBConfig   `yaml:"database"`
	Logger   LogConfig  `yaml:"logger"`
	Smtp     SmtpConfig `yaml:"smtp"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "glowgather",
		Location: "Asia/Manila",
		Workdir:  "/var/glowgather",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "glowgather",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/glowgather/glowgather.log",
	},
	Smtp: SmtpConfig{
		Enabled: false,
		Port:    587,
	},
}

func setEnvValue(name string, val *string) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue
	}
}

func setEnvInt64Value(name string, val *int64) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt64(evalue)
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig reads the YAML config file and applies GG_* environment
// overrides on top. A missing file falls back to DefaultAppConfig.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("GG_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("GG_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("GG_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("GG_WEB_HOST", &cfg.Web.Host)
	setEnvValue("GG_WEB_SECRET", &cfg.Web.Secret)
	setEnvIntValue("GG_WEB_PORT", &cfg.Web.Port)

	setEnvValue("GG_DB_HOST", &cfg.Database.Host)
	setEnvValue("GG_DB_NAME", &cfg.Database.Name)
	setEnvValue("GG_DB_USER", &cfg.Database.User)
	setEnvValue("GG_DB_PWD", &cfg.Database.Passwd)
	setEnvIntValue("GG_DB_PORT", &cfg.Database.Port)

	setEnvValue("GG_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("GG_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("GG_LOGGER_FILENAME", &cfg.Logger.Filename)

	setEnvBoolValue("GG_SMTP_ENABLED", &cfg.Smtp.Enabled)
	setEnvValue("GG_SMTP_HOST", &cfg.Smtp.Host)
	setEnvIntValue("GG_SMTP_PORT", &cfg.Smtp.Port)
	setEnvValue("GG_SMTP_USERNAME", &cfg.Smtp.Username)
	setEnvValue("GG_SMTP_PASSWORD", &cfg.Smtp.Password)
	setEnvValue("GG_SMTP_FROM", &cfg.Smtp.From)
	setEnvValue("GG_SMTP_NOTIFY_TO", &cfg.Smtp.NotifyTo)

	return cfg
}

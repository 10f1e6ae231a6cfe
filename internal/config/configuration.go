package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Session  SessionConfig  `yaml:"session"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Notifier NotifierConfig `yaml:"notifier"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type SessionConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttlMinutes"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

type NotifierConfig struct {
	// Cron expression for the overdue scan; the reminder frequency itself
	// lives in the settings table so admins can change it at runtime.
	Schedule string `yaml:"schedule"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config.Session.TTLMinutes <= 0 {
		config.Session.TTLMinutes = 240
	}
	if config.Notifier.Schedule == "" {
		config.Notifier.Schedule = "@every 1m"
	}
	return &config, nil
}

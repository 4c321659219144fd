// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"ctlviz/channel"
	"ctlviz/logging"

	"github.com/barkimedes/go-deepcopy"
)

type AppConfig struct {
	LogConfig  LogConfig
	FeedConfig FeedConfig
}

type LogConfig struct {
	Level        string `yaml:",omitempty"`
	Format       string `yaml:",omitempty"`
	RecorderSize int    `yaml:",omitempty"`
}

type FeedConfig struct {
	Url string `yaml:",omitempty"`
	// A server may accept the connection but never reply, so use a timeout.
	TimeoutSeconds    int `yaml:",omitempty"`
	ChannelBufferSize int `yaml:",omitempty"`
}

var defaultAppConfig = NewAppConfig()

func NewAppConfig() AppConfig {
	return AppConfig{
		LogConfig: LogConfig{
			Level:        "info",
			Format:       "text",
			RecorderSize: logging.DefaultRecorderSize,
		},
		FeedConfig: FeedConfig{
			Url:               "ws://localhost:8765",
			TimeoutSeconds:    10,
			ChannelBufferSize: channel.DefaultBufferSize,
		},
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	if a.LogConfig.RecorderSize < 0 {
		a.LogConfig.RecorderSize = 0
	}
	if a.FeedConfig.TimeoutSeconds < 0 {
		a.FeedConfig.TimeoutSeconds = 0
	}
	if a.FeedConfig.ChannelBufferSize < 0 {
		a.FeedConfig.ChannelBufferSize = 0
	}
	a.RestoreDefaults()
}

// We do not want to store default values in the configuration file, so
// that changed defaults of a new release apply.
func (a *AppConfig) RemoveDefaults() {
	def := defaultAppConfig
	if a.LogConfig.Level == def.LogConfig.Level {
		a.LogConfig.Level = ""
	}
	if a.LogConfig.Format == def.LogConfig.Format {
		a.LogConfig.Format = ""
	}
	if a.LogConfig.RecorderSize == def.LogConfig.RecorderSize {
		a.LogConfig.RecorderSize = 0
	}
	if a.FeedConfig.Url == def.FeedConfig.Url {
		a.FeedConfig.Url = ""
	}
	if a.FeedConfig.TimeoutSeconds == def.FeedConfig.TimeoutSeconds {
		a.FeedConfig.TimeoutSeconds = 0
	}
	if a.FeedConfig.ChannelBufferSize == def.FeedConfig.ChannelBufferSize {
		a.FeedConfig.ChannelBufferSize = 0
	}
}

// Restore default values which are not stored in the configuration file.
func (a *AppConfig) RestoreDefaults() {
	def := defaultAppConfig
	if len(a.LogConfig.Level) == 0 {
		a.LogConfig.Level = def.LogConfig.Level
	}
	if len(a.LogConfig.Format) == 0 {
		a.LogConfig.Format = def.LogConfig.Format
	}
	if a.LogConfig.RecorderSize == 0 {
		a.LogConfig.RecorderSize = def.LogConfig.RecorderSize
	}
	if len(a.FeedConfig.Url) == 0 {
		a.FeedConfig.Url = def.FeedConfig.Url
	}
	if a.FeedConfig.TimeoutSeconds == 0 {
		a.FeedConfig.TimeoutSeconds = def.FeedConfig.TimeoutSeconds
	}
	if a.FeedConfig.ChannelBufferSize == 0 {
		a.FeedConfig.ChannelBufferSize = def.FeedConfig.ChannelBufferSize
	}
}

func (a *AppConfig) LogOptions(prefix string) logging.Options {
	return logging.Options{
		Prefix: prefix,
		Level:  a.LogConfig.Level,
		Format: a.LogConfig.Format,
	}
}

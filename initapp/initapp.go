// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"fmt"
	"io"
	"time"

	"ctlviz/config"
	"ctlviz/logging"
	"ctlviz/wsfeed"

	"github.com/charmbracelet/log"
)

// InitApp sets up the services shared by all commands from the application
// configuration.
type InitApp struct {
	config    config.Config
	appConfig config.AppConfig
	logger    *log.Logger
	recorder  *logging.Recorder
	sink      logging.Sink
}

func NewInitApp(c config.Config) *InitApp {
	return &InitApp{
		config: c,
	}
}

// Initialize reads the configuration and creates the logger writing to w.
// Command line overrides are applied to the configuration before it is used.
func (a *InitApp) Initialize(w io.Writer, override func(c *config.AppConfig)) error {
	appConfig, err := a.config.Copy()
	if err != nil {
		return err
	}
	if override != nil {
		override(&appConfig)
		appConfig.Sanitize()
	}
	a.appConfig = appConfig

	a.logger, err = logging.New(w, appConfig.LogOptions(a.config.GetAppName()))
	if err != nil {
		return fmt.Errorf("invalid log configuration: %w", err)
	}
	a.recorder = logging.NewRecorder(appConfig.LogConfig.RecorderSize)
	a.sink = logging.Multi(logging.NewLogSink(a.logger), a.recorder)
	return nil
}

func (a *InitApp) AppConfig() config.AppConfig {
	return a.appConfig
}

func (a *InitApp) Logger() *log.Logger {
	return a.logger
}

// Sink forwards records both to the logger and to the recorder.
func (a *InitApp) Sink() logging.Sink {
	return a.sink
}

func (a *InitApp) Recorder() *logging.Recorder {
	return a.recorder
}

// NewFeed creates a sample feed client using the feed configuration. A
// non-empty url replaces the configured one.
func (a *InitApp) NewFeed(url string) *wsfeed.Client {
	feedConfig := a.appConfig.FeedConfig
	if url == "" {
		url = feedConfig.Url
	}
	return wsfeed.NewClient(
		url,
		time.Duration(feedConfig.TimeoutSeconds)*time.Second,
		feedConfig.ChannelBufferSize,
		a.sink,
	)
}

// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const AppName = "ctlviz"
const configFileName = "globalconfig.yaml"
const configFileVersion = 1

type GlobalConfig struct {
	dir            string
	loaded         bool
	version        VersionConfig
	appConfig      AppConfig
	appConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// NewGlobalConfig creates a configuration stored in the user configuration
// directory.
func NewGlobalConfig() Config {
	return NewGlobalConfigInDir("")
}

// NewGlobalConfigInDir creates a configuration stored in dir. An empty dir
// selects the user configuration directory.
func NewGlobalConfigInDir(dir string) *GlobalConfig {
	return &GlobalConfig{
		dir: dir,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		appConfig: NewAppConfig(),
	}
}

func (g *GlobalConfig) GetAppName() string {
	return AppName
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *GlobalConfig) Lock() (*AppConfig, error) {
	g.appConfigMutex.Lock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			g.appConfigMutex.Unlock()
			return nil, err
		}
	}
	appConfigCopy := g.appConfig.deepCopy()
	return &appConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (g *GlobalConfig) Unlock(c *AppConfig) error {
	var err error
	if !cmp.Equal(g.appConfig, *c) {
		g.appConfig = *c
		err = g.write()
	}
	g.appConfigMutex.Unlock()
	return err
}

func (g *GlobalConfig) Copy() (AppConfig, error) {
	g.appConfigMutex.Lock()
	defer g.appConfigMutex.Unlock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			return AppConfig{}, err
		}
	}
	return g.appConfig.deepCopy(), nil
}

func (g *GlobalConfig) getAppConfigDir() (string, error) {
	if g.dir != "" {
		return g.dir, nil
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration path: %v", err)
	}
	return filepath.Join(userConfigDir, g.GetAppName()), nil
}

func (g *GlobalConfig) read() error {
	appConfigDir, err := g.getAppConfigDir()
	if err != nil {
		return err
	}
	fileName := filepath.Join(appConfigDir, configFileName)
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		// It is fine if the configuration file does not yet exist.
		log.Info("configuration file does not yet exist, using defaults", "file", fileName)
		g.loaded = true
		return nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %v", err)
	}
	err = yaml.Unmarshal(file, &g.version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %v", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if g.version.FileVersion > configFileVersion {
		return fmt.Errorf(
			"invalid configuration file version %d instead of %d, probably from a newer release",
			g.version.FileVersion,
			configFileVersion)
	}
	appConfig := NewAppConfig()
	err = yaml.Unmarshal(file, &appConfig)
	if err != nil {
		return fmt.Errorf("failed to parse app configuration: %v", err)
	}
	appConfig.Sanitize()
	g.appConfig = appConfig
	g.loaded = true
	return nil
}

func (g *GlobalConfig) write() error {
	appConfigDir, err := g.getAppConfigDir()
	if err != nil {
		return err
	}
	err = os.MkdirAll(appConfigDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %v", err)
	}
	g.appConfig.Sanitize()
	g.appConfig.RemoveDefaults()
	g.version.FileVersion = configFileVersion
	fileVersion, err := yaml.Marshal(&g.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %v", err)
	}
	fileAppConfig, err := yaml.Marshal(&g.appConfig)
	g.appConfig.RestoreDefaults()
	if err != nil {
		return fmt.Errorf("error generating app configuration: %v", err)
	}

	file := append(fileVersion, fileAppConfig...)
	fileName := filepath.Join(appConfigDir, configFileName)
	tmpFileName := fileName + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %v", err)
	}
	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %v", err)
	}
	return nil
}

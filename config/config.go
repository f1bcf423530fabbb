/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_BASE_URL  = "https://api.pezesha.com"
	DEFAULT_TIMEOUT   = 30
	DEFAULT_LOG_LEVEL = "info"
)

var ConfigStore atomic.Value

// Credentials identifies an integration against the Pezesha API. Empty fields
// mean "not set" and are filled from the process-wide configuration.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	BaseURL      string `json:"base_url"`
	Channel      string `json:"channel"`
}

type Configuration struct {
	ClientID           string `json:"client_id" envconfig:"PEZESHA_CLIENT_ID"`
	ClientSecret       string `json:"client_secret" envconfig:"PEZESHA_CLIENT_SECRET"`
	BaseURL            string `json:"base_url" envconfig:"PEZESHA_BASE_URL"`
	Channel            string `json:"channel" envconfig:"PEZESHA_CHANNEL"`
	Timeout            int    `json:"timeout" envconfig:"PEZESHA_TIMEOUT"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" envconfig:"PEZESHA_INSECURE_SKIP_VERIFY"`
	LogLevel           string `json:"log_level" envconfig:"PEZESHA_LOG_LEVEL"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	} else {
		return err
	}

	// override config from environment variables
	err = envconfig.Process("pezesha", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called pezesha.json or set the PEZESHA_* env variables")
	}
	return c, nil
}

// FetchOrLoad returns the stored configuration, loading it from the
// environment alone when nothing has been stored yet.
func FetchOrLoad() (*Configuration, error) {
	if c, err := Fetch(); err == nil {
		return c, nil
	}

	var cnf Configuration
	if err := envconfig.Process("pezesha", &cnf); err != nil {
		return nil, err
	}
	if err := cnf.validateAndAddDefaults(); err != nil {
		return nil, err
	}
	ConfigStore.Store(&cnf)
	return &cnf, nil
}

// Credentials returns the credential part of the configuration.
func (cnf *Configuration) Credentials() Credentials {
	return Credentials{
		ClientID:     cnf.ClientID,
		ClientSecret: cnf.ClientSecret,
		BaseURL:      cnf.BaseURL,
		Channel:      cnf.Channel,
	}
}

// Merge returns c with every empty field taken from fallback.
func (c Credentials) Merge(fallback Credentials) Credentials {
	if c.ClientID == "" {
		c.ClientID = fallback.ClientID
	}
	if c.ClientSecret == "" {
		c.ClientSecret = fallback.ClientSecret
	}
	if c.BaseURL == "" {
		c.BaseURL = fallback.BaseURL
	}
	if c.Channel == "" {
		c.Channel = fallback.Channel
	}
	return c
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ClientID = strings.TrimSpace(cnf.ClientID)
	cnf.ClientSecret = strings.TrimSpace(cnf.ClientSecret)
	cnf.BaseURL = strings.TrimRight(strings.TrimSpace(cnf.BaseURL), "/")
	cnf.Channel = strings.TrimSpace(cnf.Channel)
	cnf.LogLevel = strings.ToLower(strings.TrimSpace(cnf.LogLevel))

	if cnf.BaseURL == "" {
		cnf.BaseURL = DEFAULT_BASE_URL
	}

	if cnf.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if cnf.Timeout == 0 {
		cnf.Timeout = DEFAULT_TIMEOUT
	}

	if cnf.LogLevel == "" {
		cnf.LogLevel = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.LogLevel); err != nil {
		return err
	}

	if cnf.InsecureSkipVerify {
		log.Println("Warning: TLS certificate verification is disabled for the Pezesha API.")
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}

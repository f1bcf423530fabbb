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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	pezesha "github.com/blnkfinance/pezesha-go"
	"github.com/blnkfinance/pezesha-go/config"
)

// Pezesha represents the CLI application, encapsulating the root Cobra command.
type Pezesha struct {
	cmd *cobra.Command
}

// pezeshaInstance holds the loaded configuration and, once a command needs it,
// the API client built from it.
type pezeshaInstance struct {
	cnf    *config.Configuration
	client *pezesha.Client
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration file (falling back to PEZESHA_* env
// variables) and sets the log level before any command runs.
func preRun(app *pezeshaInstance, configFile, logLevel *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		level := cnf.LogLevel
		if *logLevel != "" {
			level = *logLevel
		}
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)

		app.cnf = cnf
		return nil
	}
}

// apiClient returns the API client, creating it on first use.
func (app *pezeshaInstance) apiClient() (*pezesha.Client, error) {
	if app.client != nil {
		return app.client, nil
	}

	client, err := pezesha.New(config.Credentials{})
	if err != nil {
		return nil, err
	}
	app.client = client
	return client, nil
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("error printing response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// readJSONFile decodes the JSON file at path into v.
func readJSONFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

// NewCLI creates the command-line interface for the Pezesha API.
func NewCLI() *Pezesha {
	var configFile, logLevel string
	p := &pezeshaInstance{}

	var rootCmd = &cobra.Command{
		Use:           "pezesha",
		Short:         "Command line client for the Pezesha lending API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./pezesha.json", "Configuration file with the Pezesha credentials")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides log_level in the configuration)")

	rootCmd.PersistentPreRunE = preRun(p, &configFile, &logLevel)

	rootCmd.AddCommand(configCommands(p))
	rootCmd.AddCommand(authCommands(p))
	rootCmd.AddCommand(registerCommands(p))
	rootCmd.AddCommand(termsCommands(p))
	rootCmd.AddCommand(optOutCommands(p))
	rootCmd.AddCommand(uploadCommands(p))
	rootCmd.AddCommand(loanCommands(p)...)
	rootCmd.AddCommand(stkPushCommands(p))

	return &Pezesha{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (p Pezesha) executeCLI() {
	if err := p.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}

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
	"github.com/spf13/cobra"

	"github.com/blnkfinance/pezesha-go/config"
)

// maskedConfig hides the client secret of cnf.
func maskedConfig(cnf *config.Configuration) config.Configuration {
	masked := *cnf
	if masked.ClientSecret != "" {
		masked.ClientSecret = "********"
	}
	return masked
}

func configCommands(app *pezeshaInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "config outputs the computed Pezesha configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), maskedConfig(app.cnf))
		},
	}
	return cmd
}

func authCommands(app *pezeshaInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "exchange the client credentials for an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := client.Authenticate(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	return cmd
}

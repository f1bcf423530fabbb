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
	"github.com/wacul/ptr"

	pezesha "github.com/blnkfinance/pezesha-go"
	"github.com/blnkfinance/pezesha-go/model"
)

// registerCommands creates "register borrower|merchant|agent". The user is read
// from a JSON file with the same fields the API expects.
func registerCommands(app *pezeshaInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "register a borrower, merchant or agent",
	}

	for _, userType := range []model.UserType{model.Borrower, model.Merchant, model.Agent} {
		cmd.AddCommand(registerUserCommand(app, userType))
	}
	return cmd
}

func registerUserCommand(app *pezeshaInstance, userType model.UserType) *cobra.Command {
	var file string
	var terms bool

	cmd := &cobra.Command{
		Use:   string(userType),
		Short: "register a " + string(userType),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user model.User
			if err := readJSONFile(file, &user); err != nil {
				return err
			}
			if cmd.Flags().Changed("terms") {
				user.Terms = ptr.Bool(terms)
			}

			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := client.RegisterUser(cmd.Context(), user, userType)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "user.json", "JSON file with the user details")
	cmd.Flags().BoolVar(&terms, "terms", false, "whether the user accepts the terms and conditions (overrides the file)")

	return cmd
}

func termsCommands(app *pezeshaInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "accept or decline the terms and conditions",
	}

	cmd.AddCommand(identifierCommand(app, "accept <identifier>", "accept the terms and conditions", (*pezesha.Client).AcceptTerms))
	cmd.AddCommand(identifierCommand(app, "decline <identifier>", "decline the terms and conditions", (*pezesha.Client).DeclineTerms))
	return cmd
}

func optOutCommands(app *pezeshaInstance) *cobra.Command {
	return identifierCommand(app, "opt-out <identifier>", "remove a merchant from the Pezesha ecosystem", (*pezesha.Client).OptOut)
}

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
	"context"

	"github.com/spf13/cobra"

	pezesha "github.com/blnkfinance/pezesha-go"
	"github.com/blnkfinance/pezesha-go/model"
)

type identifierOperation func(c *pezesha.Client, ctx context.Context, identifier string) (pezesha.Result, error)

// identifierCommand builds a command whose only argument is the identifier
// passed to op.
func identifierCommand(app *pezeshaInstance, use, short string, op identifierOperation) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := op(client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func loanCommands(app *pezeshaInstance) []*cobra.Command {
	return []*cobra.Command{
		identifierCommand(app, "offers <identifier>", "list the loan offers a merchant qualifies for", (*pezesha.Client).LoanOffers),
		applyLoanCommand(app),
		identifierCommand(app, "loan-status <identifier>", "show the state of the latest loan", (*pezesha.Client).LoanStatus),
		loanHistoryCommand(app),
		identifierCommand(app, "active-loans <merchant-key>", "list the active loans of a merchant", (*pezesha.Client).ActiveLoans),
		identifierCommand(app, "repayment-schedule <merchant-id>", "show the repayment schedule of a loan", (*pezesha.Client).RepaymentSchedule),
	}
}

func applyLoanCommand(app *pezeshaInstance) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "apply-loan <pezesha-id>",
		Short: "apply for a loan using the terms of an offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var application model.LoanApplication
			if err := readJSONFile(file, &application); err != nil {
				return err
			}

			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := client.ApplyLoan(cmd.Context(), args[0], application)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "loan.json", "JSON file with the loan terms and payment details")

	return cmd
}

func loanHistoryCommand(app *pezeshaInstance) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "loan-history <identifier>",
		Short: "show a page of the loan statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := client.LoanHistory(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "statement page, starting at 1")

	return cmd
}

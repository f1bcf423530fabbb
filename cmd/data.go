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

	"github.com/blnkfinance/pezesha-go/model"
)

// uploadFile is the layout of the file read by the upload command.
type uploadFile struct {
	Transactions []model.Transaction `json:"transactions"`
	OtherDetails []model.OtherDetail `json:"other_details"`
}

func uploadCommands(app *pezeshaInstance) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "upload <identifier>",
		Short: "upload historical transactions for credit scoring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data uploadFile
			if err := readJSONFile(file, &data); err != nil {
				return err
			}

			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := client.UploadTransactions(cmd.Context(), args[0], data.Transactions, data.OtherDetails)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&file, "file", "transactions.json", `JSON file of the form {"transactions": [...], "other_details": [...]}`)

	return cmd
}

func stkPushCommands(app *pezeshaInstance) *cobra.Command {
	var amount, phone, account string

	cmd := &cobra.Command{
		Use:   "stk-push",
		Short: "prompt an M-Pesa number to pay into an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.apiClient()
			if err != nil {
				return err
			}

			result, err := client.InitiateStkPush(cmd.Context(), amount, phone, account)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount to collect")
	cmd.Flags().StringVar(&phone, "phone", "", "M-Pesa number in +254XXXXXXXXX format")
	cmd.Flags().StringVar(&account, "account", "", "account to credit")

	return cmd
}

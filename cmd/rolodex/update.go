package main

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <contact.json>",
	Short: "Replace a contact's data from a JSON file",
	Long: `Replace the stored data of an existing contact. The JSON file ("-"
reads stdin) must carry the contact's identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contact, err := readContactArg(args[0])
		if err != nil {
			return err
		}

		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		return svc.UpdateContact(cmd.Context(), contact)
	},
}

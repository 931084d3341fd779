package main

import (
	"github.com/spf13/cobra"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <number>",
	Short: "List contacts matching a phone number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		contacts, err := svc.ListByPhone(cmd.Context(), args[0], listOptions())
		if err != nil {
			return err
		}
		return printContacts(contacts)
	},
}

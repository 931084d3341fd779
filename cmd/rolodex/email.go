package main

import (
	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "List contacts matching an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		contacts, err := svc.ListByEmail(cmd.Context(), args[0], listOptions())
		if err != nil {
			return err
		}
		return printContacts(contacts)
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <identifier>",
	Short: "Show one contact by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		contact, err := svc.GetByIdentifier(cmd.Context(), args[0], flagLocalized)
		if err != nil {
			return err
		}
		if contact == nil {
			return fmt.Errorf("no contact with identifier %q", args[0])
		}
		return printJSON(contact)
	},
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <identifier>",
	Short: "Delete a contact by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		return svc.DeleteContact(cmd.Context(), &types.Contact{Identifier: args[0]})
	},
}

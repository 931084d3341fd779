package main

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <contact.json>",
	Short: "Add a contact from a JSON file",
	Long: `Add a contact described by a JSON file ("-" reads stdin). The store
assigns the identifier; any identifier in the file is ignored.`,
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

		return svc.AddContact(cmd.Context(), contact)
	},
}

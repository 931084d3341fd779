package main

import (
	"github.com/spf13/cobra"
)

// Shared listing flags, also used by the phone and email commands.
var (
	flagListQuery   string
	flagListPhotos  bool
	flagListHighRes bool
	flagListOrder   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long:  `List all contacts, or those whose display name starts with --query.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		contacts, err := svc.ListContacts(cmd.Context(), listOptions())
		if err != nil {
			return err
		}
		return printContacts(contacts)
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListQuery, "query", "", "display-name prefix filter")
	for _, cmd := range []*cobra.Command{listCmd, phoneCmd, emailCmd} {
		cmd.Flags().BoolVar(&flagListPhotos, "photos", false, "attach contact photos")
		cmd.Flags().BoolVar(&flagListHighRes, "high-res", false, "full-resolution photos instead of thumbnails")
		cmd.Flags().BoolVar(&flagListOrder, "order-by-given-name", false, "sort by given name")
	}
}

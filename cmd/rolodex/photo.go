package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	flagPhotoHighRes bool
	flagPhotoOut     string
)

var photoCmd = &cobra.Command{
	Use:   "photo <identifier>",
	Short: "Fetch a contact's photo as PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService()
		if err != nil {
			return err
		}
		defer closer()

		data, err := svc.GetPhoto(cmd.Context(), &types.Contact{Identifier: args[0]}, flagPhotoHighRes)
		if err != nil {
			return err
		}
		if data == nil {
			return fmt.Errorf("no photo for contact %q", args[0])
		}

		if flagPhotoOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(flagPhotoOut, data, 0o644)
	},
}

func init() {
	photoCmd.Flags().BoolVar(&flagPhotoHighRes, "high-res", false, "full resolution instead of thumbnail")
	photoCmd.Flags().StringVarP(&flagPhotoOut, "out", "o", "", "write PNG to file instead of stdout")
}

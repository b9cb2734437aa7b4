package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDracoon(cmd.Context())
		if err != nil {
			return err
		}
		defer dc.Logout(cmd.Context())

		account, err := dc.User.GetAccount(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s %s (%s), id %d\n", account.FirstName, account.LastName, account.UserName, account.ID)
		if account.UserRoles != nil {
			for _, role := range account.UserRoles.Items {
				fmt.Printf("  role: %s\n", role.Name)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(WhoamiCmd)
}

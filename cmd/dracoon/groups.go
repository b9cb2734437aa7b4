package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtisem/dracoon-go/models"
)

var (
	groupsFilter string
	groupsLimit  int
	groupsSort   string
)

var GroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDracoon(cmd.Context())
		if err != nil {
			return err
		}
		defer dc.Logout(cmd.Context())

		list, err := dc.Groups.GetGroups(cmd.Context(), models.ListParams{
			Filter: groupsFilter,
			Limit:  groupsLimit,
			Sort:   groupsSort,
		})
		if err != nil {
			return err
		}
		for _, group := range list.Items {
			fmt.Printf("%8d  %-40s  %d users\n", group.ID, group.Name, group.CntUsers)
		}
		fmt.Printf("%d of %d groups\n", len(list.Items), list.Range.Total)
		return nil
	},
}

func init() {
	GroupsCmd.Flags().StringVar(&groupsFilter, "filter", "", "filter expression, e.g. name:cn:admins")
	GroupsCmd.Flags().IntVar(&groupsLimit, "limit", 0, "maximum items to return")
	GroupsCmd.Flags().StringVar(&groupsSort, "sort", "", "sort expression, e.g. name:asc")
	RootCmd.AddCommand(GroupsCmd)
}

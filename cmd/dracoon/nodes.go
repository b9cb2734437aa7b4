package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtisem/dracoon-go/models"
)

var nodesParentID int64

var NodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List nodes below a parent node",
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDracoon(cmd.Context())
		if err != nil {
			return err
		}
		defer dc.Logout(cmd.Context())

		list, err := dc.Nodes.GetNodes(cmd.Context(), nodesParentID, models.ListParams{})
		if err != nil {
			return err
		}
		for _, node := range list.Items {
			fmt.Printf("%8d  %-6s  %-40s  %d bytes\n", node.ID, node.Type, node.Name, node.Size)
		}
		fmt.Printf("%d of %d nodes\n", len(list.Items), list.Range.Total)
		return nil
	},
}

func init() {
	NodesCmd.Flags().Int64Var(&nodesParentID, "parent-id", 0, "parent node id, 0 is the root")
	RootCmd.AddCommand(NodesCmd)
}

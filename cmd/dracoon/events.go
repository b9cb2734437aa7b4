package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semtisem/dracoon-go/eventlog"
	"github.com/semtisem/dracoon-go/models"
)

var (
	eventsDateStart string
	eventsDateEnd   string
	eventsUserID    int64
	eventsLimit     int
)

var EventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the audit event log (requires auditor role)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := newDracoon(cmd.Context())
		if err != nil {
			return err
		}
		defer dc.Logout(cmd.Context())

		list, err := dc.Eventlog.GetEvents(cmd.Context(), eventlog.EventParams{
			ListParams: models.ListParams{Limit: eventsLimit},
			DateStart:  eventsDateStart,
			DateEnd:    eventsDateEnd,
			UserID:     eventsUserID,
		})
		if err != nil {
			return err
		}
		for _, event := range list.Items {
			fmt.Printf("%s  %-30s  %s\n", event.Time.Format("2006-01-02 15:04:05"), event.OperationName, event.Message)
		}
		return nil
	},
}

func init() {
	EventsCmd.Flags().StringVar(&eventsDateStart, "date-start", "", "start date (RFC 3339)")
	EventsCmd.Flags().StringVar(&eventsDateEnd, "date-end", "", "end date (RFC 3339)")
	EventsCmd.Flags().Int64Var(&eventsUserID, "user-id", 0, "filter by user id")
	EventsCmd.Flags().IntVar(&eventsLimit, "limit", 50, "maximum events to show")
	RootCmd.AddCommand(EventsCmd)
}

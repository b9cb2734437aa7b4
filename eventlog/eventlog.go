// Package eventlog wraps the /eventlog resource group: permission audits
// and the event log. Requires the auditor role.
package eventlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/semtisem/dracoon-go/client"
	"github.com/semtisem/dracoon-go/models"
	"github.com/semtisem/dracoon-go/pkg/utils"
)

type Adapter struct {
	c   *client.Client
	log *logrus.Entry
}

func NewAdapter(c *client.Client) *Adapter {
	return &Adapter{
		c:   c,
		log: utils.Log.WithField("adapter", "eventlog"),
	}
}

// GetPermissions returns the user permissions of all nodes (rooms).
func (a *Adapter) GetPermissions(ctx context.Context, params models.ListParams) (*AuditNodeInfoList, error) {
	var list AuditNodeInfoList
	err := a.c.Request(ctx, http.MethodGet, "/eventlog/audits/nodes", func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("getting permissions failed")
		return nil, err
	}
	return &list, nil
}

// GetEvents returns the audit event log.
func (a *Adapter) GetEvents(ctx context.Context, params EventParams) (*LogEventList, error) {
	q := params.Query()
	if params.DateStart != "" {
		q["date_start"] = params.DateStart
	}
	if params.DateEnd != "" {
		q["date_end"] = params.DateEnd
	}
	if params.OperationID > 0 {
		q["type"] = strconv.Itoa(params.OperationID)
	}
	if params.UserID > 0 {
		q["user_id"] = strconv.FormatInt(params.UserID, 10)
	}

	var list LogEventList
	err := a.c.Request(ctx, http.MethodGet, "/eventlog/events", func(r *resty.Request) {
		r.SetQueryParams(q)
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("getting event log failed")
		return nil, err
	}
	return &list, nil
}

// Package nodes wraps the /nodes resource group: room, folder and file
// metadata, recycle bin and restore.
package nodes

import (
	"context"
	"fmt"
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
		log: utils.Log.WithField("adapter", "nodes"),
	}
}

// GetNodes lists the children of parentID, paged by params. parentID 0 is
// the root.
func (a *Adapter) GetNodes(ctx context.Context, parentID int64, params models.ListParams) (*NodeList, error) {
	q := params.Query()
	q["parent_id"] = strconv.FormatInt(parentID, 10)

	var list NodeList
	err := a.c.Request(ctx, http.MethodGet, "/nodes", func(r *resty.Request) {
		r.SetQueryParams(q)
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("getting nodes failed")
		return nil, err
	}
	return &list, nil
}

// GetNode fetches a single node by id.
func (a *Adapter) GetNode(ctx context.Context, nodeID int64) (*Node, error) {
	var node Node
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/nodes/%d", nodeID), nil, &node)
	if err != nil {
		a.log.WithError(err).Errorf("getting node %d failed", nodeID)
		return nil, err
	}
	return &node, nil
}

// DeleteNode moves a single node to the recycle bin.
func (a *Adapter) DeleteNode(ctx context.Context, nodeID int64) error {
	err := a.c.Request(ctx, http.MethodDelete, fmt.Sprintf("/nodes/%d", nodeID), nil, nil)
	if err != nil {
		a.log.WithError(err).Errorf("deleting node %d failed", nodeID)
	}
	return err
}

// DeleteNodes moves a list of nodes to the recycle bin.
func (a *Adapter) DeleteNodes(ctx context.Context, nodeIDs []int64) error {
	err := a.c.Request(ctx, http.MethodDelete, "/nodes", func(r *resty.Request) {
		r.SetBody(models.IDList{IDs: nodeIDs})
	}, nil)
	if err != nil {
		a.log.WithError(err).Error("deleting nodes failed")
	}
	return err
}

// CreateFolder creates a folder below req.ParentID.
func (a *Adapter) CreateFolder(ctx context.Context, req CreateFolderRequest) (*Node, error) {
	var node Node
	err := a.c.Request(ctx, http.MethodPost, "/nodes/folders", func(r *resty.Request) {
		r.SetBody(req)
	}, &node)
	if err != nil {
		a.log.WithError(err).Error("creating folder failed")
		return nil, err
	}
	return &node, nil
}

// UpdateFolder changes folder metadata.
func (a *Adapter) UpdateFolder(ctx context.Context, nodeID int64, req UpdateFolderRequest) (*Node, error) {
	var node Node
	err := a.c.Request(ctx, http.MethodPut, fmt.Sprintf("/nodes/folders/%d", nodeID), func(r *resty.Request) {
		r.SetBody(req)
	}, &node)
	if err != nil {
		a.log.WithError(err).Errorf("updating folder %d failed", nodeID)
		return nil, err
	}
	return &node, nil
}

// CreateRoom creates a room. Rooms at the root need at least one admin user
// or admin group.
func (a *Adapter) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Node, error) {
	var node Node
	err := a.c.Request(ctx, http.MethodPost, "/nodes/rooms", func(r *resty.Request) {
		r.SetBody(req)
	}, &node)
	if err != nil {
		a.log.WithError(err).Error("creating room failed")
		return nil, err
	}
	return &node, nil
}

// MoveNodes moves nodes below the target node.
func (a *Adapter) MoveNodes(ctx context.Context, targetID int64, req TransferNodesRequest) (*Node, error) {
	var node Node
	err := a.c.Request(ctx, http.MethodPost, fmt.Sprintf("/nodes/%d/move_to", targetID), func(r *resty.Request) {
		r.SetBody(req)
	}, &node)
	if err != nil {
		a.log.WithError(err).Errorf("moving nodes to %d failed", targetID)
		return nil, err
	}
	return &node, nil
}

// CopyNodes copies nodes below the target node.
func (a *Adapter) CopyNodes(ctx context.Context, targetID int64, req TransferNodesRequest) (*Node, error) {
	var node Node
	err := a.c.Request(ctx, http.MethodPost, fmt.Sprintf("/nodes/%d/copy_to", targetID), func(r *resty.Request) {
		r.SetBody(req)
	}, &node)
	if err != nil {
		a.log.WithError(err).Errorf("copying nodes to %d failed", targetID)
		return nil, err
	}
	return &node, nil
}

// SearchNodes searches nodes by name below params.ParentID.
func (a *Adapter) SearchNodes(ctx context.Context, search string, params SearchParams) (*NodeList, error) {
	q := params.Query()
	q["search_string"] = search
	if params.ParentID > 0 {
		q["parent_id"] = strconv.FormatInt(params.ParentID, 10)
	}
	if params.DepthLevel != 0 {
		q["depth_level"] = strconv.Itoa(params.DepthLevel)
	}

	var list NodeList
	err := a.c.Request(ctx, http.MethodGet, "/nodes/search", func(r *resty.Request) {
		r.SetQueryParams(q)
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("searching nodes failed")
		return nil, err
	}
	return &list, nil
}

// GetDeletedNodes lists one page of the recycle bin of parentID.
func (a *Adapter) GetDeletedNodes(ctx context.Context, parentID int64, params models.ListParams) (*DeletedNodeSummaryList, error) {
	var list DeletedNodeSummaryList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/nodes/%d/deleted_nodes", parentID), func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting deleted nodes of %d failed", parentID)
		return nil, err
	}
	return &list, nil
}

// GetAllDeletedNodes drains the recycle bin listing of parentID. The first
// page reveals the total, the remaining offsets are fetched in concurrent
// batches of client.DefaultBatchSize.
func (a *Adapter) GetAllDeletedNodes(ctx context.Context, parentID int64) (*DeletedNodeSummaryList, error) {
	first, err := a.GetDeletedNodes(ctx, parentID, models.ListParams{})
	if err != nil {
		return nil, err
	}
	total := first.Range.Total
	if total <= models.MaxPageSize {
		return first, nil
	}

	var jobs []func(ctx context.Context) (*DeletedNodeSummaryList, error)
	for offset := models.MaxPageSize; offset < total; offset += models.MaxPageSize {
		params := models.ListParams{Offset: offset}
		jobs = append(jobs, func(ctx context.Context) (*DeletedNodeSummaryList, error) {
			return a.GetDeletedNodes(ctx, parentID, params)
		})
	}
	pages, err := client.Gather(ctx, client.DefaultBatchSize, jobs)
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		first.Items = append(first.Items, page.Items...)
	}
	return first, nil
}

// RestoreNodes restores deleted node versions.
func (a *Adapter) RestoreNodes(ctx context.Context, req RestoreNodesRequest) error {
	err := a.c.Request(ctx, http.MethodPost, "/nodes/deleted_nodes/actions/restore", func(r *resty.Request) {
		r.SetBody(req)
	}, nil)
	if err != nil {
		a.log.WithError(err).Error("restoring nodes failed")
	}
	return err
}

// EmptyRecycleBin permanently deletes the recycle bin of parentID.
func (a *Adapter) EmptyRecycleBin(ctx context.Context, parentID int64) error {
	err := a.c.Request(ctx, http.MethodDelete, fmt.Sprintf("/nodes/%d/deleted_nodes", parentID), nil, nil)
	if err != nil {
		a.log.WithError(err).Errorf("emptying recycle bin of %d failed", parentID)
	}
	return err
}

// Package groups wraps the /groups resource group: group management,
// membership and role queries. Requires the group manager role.
package groups

import (
	"context"
	"fmt"
	"net/http"

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
		log: utils.Log.WithField("adapter", "groups"),
	}
}

// CreateGroup creates a new group.
func (a *Adapter) CreateGroup(ctx context.Context, req CreateGroupRequest) (*Group, error) {
	var group Group
	err := a.c.Request(ctx, http.MethodPost, "/groups", func(r *resty.Request) {
		r.SetBody(req)
	}, &group)
	if err != nil {
		a.log.WithError(err).Error("creating group failed")
		return nil, err
	}
	return &group, nil
}

// GetGroups lists groups, paged by params.
func (a *Adapter) GetGroups(ctx context.Context, params models.ListParams) (*GroupList, error) {
	var list GroupList
	err := a.c.Request(ctx, http.MethodGet, "/groups", func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("getting groups failed")
		return nil, err
	}
	return &list, nil
}

// GetGroup fetches a single group by id.
func (a *Adapter) GetGroup(ctx context.Context, groupID int64) (*Group, error) {
	var group Group
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/groups/%d", groupID), nil, &group)
	if err != nil {
		a.log.WithError(err).Errorf("getting group %d failed", groupID)
		return nil, err
	}
	return &group, nil
}

// UpdateGroup changes name or expiration of a group.
func (a *Adapter) UpdateGroup(ctx context.Context, groupID int64, req UpdateGroupRequest) (*Group, error) {
	var group Group
	err := a.c.Request(ctx, http.MethodPut, fmt.Sprintf("/groups/%d", groupID), func(r *resty.Request) {
		r.SetBody(req)
	}, &group)
	if err != nil {
		a.log.WithError(err).Errorf("updating group %d failed", groupID)
		return nil, err
	}
	return &group, nil
}

// DeleteGroup removes a group by id.
func (a *Adapter) DeleteGroup(ctx context.Context, groupID int64) error {
	err := a.c.Request(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d", groupID), nil, nil)
	if err != nil {
		a.log.WithError(err).Errorf("deleting group %d failed", groupID)
	}
	return err
}

// GetGroupUsers lists users of a group, including non-members when filtered
// accordingly.
func (a *Adapter) GetGroupUsers(ctx context.Context, groupID int64, params models.ListParams) (*GroupUserList, error) {
	var list GroupUserList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/groups/%d/users", groupID), func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting users of group %d failed", groupID)
		return nil, err
	}
	return &list, nil
}

// GetGroupLastAdminRooms lists rooms in which the group is the last
// remaining admin. A non-empty result blocks group deletion.
func (a *Adapter) GetGroupLastAdminRooms(ctx context.Context, groupID int64) (*LastAdminGroupRoomList, error) {
	var list LastAdminGroupRoomList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/groups/%d/last_admin_rooms", groupID), nil, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting last admin rooms of group %d failed", groupID)
		return nil, err
	}
	return &list, nil
}

// GetGroupRoles lists roles assigned to the group.
func (a *Adapter) GetGroupRoles(ctx context.Context, groupID int64) (*models.RoleList, error) {
	var list models.RoleList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/groups/%d/roles", groupID), nil, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting roles of group %d failed", groupID)
		return nil, err
	}
	return &list, nil
}

// AddGroupUsers bulk-adds users to a group.
func (a *Adapter) AddGroupUsers(ctx context.Context, groupID int64, userIDs []int64) (*Group, error) {
	var group Group
	err := a.c.Request(ctx, http.MethodPost, fmt.Sprintf("/groups/%d/users", groupID), func(r *resty.Request) {
		r.SetBody(models.IDList{IDs: userIDs})
	}, &group)
	if err != nil {
		a.log.WithError(err).Errorf("adding users to group %d failed", groupID)
		return nil, err
	}
	return &group, nil
}

// DeleteGroupUsers bulk-removes users from a group.
func (a *Adapter) DeleteGroupUsers(ctx context.Context, groupID int64, userIDs []int64) (*Group, error) {
	var group Group
	err := a.c.Request(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d/users", groupID), func(r *resty.Request) {
		r.SetBody(models.IDList{IDs: userIDs})
	}, &group)
	if err != nil {
		a.log.WithError(err).Errorf("deleting users from group %d failed", groupID)
		return nil, err
	}
	return &group, nil
}

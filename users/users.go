// Package users wraps the /users resource group: user management. Requires
// the user manager role.
package users

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
		log: utils.Log.WithField("adapter", "users"),
	}
}

// CreateUser creates a new user.
func (a *Adapter) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	err := a.c.Request(ctx, http.MethodPost, "/users", func(r *resty.Request) {
		r.SetBody(req)
	}, &user)
	if err != nil {
		a.log.WithError(err).Error("creating user failed")
		return nil, err
	}
	return &user, nil
}

// GetUsers lists users, paged by params.
func (a *Adapter) GetUsers(ctx context.Context, params models.ListParams) (*UserList, error) {
	var list UserList
	err := a.c.Request(ctx, http.MethodGet, "/users", func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("getting users failed")
		return nil, err
	}
	return &list, nil
}

// GetUser fetches a single user by id.
func (a *Adapter) GetUser(ctx context.Context, userID int64) (*User, error) {
	var user User
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, &user)
	if err != nil {
		a.log.WithError(err).Errorf("getting user %d failed", userID)
		return nil, err
	}
	return &user, nil
}

// UpdateUser changes user metadata.
func (a *Adapter) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*User, error) {
	var user User
	err := a.c.Request(ctx, http.MethodPut, fmt.Sprintf("/users/%d", userID), func(r *resty.Request) {
		r.SetBody(req)
	}, &user)
	if err != nil {
		a.log.WithError(err).Errorf("updating user %d failed", userID)
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. Fails while the user is the last admin of any
// room, see GetUserLastAdminRooms.
func (a *Adapter) DeleteUser(ctx context.Context, userID int64) error {
	err := a.c.Request(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil, nil)
	if err != nil {
		a.log.WithError(err).Errorf("deleting user %d failed", userID)
	}
	return err
}

// GetUserLastAdminRooms lists rooms in which the user is the last remaining
// admin.
func (a *Adapter) GetUserLastAdminRooms(ctx context.Context, userID int64) (*LastAdminUserRoomList, error) {
	var list LastAdminUserRoomList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/users/%d/last_admin_rooms", userID), nil, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting last admin rooms of user %d failed", userID)
		return nil, err
	}
	return &list, nil
}

// GetUserRoles lists roles assigned to the user.
func (a *Adapter) GetUserRoles(ctx context.Context, userID int64) (*models.RoleList, error) {
	var list models.RoleList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/users/%d/roles", userID), nil, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting roles of user %d failed", userID)
		return nil, err
	}
	return &list, nil
}

// GetUserGroups lists the group memberships of a user.
func (a *Adapter) GetUserGroups(ctx context.Context, userID int64, params models.ListParams) (*UserGroupList, error) {
	var list UserGroupList
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/users/%d/groups", userID), func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Errorf("getting groups of user %d failed", userID)
		return nil, err
	}
	return &list, nil
}

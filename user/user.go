// Package user wraps the /user resource group: the authenticated account.
package user

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/semtisem/dracoon-go/client"
	"github.com/semtisem/dracoon-go/models"
	"github.com/semtisem/dracoon-go/pkg/utils"
)

type UserAccount struct {
	ID                 int64            `json:"id"`
	UserName           string           `json:"userName"`
	FirstName          string           `json:"firstName"`
	LastName           string           `json:"lastName"`
	Email              string           `json:"email,omitempty"`
	IsLocked           bool             `json:"isLocked"`
	HasManageableRooms bool             `json:"hasManageableRooms"`
	Language           string           `json:"language,omitempty"`
	MustSetEmail       bool             `json:"mustSetEmail,omitempty"`
	NeedsToAcceptEULA  bool             `json:"needsToAcceptEULA,omitempty"`
	LastLoginSuccessAt *time.Time       `json:"lastLoginSuccessAt,omitempty"`
	UserRoles          *models.RoleList `json:"userRoles,omitempty"`
}

// UpdateAccountRequest is the payload for UpdateAccount.
type UpdateAccountRequest struct {
	UserName   string `json:"userName,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Language   string `json:"language,omitempty"`
	AcceptEULA *bool  `json:"acceptEULA,omitempty"`
}

type Adapter struct {
	c   *client.Client
	log *logrus.Entry
}

func NewAdapter(c *client.Client) *Adapter {
	return &Adapter{
		c:   c,
		log: utils.Log.WithField("adapter", "user"),
	}
}

// GetAccount returns the account of the authenticated user.
func (a *Adapter) GetAccount(ctx context.Context) (*UserAccount, error) {
	var account UserAccount
	err := a.c.Request(ctx, http.MethodGet, "/user/account", nil, &account)
	if err != nil {
		a.log.WithError(err).Error("getting account failed")
		return nil, err
	}
	return &account, nil
}

// Ping checks that the user resource group answers for the current session.
func (a *Adapter) Ping(ctx context.Context) error {
	err := a.c.Request(ctx, http.MethodGet, "/user/ping", nil, nil)
	if err != nil {
		a.log.WithError(err).Error("ping failed")
	}
	return err
}

// UpdateAccount changes account settings of the authenticated user.
func (a *Adapter) UpdateAccount(ctx context.Context, req UpdateAccountRequest) (*UserAccount, error) {
	var account UserAccount
	err := a.c.Request(ctx, http.MethodPut, "/user/account", func(r *resty.Request) {
		r.SetBody(req)
	}, &account)
	if err != nil {
		a.log.WithError(err).Error("updating account failed")
		return nil, err
	}
	return &account, nil
}

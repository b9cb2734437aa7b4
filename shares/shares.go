// Package shares wraps the /shares resource group: download share links.
package shares

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
		log: utils.Log.WithField("adapter", "shares"),
	}
}

// CreateDownloadShare creates a share link for a node.
func (a *Adapter) CreateDownloadShare(ctx context.Context, req CreateDownloadShareRequest) (*DownloadShare, error) {
	var share DownloadShare
	err := a.c.Request(ctx, http.MethodPost, "/shares/downloads", func(r *resty.Request) {
		r.SetBody(req)
	}, &share)
	if err != nil {
		a.log.WithError(err).Error("creating download share failed")
		return nil, err
	}
	return &share, nil
}

// GetDownloadShares lists download shares, paged by params.
func (a *Adapter) GetDownloadShares(ctx context.Context, params models.ListParams) (*DownloadShareList, error) {
	var list DownloadShareList
	err := a.c.Request(ctx, http.MethodGet, "/shares/downloads", func(r *resty.Request) {
		r.SetQueryParams(params.Query())
	}, &list)
	if err != nil {
		a.log.WithError(err).Error("getting download shares failed")
		return nil, err
	}
	return &list, nil
}

// GetDownloadShare fetches a single download share by id.
func (a *Adapter) GetDownloadShare(ctx context.Context, shareID int64) (*DownloadShare, error) {
	var share DownloadShare
	err := a.c.Request(ctx, http.MethodGet, fmt.Sprintf("/shares/downloads/%d", shareID), nil, &share)
	if err != nil {
		a.log.WithError(err).Errorf("getting download share %d failed", shareID)
		return nil, err
	}
	return &share, nil
}

// UpdateDownloadShare changes share settings.
func (a *Adapter) UpdateDownloadShare(ctx context.Context, shareID int64, req UpdateDownloadShareRequest) (*DownloadShare, error) {
	var share DownloadShare
	err := a.c.Request(ctx, http.MethodPut, fmt.Sprintf("/shares/downloads/%d", shareID), func(r *resty.Request) {
		r.SetBody(req)
	}, &share)
	if err != nil {
		a.log.WithError(err).Errorf("updating download share %d failed", shareID)
		return nil, err
	}
	return &share, nil
}

// DeleteDownloadShare revokes a share link.
func (a *Adapter) DeleteDownloadShare(ctx context.Context, shareID int64) error {
	err := a.c.Request(ctx, http.MethodDelete, fmt.Sprintf("/shares/downloads/%d", shareID), nil, nil)
	if err != nil {
		a.log.WithError(err).Errorf("deleting download share %d failed", shareID)
	}
	return err
}

// Package dracoon is a client SDK for the DRACOON cloud file-storage REST
// API. The Dracoon struct bundles one adapter per API resource group around
// a shared session client that owns the OAuth2 token lifecycle.
package dracoon

import (
	"context"

	"github.com/semtisem/dracoon-go/client"
	"github.com/semtisem/dracoon-go/eventlog"
	"github.com/semtisem/dracoon-go/groups"
	"github.com/semtisem/dracoon-go/nodes"
	"github.com/semtisem/dracoon-go/public"
	"github.com/semtisem/dracoon-go/shares"
	"github.com/semtisem/dracoon-go/user"
	"github.com/semtisem/dracoon-go/users"
)

type Dracoon struct {
	Client *client.Client

	User     *user.Adapter
	Users    *users.Adapter
	Groups   *groups.Adapter
	Nodes    *nodes.Adapter
	Eventlog *eventlog.Adapter
	Shares   *shares.Adapter
	Public   *public.Adapter
}

func New(cfg client.Config) (*Dracoon, error) {
	c, err := client.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Dracoon{
		Client:   c,
		User:     user.NewAdapter(c),
		Users:    users.NewAdapter(c),
		Groups:   groups.NewAdapter(c),
		Nodes:    nodes.NewAdapter(c),
		Eventlog: eventlog.NewAdapter(c),
		Shares:   shares.NewAdapter(c),
		Public:   public.NewAdapter(c),
	}, nil
}

// Connect performs the selected OAuth2 flow on the underlying client.
func (d *Dracoon) Connect(ctx context.Context, creds client.Credentials) error {
	return d.Client.Connect(ctx, creds)
}

// Logout revokes the current token pair.
func (d *Dracoon) Logout(ctx context.Context) error {
	return d.Client.Logout(ctx)
}

package client

import (
	"context"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"storefront/internal/config"
)

// SnapClient exchanges a transaction descriptor for a Snap token and
// redirect URL at the payment provider.
type SnapClient interface {
	CreateTransaction(ctx context.Context, req *snap.Request) (*snap.Response, error)
}

type snapClientImpl struct {
	client snap.Client
}

func NewSnapClient(cfg *config.Midtrans) SnapClient {
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}

	c := snap.Client{}
	c.New(cfg.ServerKey, env)

	return &snapClientImpl{
		client: c,
	}
}

func (c *snapClientImpl) CreateTransaction(ctx context.Context, req *snap.Request) (*snap.Response, error) {
	resp, err := c.client.CreateTransaction(req)
	if err != nil {
		// *midtrans.Error carries the raw provider response; hand it up as a
		// plain error so callers decide what to expose.
		return nil, err
	}

	return resp, nil
}

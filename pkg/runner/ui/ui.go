package ui

import (
	"context"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/store"
	"github.com/gmoroz-comanager/co-console/pkg/tui/app"
)

// UI opens the interactive scheduling console.
type UI struct {
	Client *api.Client
	Cache  *store.Cache
}

func (u *UI) Do(ctx context.Context) error {
	return app.Run(u.Client, u.Cache)
}

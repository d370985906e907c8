package channels

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/printers"
	"github.com/gmoroz-comanager/co-console/pkg/store"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Channels lists the publish targets, or assigns a calendar color when
// SetColor is provided.
type Channels struct {
	ShowID   bool
	Bots     bool
	Channel  string
	SetColor string

	Client *api.Client
	Cache  *store.Cache
}

func (c *Channels) Do(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("can not list channels, no client")
	}
	if c.SetColor != "" {
		return c.setColor(ctx)
	}

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	fmt.Println("")

	if c.Bots {
		bots, err := c.Client.ListBots(ctx)
		if err != nil {
			return err
		}
		pp.Title("Bots")
		pp.Bots(bots)
		return nil
	}

	channels, err := c.Client.ListChannels(ctx)
	if err != nil {
		return err
	}
	if c.Cache != nil {
		_ = c.Cache.SaveChannels(channels)
	}
	pp.Title("Channels")
	pp.Channels(channels)
	return nil
}

func (c *Channels) setColor(ctx context.Context) error {
	if c.Channel == "" {
		return errors.New("--set-color requires a channel documentId")
	}
	hex := strings.ToUpper(c.SetColor)
	if !hexPattern.MatchString(hex) {
		return fmt.Errorf("invalid color %q, expected #RRGGBB", c.SetColor)
	}
	updated, err := c.Client.UpdateChannelColor(ctx, c.Channel, hex)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", updated.Title, hex)
	return nil
}

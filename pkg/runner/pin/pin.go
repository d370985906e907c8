package pin

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/printers"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/store"
)

// Pin manages the default drop target used by the "all channels" view. With
// no channel and Clear unset it shows the current pin.
type Pin struct {
	Channel string
	Clear   bool

	Client *api.Client
	Cache  *store.Cache
}

func (p *Pin) Do(ctx context.Context) error {
	if p.Cache == nil {
		return errors.New("can not manage pin, no cache")
	}
	if p.Clear {
		if err := p.Cache.SavePinned(""); err != nil {
			return err
		}
		fmt.Println("pin cleared")
		return nil
	}

	pp := printers.PrettyPrint{}
	if p.Channel == "" {
		pinned, err := p.Cache.Pinned()
		if err != nil {
			return err
		}
		if pinned == "" {
			pp.Pinned(nil)
			return nil
		}
		pp.Pinned(p.lookup(ctx, pinned))
		return nil
	}

	ch := p.lookup(ctx, p.Channel)
	if ch == nil {
		return fmt.Errorf("unknown channel %q", p.Channel)
	}
	if err := p.Cache.SavePinned(ch.DocumentID); err != nil {
		return err
	}
	pp.Pinned(ch)
	return nil
}

func (p *Pin) lookup(ctx context.Context, documentID string) *schedule.TelegramChannel {
	if p.Client != nil {
		if channels, err := p.Client.ListChannels(ctx); err == nil {
			if ch := schedule.FindChannel(channels, documentID); ch != nil {
				return ch
			}
		}
	}
	if channels, ok, err := p.Cache.Channels(); err == nil && ok {
		return schedule.FindChannel(channels, documentID)
	}
	return nil
}

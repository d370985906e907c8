package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmoroz-comanager/co-console/pkg/api"
)

// Publish sends an idea to a channel immediately, bypassing the scheduler.
type Publish struct {
	Idea    string
	Channel string

	Client *api.Client
}

func (p *Publish) Do(ctx context.Context) error {
	if p.Client == nil {
		return errors.New("can not publish, no client")
	}
	if p.Idea == "" || p.Channel == "" {
		return errors.New("publish requires an idea and a channel")
	}
	result, err := p.Client.PublishIdea(ctx, p.Idea, p.Channel)
	if err != nil {
		return err
	}
	if result.URL != "" {
		fmt.Printf("published (%s): %s\n", result.Status, result.URL)
		return nil
	}
	fmt.Printf("published (%s)\n", result.Status)
	return nil
}

package posts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gmoroz-comanager/co-console/pkg/api"
	"github.com/gmoroz-comanager/co-console/pkg/printers"
	"github.com/gmoroz-comanager/co-console/pkg/schedule"
	"github.com/gmoroz-comanager/co-console/pkg/timeutil"
)

// Posts lists the scheduled posts inside a window starting now.
type Posts struct {
	ShowID  bool
	Window  string
	Channel string

	Client *api.Client
}

func (p *Posts) Do(ctx context.Context) error {
	if p.Client == nil {
		return errors.New("can not list posts, no client")
	}
	window, canonical, err := timeutil.ParseWindow(p.Window)
	if err != nil {
		return err
	}
	start := time.Now()
	end := start.Add(window)

	posts, err := p.Client.ListScheduledPosts(ctx, start, end)
	if err != nil {
		return err
	}
	if p.Channel != "" {
		kept := posts[:0]
		for _, post := range posts {
			if post.Channel != nil && post.Channel.DocumentID == p.Channel {
				kept = append(kept, post)
			}
		}
		posts = kept
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ScheduledAt.Before(posts[j].ScheduledAt)
	})

	pp := printers.PrettyPrint{ShowID: p.ShowID}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Scheduled next %s (%s)", canonical, printers.Window(start, end)))
	pp.Posts(posts)
	return nil
}

// Move reschedules a post to a new instant, snapped to the grid.
type Move struct {
	DocumentID string
	At         string

	Client *api.Client
}

func (m *Move) Do(ctx context.Context) error {
	if m.Client == nil {
		return errors.New("can not move post, no client")
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", m.At, time.Local)
	if err != nil {
		return fmt.Errorf("invalid time %q, expected YYYY-MM-DD HH:MM: %w", m.At, err)
	}
	at = time.UnixMilli(timeutil.RoundTime(at.UnixMilli(), true))

	updated, err := m.Client.UpdateScheduledPost(ctx, m.DocumentID, api.PostDraft{
		ScheduledAt: at,
		Status:      schedule.StatusScheduled,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s moved to %s\n", updated.Title(), at.Format("Mon Jan 2 15:04"))
	return nil
}

// Remove deletes a scheduled post.
type Remove struct {
	DocumentID string

	Client *api.Client
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Client == nil {
		return errors.New("can not remove post, no client")
	}
	if err := r.Client.DeleteScheduledPost(ctx, r.DocumentID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", r.DocumentID)
	return nil
}

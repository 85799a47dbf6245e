package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/slack-go/slack"
	"github.com/yukikurage/slack-task-bot/internal/constants"
	"github.com/yukikurage/slack-task-bot/internal/slackapi"
)

// Resolution is the outcome of resolving mention tokens against the user
// directory. Resolved IDs keep mention order and are deduplicated; names that
// matched nobody end up in Unresolved so the caller can warn the creator.
type Resolution struct {
	UserIDs    []string
	Unresolved []string
}

// MentionResolver maps @name tokens to Slack user IDs via users.list. The
// directory changes rarely, so responses are cached for a short TTL.
type MentionResolver struct {
	client slackapi.Client

	mu        sync.Mutex
	directory []slack.User
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewMentionResolver creates a MentionResolver backed by the given client.
func NewMentionResolver(client slackapi.Client) *MentionResolver {
	return &MentionResolver{
		client: client,
		ttl:    constants.DirectoryCacheTTL,
		now:    time.Now,
	}
}

// Resolve matches each display name exactly (case-sensitive) against the
// directory's member names. Bots and deleted members never match. A directory
// fetch failure resolves nothing instead of failing the whole request.
func (r *MentionResolver) Resolve(ctx context.Context, names []string) Resolution {
	var res Resolution
	if len(names) == 0 {
		return res
	}

	members, err := r.members(ctx)
	if err != nil {
		log.Printf("users.list failed, dropping %d mention(s): %v", len(names), err)
		res.Unresolved = append(res.Unresolved, names...)
		return res
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		id := ""
		for _, m := range members {
			if m.IsBot || m.Deleted {
				continue
			}
			if m.Name == name {
				id = m.ID
				break
			}
		}
		if id == "" {
			res.Unresolved = append(res.Unresolved, name)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res.UserIDs = append(res.UserIDs, id)
	}

	return res
}

func (r *MentionResolver) members(ctx context.Context) ([]slack.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.directory != nil && r.now().Sub(r.fetchedAt) < r.ttl {
		return r.directory, nil
	}

	users, err := r.client.GetUsersContext(ctx)
	if err != nil {
		return nil, err
	}

	r.directory = users
	r.fetchedAt = r.now()
	return users, nil
}

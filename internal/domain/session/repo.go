package session

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) sessions() *firestore.CollectionRef {
	return r.fs.Collection("sessions")
}

// PutSession inserts or fully replaces a session record.
func (r *Repo) PutSession(ctx context.Context, s Session) error {
	_, err := r.sessions().Doc(s.ID).Set(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to put session: %w", err)
	}
	return nil
}

func (r *Repo) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	doc, err := r.sessions().Doc(sessionID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: session not found", ErrNotFound)
	}
	var s Session
	if err := doc.DataTo(&s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if s.ID == "" {
		s.ID = doc.Ref.ID
	}
	return &s, nil
}

func (r *Repo) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.sessions().Doc(sessionID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ListSessions reads the whole collection; callers filter in memory.
func (r *Repo) ListSessions(ctx context.Context) ([]Session, error) {
	it := r.sessions().Documents(ctx)
	defer it.Stop()

	out := []Session{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sessions: %w", err)
		}
		var s Session
		if err := doc.DataTo(&s); err != nil {
			continue
		}
		if s.ID == "" {
			s.ID = doc.Ref.ID
		}
		out = append(out, s)
	}
	return out, nil
}

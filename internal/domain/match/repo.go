package match

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

func (r *Repo) matches() *firestore.CollectionRef {
	return r.fs.Collection("matches")
}

func (r *Repo) PutMatch(ctx context.Context, m Match) error {
	_, err := r.matches().Doc(m.ID).Set(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to put match: %w", err)
	}
	return nil
}

func (r *Repo) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	doc, err := r.matches().Doc(matchID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: match not found", ErrNotFound)
	}
	var m Match
	if err := doc.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to parse match: %w", err)
	}
	if m.ID == "" {
		m.ID = doc.Ref.ID
	}
	return &m, nil
}

func (r *Repo) DeleteMatch(ctx context.Context, matchID string) error {
	_, err := r.matches().Doc(matchID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

func (r *Repo) ListMatches(ctx context.Context) ([]Match, error) {
	it := r.matches().Documents(ctx)
	defer it.Stop()

	out := []Match{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate matches: %w", err)
		}
		var m Match
		if err := doc.DataTo(&m); err != nil {
			continue
		}
		if m.ID == "" {
			m.ID = doc.Ref.ID
		}
		out = append(out, m)
	}
	return out, nil
}

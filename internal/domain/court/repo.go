package court

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

func (r *Repo) courts() *firestore.CollectionRef {
	return r.fs.Collection("courts")
}

func (r *Repo) PutCourt(ctx context.Context, c Court) error {
	_, err := r.courts().Doc(c.ID).Set(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to put court: %w", err)
	}
	return nil
}

func (r *Repo) GetCourt(ctx context.Context, courtID string) (*Court, error) {
	doc, err := r.courts().Doc(courtID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: court not found", ErrNotFound)
	}
	var c Court
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse court: %w", err)
	}
	if c.ID == "" {
		c.ID = doc.Ref.ID
	}
	return &c, nil
}

func (r *Repo) DeleteCourt(ctx context.Context, courtID string) error {
	_, err := r.courts().Doc(courtID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}
	return nil
}

func (r *Repo) ListCourts(ctx context.Context) ([]Court, error) {
	it := r.courts().OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	out := []Court{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate courts: %w", err)
		}
		var c Court
		if err := doc.DataTo(&c); err != nil {
			continue
		}
		if c.ID == "" {
			c.ID = doc.Ref.ID
		}
		out = append(out, c)
	}
	return out, nil
}

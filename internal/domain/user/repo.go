package user

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

func (r *Repo) users() *firestore.CollectionRef {
	return r.fs.Collection("users")
}

func (r *Repo) PutProfile(ctx context.Context, p Profile) error {
	_, err := r.users().Doc(p.UID).Set(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to put profile: %w", err)
	}
	return nil
}

func (r *Repo) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	doc, err := r.users().Doc(uid).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	var p Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if p.UID == "" {
		p.UID = doc.Ref.ID
	}
	return &p, nil
}

func (r *Repo) DeleteProfile(ctx context.Context, uid string) error {
	_, err := r.users().Doc(uid).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func (r *Repo) ListProfiles(ctx context.Context) ([]Profile, error) {
	it := r.users().Documents(ctx)
	defer it.Stop()

	out := []Profile{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}
		var p Profile
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		if p.UID == "" {
			p.UID = doc.Ref.ID
		}
		out = append(out, p)
	}
	return out, nil
}

package guest

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

func (r *Repo) applications() *firestore.CollectionRef {
	return r.fs.Collection("guestApplications")
}

// PutApplication inserts or fully replaces an application record.
func (r *Repo) PutApplication(ctx context.Context, a Application) error {
	_, err := r.applications().Doc(a.ID).Set(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to put application: %w", err)
	}
	return nil
}

func (r *Repo) GetApplication(ctx context.Context, applicationID string) (*Application, error) {
	doc, err := r.applications().Doc(applicationID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: application not found", ErrNotFound)
	}
	var a Application
	if err := doc.DataTo(&a); err != nil {
		return nil, fmt.Errorf("failed to parse application: %w", err)
	}
	if a.ID == "" {
		a.ID = doc.Ref.ID
	}
	return &a, nil
}

func (r *Repo) ListApplicationsBySession(ctx context.Context, sessionID string) ([]Application, error) {
	return r.list(ctx, r.applications().Where("sessionId", "==", sessionID).Documents(ctx))
}

func (r *Repo) ListApplicationsByUser(ctx context.Context, userID string) ([]Application, error) {
	return r.list(ctx, r.applications().Where("userId", "==", userID).Documents(ctx))
}

func (r *Repo) list(_ context.Context, it *firestore.DocumentIterator) ([]Application, error) {
	defer it.Stop()

	out := []Application{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate applications: %w", err)
		}
		var a Application
		if err := doc.DataTo(&a); err != nil {
			continue
		}
		if a.ID == "" {
			a.ID = doc.Ref.ID
		}
		out = append(out, a)
	}
	return out, nil
}

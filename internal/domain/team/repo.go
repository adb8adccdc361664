package team

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Repo is the Firestore-backed store. Teams and join requests are independent
// top-level collections related only by id fields; there is no cascading
// delete at the store level.
type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) teams() *firestore.CollectionRef {
	return r.fs.Collection("teams")
}

func (r *Repo) joinRequests() *firestore.CollectionRef {
	return r.fs.Collection("teamJoinRequests")
}

// PutTeam inserts or fully replaces a team record.
func (r *Repo) PutTeam(ctx context.Context, t Team) error {
	_, err := r.teams().Doc(t.ID).Set(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to put team: %w", err)
	}
	return nil
}

func (r *Repo) GetTeam(ctx context.Context, teamID string) (*Team, error) {
	doc, err := r.teams().Doc(teamID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: team not found", ErrNotFound)
	}
	var t Team
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to parse team: %w", err)
	}
	if t.ID == "" {
		t.ID = doc.Ref.ID
	}
	return &t, nil
}

func (r *Repo) DeleteTeam(ctx context.Context, teamID string) error {
	_, err := r.teams().Doc(teamID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (r *Repo) ListTeams(ctx context.Context) ([]Team, error) {
	iter := r.teams().Documents(ctx)
	defer iter.Stop()

	teams := []Team{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate teams: %w", err)
		}
		var t Team
		if err := doc.DataTo(&t); err != nil {
			continue
		}
		if t.ID == "" {
			t.ID = doc.Ref.ID
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// SearchTeamsByNamePrefix does a nameLower prefix scan. q must already be
// normalized to lower case.
func (r *Repo) SearchTeamsByNamePrefix(ctx context.Context, q string, limit int) ([]Team, error) {
	var it *firestore.DocumentIterator
	if q == "" {
		it = r.teams().OrderBy("createdAt", firestore.Desc).Limit(limit).Documents(ctx)
	} else {
		hi := q + ""
		it = r.teams().Where("nameLower", ">=", q).
			Where("nameLower", "<", hi).
			OrderBy("nameLower", firestore.Asc).
			Limit(limit).
			Documents(ctx)
	}
	defer it.Stop()

	out := []Team{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to search teams: %w", err)
		}
		var t Team
		if err := doc.DataTo(&t); err != nil {
			continue
		}
		if t.ID == "" {
			t.ID = doc.Ref.ID
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *Repo) PutJoinRequest(ctx context.Context, jr JoinRequest) error {
	_, err := r.joinRequests().Doc(jr.ID).Set(ctx, jr)
	if err != nil {
		return fmt.Errorf("failed to put join request: %w", err)
	}
	return nil
}

func (r *Repo) GetJoinRequest(ctx context.Context, requestID string) (*JoinRequest, error) {
	doc, err := r.joinRequests().Doc(requestID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: join request not found", ErrNotFound)
	}
	var jr JoinRequest
	if err := doc.DataTo(&jr); err != nil {
		return nil, fmt.Errorf("failed to parse join request: %w", err)
	}
	if jr.ID == "" {
		jr.ID = doc.Ref.ID
	}
	return &jr, nil
}

func (r *Repo) ListJoinRequestsByTeam(ctx context.Context, teamID string) ([]JoinRequest, error) {
	it := r.joinRequests().Where("teamId", "==", teamID).Documents(ctx)
	defer it.Stop()

	out := []JoinRequest{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate join requests: %w", err)
		}
		var jr JoinRequest
		if err := doc.DataTo(&jr); err != nil {
			continue
		}
		if jr.ID == "" {
			jr.ID = doc.Ref.ID
		}
		out = append(out, jr)
	}
	return out, nil
}

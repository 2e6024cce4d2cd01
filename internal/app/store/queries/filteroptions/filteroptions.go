// Package filteroptions computes the dashboard filter rows: teams annotated
// with the count of active memberships held by followed accounts.
package filteroptions

import (
	"context"
	"sync"

	establishmentstore "github.com/cedhub/cedhub/internal/app/store/establishments"
	followedstore "github.com/cedhub/cedhub/internal/app/store/followed"
	labstore "github.com/cedhub/cedhub/internal/app/store/laboratories"
	membershipstore "github.com/cedhub/cedhub/internal/app/store/memberships"
	teamstore "github.com/cedhub/cedhub/internal/app/store/teams"
	"github.com/cedhub/cedhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Option is one filter row. OptionType is always "team"; laboratory-level
// rows were retired from the dashboard.
type Option struct {
	models.Team

	MembershipCount int64  `json:"membershipCount"`
	OptionType      string `json:"optionType"`
}

// Query composes the team resolution and per-team counts.
type Query struct {
	Labs           *labstore.Store
	Teams          *teamstore.Store
	Memberships    *membershipstore.Store
	Followed       *followedstore.Store
	Establishments *establishmentstore.Store
}

// New builds a Query over the given database.
func New(db *mongo.Database) *Query {
	return &Query{
		Labs:           labstore.New(db),
		Teams:          teamstore.New(db),
		Memberships:    membershipstore.New(db),
		Followed:       followedstore.New(db),
		Establishments: establishmentstore.New(db),
	}
}

// ForHead returns filter rows for a laboratory head. When the user heads a
// laboratory, its teams are the candidates; otherwise the teams directly
// headed by the user (standalone teams) are used.
func (q *Query) ForHead(ctx context.Context, headID primitive.ObjectID) ([]Option, error) {
	lab, err := q.Labs.GetByHead(ctx, headID)
	if err != nil {
		return nil, err
	}

	var teams []models.Team
	if lab == nil {
		teams, err = q.Teams.ListByHead(ctx, headID)
	} else {
		teams, err = q.Teams.ListByLaboratory(ctx, lab.ID)
	}
	if err != nil {
		return nil, err
	}

	return q.countOptions(ctx, teams)
}

// ForDirector returns filter rows for a research director: every team under
// every laboratory of their establishment. A director with no establishment
// is establishmentstore.ErrNoEstablishment.
func (q *Query) ForDirector(ctx context.Context, directorID primitive.ObjectID) ([]Option, error) {
	est, err := q.Establishments.GetByDirector(ctx, directorID)
	if err != nil {
		return nil, err
	}

	labs, err := q.Labs.ListByEstablishment(ctx, est.ID)
	if err != nil {
		return nil, err
	}

	teams := []models.Team{}
	for _, lab := range labs {
		inner, err := q.Teams.ListByLaboratory(ctx, lab.ID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, inner...)
	}

	return q.countOptions(ctx, teams)
}

// countOptions computes each team's followed-membership count. Counts run
// concurrently, each goroutine writing only its own slot so the result
// keeps the input team order. One failed count fails the whole query.
func (q *Query) countOptions(ctx context.Context, teams []models.Team) ([]Option, error) {
	followedIDs, err := q.Followed.LinkedUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]Option, len(teams))
	errs := make([]error, len(teams))

	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		go func(i int, team models.Team) {
			defer wg.Done()
			count, err := q.Memberships.CountActiveFollowed(ctx, team.ID, followedIDs)
			if err != nil {
				errs[i] = err
				return
			}
			options[i] = Option{Team: team, MembershipCount: count, OptionType: "team"}
		}(i, team)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return options, nil
}

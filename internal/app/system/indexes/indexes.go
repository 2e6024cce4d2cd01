// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureFollowedUsers(ctx, db); err != nil {
		problems = append(problems, "followed_users: "+err.Error())
	}
	if err := ensureTeamMemberships(ctx, db); err != nil {
		problems = append(problems, "team_memberships: "+err.Error())
	}
	if err := ensureTeams(ctx, db); err != nil {
		problems = append(problems, "teams: "+err.Error())
	}
	if err := ensureLaboratories(ctx, db); err != nil {
		problems = append(problems, "laboratories: "+err.Error())
	}
	if err := ensureEstablishments(ctx, db); err != nil {
		problems = append(problems, "establishments: "+err.Error())
	}
	if err := ensurePhdStudents(ctx, db); err != nil {
		problems = append(problems, "phd_students: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			zap.L().Warn("create index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.Error(err))
			return err
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "roles", Value: 1}},
			Options: options.Index().SetName("by_roles"),
		},
	})
}

func ensureFollowedUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("followed_users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "authorId", Value: 1}},
			Options: options.Index().SetName("uniq_author_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("by_user_id"),
		},
	})
}

func ensureTeamMemberships(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("team_memberships"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "team_id", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("by_team_active"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("by_user_active"),
		},
	})
}

func ensureTeams(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("teams"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "laboratory_id", Value: 1}},
			Options: options.Index().SetName("by_laboratory"),
		},
		{
			Keys:    bson.D{{Key: "head_id", Value: 1}},
			Options: options.Index().SetName("by_head"),
		},
		{
			Keys:    bson.D{{Key: "abbreviation", Value: 1}},
			Options: options.Index().SetName("by_abbreviation"),
		},
	})
}

func ensureLaboratories(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("laboratories"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "head_id", Value: 1}},
			Options: options.Index().SetName("by_head"),
		},
		{
			Keys:    bson.D{{Key: "abbreviation", Value: 1}},
			Options: options.Index().SetName("by_abbreviation"),
		},
		{
			Keys:    bson.D{{Key: "establishment_id", Value: 1}},
			Options: options.Index().SetName("by_establishment"),
		},
	})
}

func ensureEstablishments(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("establishments"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "research_director_id", Value: 1}},
			Options: options.Index().SetName("by_director"),
		},
	})
}

func ensurePhdStudents(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("phd_students"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "supervisor", Value: 1}},
			Options: options.Index().SetName("by_supervisor"),
		},
	})
}

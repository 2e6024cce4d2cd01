// internal/app/store/followed/followedstore.go
package followedstore

import (
	"context"
	"errors"
	"time"

	"github.com/cedhub/cedhub/internal/app/system/sanitize"
	"github.com/cedhub/cedhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("followed_users")}
}

var (
	// ErrAlreadyFollowing is returned when the authorId is already tracked.
	ErrAlreadyFollowing = errors.New("author is already followed")
	// ErrNotFollowing is returned when no record matches the authorId.
	ErrNotFollowing = errors.New("author is not followed")
)

// Follow creates a followed-author record. Author uniqueness is enforced by
// the unique index on authorId.
func (s *Store) Follow(ctx context.Context, fu models.FollowedUser) (models.FollowedUser, error) {
	fu.ID = primitive.NewObjectID()
	fu.Name = sanitize.Text(fu.Name)
	if fu.Publications == nil {
		fu.Publications = []models.Publication{}
	}
	for i := range fu.Publications {
		fu.Publications[i].Title = sanitize.Text(fu.Publications[i].Title)
	}
	fu.FollowedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, fu); err != nil {
		if wafflemongo.IsDup(err) {
			return models.FollowedUser{}, ErrAlreadyFollowing
		}
		return models.FollowedUser{}, err
	}
	return fu, nil
}

// Patch holds the fields an update may change on a followed-author record.
type Patch struct {
	Name         *string
	UserID       *primitive.ObjectID
	Publications []models.Publication
}

// ApplyPatch merges the given fields into the record matched by authorId.
func (s *Store) ApplyPatch(ctx context.Context, authorID string, p Patch) error {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = sanitize.Text(*p.Name)
	}
	if p.UserID != nil {
		set["user_id"] = *p.UserID
	}
	if p.Publications != nil {
		pubs := make([]models.Publication, len(p.Publications))
		copy(pubs, p.Publications)
		for i := range pubs {
			pubs[i].Title = sanitize.Text(pubs[i].Title)
		}
		set["publications"] = pubs
	}
	// An empty patch still answers ErrNotFollowing for an unknown author,
	// same as a patch with fields.
	if len(set) == 0 {
		err := s.c.FindOne(ctx, bson.M{"authorId": authorID},
			options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
		if err == mongo.ErrNoDocuments {
			return ErrNotFollowing
		}
		return err
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"authorId": authorID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFollowing
	}
	return nil
}

// Unfollow deletes the record matched by authorId.
func (s *Store) Unfollow(ctx context.Context, authorID string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"authorId": authorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFollowing
	}
	return nil
}

// GetByAuthorID loads the record for an external author id.
// Returns ErrNotFollowing when the author is not tracked.
func (s *Store) GetByAuthorID(ctx context.Context, authorID string) (*models.FollowedUser, error) {
	var fu models.FollowedUser
	if err := s.c.FindOne(ctx, bson.M{"authorId": authorID}).Decode(&fu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFollowing
		}
		return nil, err
	}
	return &fu, nil
}

// GetByUserID loads a followed record linked to a local account, if any.
// A nil record with nil error means the user is not a followed author.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.FollowedUser, error) {
	var fu models.FollowedUser
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&fu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &fu, nil
}

// ListAll returns every followed-author record.
func (s *Store) ListAll(ctx context.Context) ([]models.FollowedUser, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.FollowedUser{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LinkedUserIDs returns the local account ids of every followed author that
// has one. Filter-option counts restrict memberships to this set.
func (s *Store) LinkedUserIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(all))
	for _, fu := range all {
		if fu.UserID != nil {
			ids = append(ids, *fu.UserID)
		}
	}
	return ids, nil
}

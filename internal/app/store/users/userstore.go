// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cedhub/cedhub/internal/app/system/normalize"
	"github.com/cedhub/cedhub/internal/app/system/roles"
	"github.com/cedhub/cedhub/internal/app/system/sanitize"
	"github.com/cedhub/cedhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the platform hashes with.
const bcryptCost = 10

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrUserNotFound is returned when a lookup matches no user.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrBadRole rejects role values outside the assignable set.
	ErrBadRole = fmt.Errorf("incorrect roles value: must be one of %v", roles.Assignable)
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetProfilePicture loads only the profile picture filename for a user.
func (s *Store) GetProfilePicture(ctx context.Context, id primitive.ObjectID) (string, error) {
	var u struct {
		ProfilePicture string `bson:"profilePicture"`
	}
	opts := options.FindOne().SetProjection(bson.M{"profilePicture": 1})
	if err := s.c.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return u.ProfilePicture, nil
}

// Create inserts a new account with a temporary generated password.
// The role must be exactly one assignable value; the plaintext password is
// kept in generatedPassword until the user's first real update so it can be
// emailed to them.
func (s *Store) Create(ctx context.Context, email, password, role string, creatorID *primitive.ObjectID) (models.User, error) {
	if !roles.IsAssignable(role) {
		return models.User{}, ErrBadRole
	}

	now := time.Now().UTC()
	u := models.User{
		ID:                primitive.NewObjectID(),
		Email:             normalize.Email(email),
		Password:          password,
		GeneratedPassword: password,
		Roles:             []string{role},
		HasConfirmed:      false,
		CreatorID:         creatorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Patch holds the fields a profile update may change. Nil pointers are left
// untouched; anything outside this allow-list never reaches the document.
type Patch struct {
	Email          *string
	FirstName      *string
	LastName       *string
	ProfilePicture *string
}

// ApplyPatch merges the allow-listed fields into the user document. Every
// successful update confirms the account and clears the temporary generated
// password, whatever fields were supplied.
func (s *Store) ApplyPatch(ctx context.Context, id primitive.ObjectID, p Patch) (int64, error) {
	set := bson.M{
		"hasConfirmed": true,
		"updated_at":   time.Now().UTC(),
	}
	if p.Email != nil {
		set["email"] = normalize.Email(*p.Email)
	}
	if p.FirstName != nil {
		set["firstName"] = sanitize.Text(normalize.Name(*p.FirstName))
	}
	if p.LastName != nil {
		set["lastName"] = sanitize.Text(normalize.Name(*p.LastName))
	}
	if p.ProfilePicture != nil {
		set["profilePicture"] = *p.ProfilePicture
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   set,
		"$unset": bson.M{"generatedPassword": ""},
	})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return res.ModifiedCount, nil
}

// UpdatePassword hashes the password with bcrypt and stores it.
func (s *Store) UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	_, err = s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password":   string(hash),
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// SetProfilePicture persists the stored image filename on the user record.
func (s *Store) SetProfilePicture(ctx context.Context, id primitive.ObjectID, filename string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"profilePicture": filename,
		"updated_at":     time.Now().UTC(),
	}})
	return err
}

// Delete removes a user by ID. Returns the number of documents deleted
// (0 or 1); deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAll returns every user with the password field excluded from the read.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole returns the users carrying the given role.
func (s *Store) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"roles": role}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

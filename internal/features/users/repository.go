package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/rakibdev/takealot-server/pkg/errors"
)

// opTimeout bounds every store call so a hung MongoDB node cannot hang the
// request forever.
const opTimeout = 10 * time.Second

// Repository handles database interactions for the users collection
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates the unique email
// index. The index, not an application-level existence check, is what
// guarantees one account per email under concurrent registrations.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{collection: collection}
}

// Create inserts a new user. A duplicate email surfaces as ErrDuplicateEmail
// straight from the insert; there is no read-then-write window.
func (r *Repository) Create(ctx context.Context, user *User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateEmail
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// FindByEmail finds a user by their email address. A missing user is
// (nil, nil), not an error.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateFields sets the given fields on the user with the given hex id.
func (r *Repository) UpdateFields(ctx context.Context, userID string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return result, nil
}

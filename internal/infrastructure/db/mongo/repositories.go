package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
)

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) repositories.UserRepository {
	return &UserRepo{collection: db.Collection(usersCollection)}
}

func (r *UserRepo) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	if _, err := r.collection.InsertOne(ctx, newUserDocument(user.GetUser())); err != nil {
		return nil, translateWriteError(err)
	}
	return r.FindById(ctx, user.Id)
}

func (r *UserRepo) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"email": entities.NormalizeEmail(email)})
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	return err
}

// translateWriteError maps a unique index violation on email to
// repositories.ErrDuplicateEmail.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*entities.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

type PostRepo struct {
	collection *mongo.Collection
}

func NewPostRepo(db *mongo.Database) repositories.PostRepository {
	return &PostRepo{collection: db.Collection(postsCollection)}
}

func (r *PostRepo) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	if _, err := r.collection.InsertOne(ctx, newPostDocument(post)); err != nil {
		return nil, err
	}
	return r.FindById(ctx, post.Id)
}

func (r *PostRepo) FindById(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var doc postDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *PostRepo) FindAll(ctx context.Context) ([]*entities.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []postDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	posts := make([]*entities.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, doc.toEntity())
	}
	return posts, nil
}

// Update replaces the whole document. Concurrent updates are last write
// wins; a post deleted in the meantime is reported as not found.
func (r *PostRepo) Update(ctx context.Context, post *entities.Post) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": post.Id.String()}, newPostDocument(post))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entities.ErrPostNotFound
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	return err
}

func (r *PostRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user": userID.String()})
	return err
}

type ProfileRepo struct {
	collection *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) repositories.ProfileRepository {
	return &ProfileRepo{collection: db.Collection(profilesCollection)}
}

func (r *ProfileRepo) FindByUserId(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var doc profileDocument
	if err := r.collection.FindOne(ctx, bson.M{"user": userID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *ProfileRepo) FindAll(ctx context.Context) ([]*entities.Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []profileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	profiles := make([]*entities.Profile, 0, len(docs))
	for _, doc := range docs {
		profiles = append(profiles, doc.toEntity())
	}
	return profiles, nil
}

// Save upserts on the owning user so a user never has two profiles.
func (r *ProfileRepo) Save(ctx context.Context, profile *entities.Profile) error {
	doc := newProfileDocument(profile)
	existing, err := r.FindByUserId(ctx, profile.UserId)
	if err != nil {
		return err
	}
	if existing != nil {
		doc.ID = existing.Id.String()
	}
	_, err = r.collection.ReplaceOne(ctx, bson.M{"user": doc.User}, doc, options.Replace().SetUpsert(true))
	return err
}

func (r *ProfileRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user": userID.String()})
	return err
}

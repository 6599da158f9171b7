package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
)

func TestPostDocumentRoundTrip(t *testing.T) {
	author := entities.NewUser("alice", "alice@x.com", "//avatar", "hash")
	liker := uuid.New()

	withActivity, err := entities.NewPost(author, "hello")
	require.NoError(t, err)
	require.NoError(t, withActivity.Like(liker))
	_, err = withActivity.AddComment(author, "first")
	require.NoError(t, err)

	bare, err := entities.NewPost(author, "quiet")
	require.NoError(t, err)

	tests := []struct {
		name string
		post *entities.Post
	}{
		{"likes and comments", withActivity},
		{"no activity", bare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newPostDocument(tt.post)
			assert.Equal(t, tt.post.Id.String(), doc.ID)
			assert.Equal(t, tt.post.UserId.String(), doc.User)

			got := doc.toEntity()
			assert.Equal(t, tt.post, got)
		})
	}
}

func TestPostDocumentMalformedIDs(t *testing.T) {
	doc := postDocument{
		ID:    "not-a-uuid",
		User:  "also-bad",
		Likes: []likeDocument{{ID: "x", User: "y"}},
	}
	post := doc.toEntity()
	assert.Equal(t, uuid.Nil, post.Id)
	assert.Equal(t, uuid.Nil, post.UserId)
	require.Len(t, post.Likes, 1)
	assert.Equal(t, uuid.Nil, post.Likes[0].UserId)
	assert.NotNil(t, post.Comments)
}

func TestProfileDocumentRoundTrip(t *testing.T) {
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)

	full := entities.NewProfile(uuid.New())
	full.Apply(entities.ProfileFields{
		Status: "Developer",
		Skills: "go, sql",
		Social: entities.Social{Twitter: "https://twitter.com/alice"},
	})
	full.AddExperience(entities.Experience{Title: "Dev", Company: "Acme", From: from, To: &to})
	full.AddEducation(entities.Education{School: "42", Degree: "None", FieldOfStudy: "CS", From: from, Current: true})

	tests := []struct {
		name    string
		profile *entities.Profile
	}{
		{"experience and education", full},
		{"fresh profile", entities.NewProfile(uuid.New())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newProfileDocument(tt.profile).toEntity()
			assert.Equal(t, tt.profile, got)
		})
	}

	got := newProfileDocument(full).toEntity()
	require.Len(t, got.Experience, 1)
	require.NotNil(t, got.Experience[0].To)
	require.Len(t, got.Education, 1)
	assert.Nil(t, got.Education[0].To)
}

func TestProfileDocumentNilSlices(t *testing.T) {
	doc := profileDocument{ID: uuid.NewString(), User: uuid.NewString(), Status: "Dev"}

	profile := doc.toEntity()
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
	assert.NotNil(t, profile.Experience)
	assert.Empty(t, profile.Experience)
	assert.NotNil(t, profile.Education)
	assert.Empty(t, profile.Education)
}

func TestUserDocumentRoundTrip(t *testing.T) {
	user := entities.NewUser("alice", "Alice@X.com", "//avatar", "hash")
	assert.Equal(t, user, newUserDocument(user).toEntity())
}

func TestTranslateWriteError(t *testing.T) {
	duplicate := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, translateWriteError(duplicate), repositories.ErrDuplicateEmail)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateWriteError(other))
}

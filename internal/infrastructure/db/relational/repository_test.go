package relational

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "hub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	return db
}

func createUser(t *testing.T, repo *UserRepository, name string) *entities.User {
	t.Helper()
	vu, err := entities.NewValidatedUser(entities.NewUser(name, name+"@x.com", "//avatar", "hash"))
	require.NoError(t, err)
	user, err := repo.Create(context.Background(), vu)
	require.NoError(t, err)
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t)).(*UserRepository)

	alice := createUser(t, repo, "alice")

	found, err := repo.FindByEmail(ctx, " ALICE@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, alice.Id, found.Id)
	assert.Equal(t, "hash", found.Password)

	missing, err := repo.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	vu, err := entities.NewValidatedUser(entities.NewUser("other", "alice@x.com", "", "hash"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, vu)
	assert.Error(t, err, "email is unique")

	require.NoError(t, repo.Delete(ctx, alice.Id))
	gone, err := repo.FindById(ctx, alice.Id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t)).(*UserRepository)
	createUser(t, repo, "alice")

	vu, err := entities.NewValidatedUser(entities.NewUser("Alice Two", "alice@x.com", "//avatar", "hash"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, vu)
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestPostRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	repo := NewPostRepository(db)

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	first, err := entities.NewPost(alice, "first")
	require.NoError(t, err)
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	_, err = repo.Create(ctx, first)
	require.NoError(t, err)

	second, err := entities.NewPost(bob, "second")
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.Id, all[0].Id, "most recent first")
	assert.Equal(t, first.Id, all[1].Id)

	require.NoError(t, first.Like(bob.Id))
	comment, err := first.AddComment(bob, "nice")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, first))

	reloaded, err := repo.FindById(ctx, first.Id)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	require.Len(t, reloaded.Likes, 1)
	assert.Equal(t, bob.Id, reloaded.Likes[0].UserId)
	require.Len(t, reloaded.Comments, 1)
	assert.Equal(t, comment.Id, reloaded.Comments[0].Id)
	assert.Equal(t, "nice", reloaded.Comments[0].Text)

	require.NoError(t, repo.DeleteByUser(ctx, alice.Id))
	gone, err := repo.FindById(ctx, first.Id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, repo.Delete(ctx, second.Id))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	missing, err := repo.FindById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostUpdateAfterDeleteDoesNotRestore(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	repo := NewPostRepository(db)

	alice := createUser(t, users, "alice")
	post, err := entities.NewPost(alice, "hello")
	require.NoError(t, err)
	_, err = repo.Create(ctx, post)
	require.NoError(t, err)

	loaded, err := repo.FindById(ctx, post.Id)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.NoError(t, repo.Delete(ctx, post.Id))
	require.NoError(t, loaded.Like(alice.Id))

	err = repo.Update(ctx, loaded)
	assert.ErrorIs(t, err, entities.ErrPostNotFound)

	gone, err := repo.FindById(ctx, post.Id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProfileRepositorySaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(openTestDB(t))
	userID := uuid.New()

	profile := entities.NewProfile(userID)
	profile.Apply(entities.ProfileFields{Status: "Developer", Skills: "go, sql"})
	require.NoError(t, repo.Save(ctx, profile))

	profile.Apply(entities.ProfileFields{Status: "Lead", Skills: "go"})
	profile.AddExperience(entities.Experience{Title: "Dev", Company: "Acme", From: time.Now().UTC()})
	require.NoError(t, repo.Save(ctx, profile))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	found, err := repo.FindByUserId(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Lead", found.Status)
	assert.Equal(t, []string{"go"}, found.Skills)
	require.Len(t, found.Experience, 1)
	assert.Equal(t, "Acme", found.Experience[0].Company)

	require.NoError(t, repo.DeleteByUser(ctx, userID))
	gone, err := repo.FindByUserId(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

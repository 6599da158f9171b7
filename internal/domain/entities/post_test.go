package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthor(t *testing.T, name string) *User {
	t.Helper()
	return NewUser(name, name+"@x.com", "//avatar/"+name, "secret1")
}

func TestNewPostCopiesAuthor(t *testing.T) {
	alice := newAuthor(t, "alice")

	post, err := NewPost(alice, "  hello  ")
	require.NoError(t, err)

	assert.Equal(t, alice.Id, post.UserId)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, "alice", post.Name)
	assert.Equal(t, "//avatar/alice", post.Avatar)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
}

func TestNewPostRequiresText(t *testing.T) {
	_, err := NewPost(newAuthor(t, "alice"), "   ")
	assert.Error(t, err)
}

func TestLikeTwiceKeepsOneEntry(t *testing.T) {
	alice := newAuthor(t, "alice")
	post, err := NewPost(alice, "hello")
	require.NoError(t, err)

	require.NoError(t, post.Like(alice.Id))
	assert.ErrorIs(t, post.Like(alice.Id), ErrAlreadyLiked)

	require.Len(t, post.Likes, 1)
	assert.Equal(t, alice.Id, post.Likes[0].UserId)
}

func TestLikesAreNewestFirst(t *testing.T) {
	alice, bob := newAuthor(t, "alice"), newAuthor(t, "bob")
	post, err := NewPost(alice, "hello")
	require.NoError(t, err)

	require.NoError(t, post.Like(alice.Id))
	require.NoError(t, post.Like(bob.Id))

	require.Len(t, post.Likes, 2)
	assert.Equal(t, bob.Id, post.Likes[0].UserId)
	assert.Equal(t, alice.Id, post.Likes[1].UserId)
}

func TestUnlikeRemovesOnlyCallersLike(t *testing.T) {
	alice, bob := newAuthor(t, "alice"), newAuthor(t, "bob")
	post, err := NewPost(alice, "hello")
	require.NoError(t, err)
	require.NoError(t, post.Like(alice.Id))
	require.NoError(t, post.Like(bob.Id))

	require.NoError(t, post.Unlike(alice.Id))
	require.Len(t, post.Likes, 1)
	assert.Equal(t, bob.Id, post.Likes[0].UserId)

	assert.ErrorIs(t, post.Unlike(alice.Id), ErrNotLiked)
	assert.Len(t, post.Likes, 1)
}

func TestRemoveComment(t *testing.T) {
	alice, bob := newAuthor(t, "alice"), newAuthor(t, "bob")
	post, err := NewPost(alice, "hello")
	require.NoError(t, err)

	first, err := post.AddComment(bob, "first")
	require.NoError(t, err)
	second, err := post.AddComment(bob, "second")
	require.NoError(t, err)
	third, err := post.AddComment(alice, "third")
	require.NoError(t, err)

	t.Run("unknown comment", func(t *testing.T) {
		assert.ErrorIs(t, post.RemoveComment(uuid.New(), bob.Id), ErrCommentNotFound)
		assert.Len(t, post.Comments, 3)
	})

	t.Run("not the owner", func(t *testing.T) {
		assert.ErrorIs(t, post.RemoveComment(third.Id, bob.Id), ErrNotOwner)
		assert.Len(t, post.Comments, 3)
	})

	t.Run("removes the matched comment", func(t *testing.T) {
		require.NoError(t, post.RemoveComment(first.Id, bob.Id))
		require.Len(t, post.Comments, 2)
		assert.Equal(t, third.Id, post.Comments[0].Id)
		assert.Equal(t, second.Id, post.Comments[1].Id)
	})
}

func TestAuthorizeOwner(t *testing.T) {
	alice, bob := newAuthor(t, "alice"), newAuthor(t, "bob")
	post, err := NewPost(alice, "hello")
	require.NoError(t, err)

	assert.NoError(t, AuthorizeOwner(post, alice.Id))
	assert.ErrorIs(t, AuthorizeOwner(post, bob.Id), ErrNotOwner)
	assert.ErrorIs(t, AuthorizeOwner(post, uuid.Nil), ErrNotOwner)
}

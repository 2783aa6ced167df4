package users

import (
	"context"
	"errors"
	"medisense-service/internal/app/models"
	"medisense-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FindByUsername returns the stored user", func(mt *mtest.T) {
		repo := NewUserMongoRepository(mt.Client, "chatgpt_app", "users")
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chatgpt_app.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "alice"},
			{Key: "password", Value: "$2a$10$hash"},
		}))

		user, err := repo.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$10$hash", user.Password)
	})

	mt.Run("FindByUsername returns nil for unknown user", func(mt *mtest.T) {
		repo := NewUserMongoRepository(mt.Client, "chatgpt_app", "users")

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chatgpt_app.users", mtest.FirstBatch))

		user, err := repo.FindByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	mt.Run("CreateUser inserts the document", func(mt *mtest.T) {
		repo := NewUserMongoRepository(mt.Client, "chatgpt_app", "users")

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		userID, err := repo.CreateUser(context.Background(), &models.User{Username: "alice", Password: "hash"})
		require.NoError(t, err)
		assert.NotEmpty(t, userID)
	})

	mt.Run("CreateUser maps duplicate key to duplicate user", func(mt *mtest.T) {
		repo := NewUserMongoRepository(mt.Client, "chatgpt_app", "users")

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error collection: chatgpt_app.users index: username_unique",
		}))

		_, err := repo.CreateUser(context.Background(), &models.User{Username: "alice", Password: "hash"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "Username already exists! Please choose a different username.", customErr.ClientMessage)
	})

	mt.Run("EnsureIndexes succeeds", func(mt *mtest.T) {
		repo := NewUserMongoRepository(mt.Client, "chatgpt_app", "users")

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(t, repo.EnsureIndexes(context.Background()))
	})

	mt.Run("EnsureIndexes reports command errors", func(mt *mtest.T) {
		repo := NewUserMongoRepository(mt.Client, "chatgpt_app", "users")

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index options conflict",
			Name:    "IndexOptionsConflict",
		}))

		assert.Error(t, repo.EnsureIndexes(context.Background()))
	})
}

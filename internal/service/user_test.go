package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/service/ports/mocks"
)

func TestUserService_Create(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{DisplayName: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.NotEmpty(t, user.ID)
	assert.Nil(t, user.Email)
}

func TestUserService_Create_EmptyName(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_NameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDisplayNameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{DisplayName: "Alice"})

	assert.ErrorIs(t, err, domain.ErrDisplayNameTaken)
}

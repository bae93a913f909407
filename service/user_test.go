package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/myErrors"
)

func TestSetUsername_LengthValidation(t *testing.T) {
	db, _ := newMockDB(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(db, userRepo, newTestLogger(t))

	testCases := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"太短", "ab", true},
		{"下限", "abc", false},
		{"上限", strings.Repeat("a", 30), false},
		{"太长", strings.Repeat("a", 31), true},
		{"中文按字符数计", "烟友小王", false},
		{"空", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.wantErr {
				userRepo.On("SetUsername", mock.Anything, int64(100), tc.username).Return(nil).Once()
			}
			err := svc.SetUsername(context.Background(), 100, tc.username)
			if tc.wantErr {
				assert.ErrorIs(t, err, myErrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	userRepo.AssertExpectations(t)
}

func TestSetPhoneNumber_EmptyRejected(t *testing.T) {
	db, _ := newMockDB(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(db, userRepo, newTestLogger(t))

	err := svc.SetPhoneNumber(context.Background(), 100, "")
	assert.ErrorIs(t, err, myErrors.ErrValidation)
	userRepo.AssertNotCalled(t, "SetPhoneNumber", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureUser_Idempotent(t *testing.T) {
	db, _ := newMockDB(t)
	userRepo := new(mockUserRepo)
	svc := NewUserService(db, userRepo, newTestLogger(t))

	user := &entities.User{UserID: 100, RankScore: 42}
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, int64(100)).Return(user, nil).Twice()

	first, err := svc.EnsureUser(context.Background(), 100)
	require.NoError(t, err)
	second, err := svc.EnsureUser(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, int64(42), second.RankScore)
	userRepo.AssertExpectations(t)
}

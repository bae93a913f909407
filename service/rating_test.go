package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/myErrors"
)

func TestRateItem_ScoreOutOfRange(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewRatingService(db, new(mockRatingRepo), new(mockItemRepo), new(mockQuestionRepo), new(mockUserRepo), newTestLogger(t))

	for _, score := range []int{0, -1, 6} {
		result, err := svc.RateItem(context.Background(), 100, &dto.RateItemRequest{ItemID: "item-1", Score: score})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, myErrors.ErrValidation)
	}
}

func TestRateItem_Success(t *testing.T) {
	db, dbMock := newMockDB(t)
	ratingRepo := new(mockRatingRepo)
	itemRepo := new(mockItemRepo)
	userRepo := new(mockUserRepo)
	svc := NewRatingService(db, ratingRepo, itemRepo, new(mockQuestionRepo), userRepo, newTestLogger(t))

	const userID = int64(100)
	const itemID = "item-1"

	itemRepo.On("GetItemByID", mock.Anything, itemID).
		Return(&entities.Item{AverageRating: 4.0, RatingCount: 3}, nil)
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, userID).
		Return(&entities.User{UserID: userID}, nil)
	ratingRepo.On("CreateItemRating", mock.Anything, mock.Anything, mock.MatchedBy(func(r *entities.ItemRating) bool {
		return r.UserID == userID && r.ItemID == itemID && r.Score == 5
	})).Return(nil)
	ratingRepo.On("RecomputeItemAggregates", mock.Anything, mock.Anything, itemID).
		Return(4.25, int64(4), nil)
	itemRepo.On("UpdateRatingAggregates", mock.Anything, mock.Anything, itemID, 4.25, int64(4)).
		Return(nil)
	userRepo.On("AdjustRankScore", mock.Anything, mock.Anything, userID, int64(constant.ScoreAwardRating)).
		Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	result, err := svc.RateItem(context.Background(), userID, &dto.RateItemRequest{ItemID: itemID, Score: 5})
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.Equal(t, 4.25, result.AverageRating)
	assert.Equal(t, int64(4), result.RatingCount)

	ratingRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRateItem_DuplicateIsIdempotent(t *testing.T) {
	db, dbMock := newMockDB(t)
	ratingRepo := new(mockRatingRepo)
	itemRepo := new(mockItemRepo)
	userRepo := new(mockUserRepo)
	svc := NewRatingService(db, ratingRepo, itemRepo, new(mockQuestionRepo), userRepo, newTestLogger(t))

	const userID = int64(100)
	const itemID = "item-1"

	// 商品行上的聚合快照已过期（事务前有别人打过分），
	// 重复打分必须在事务内从评分行重算后返回
	itemRepo.On("GetItemByID", mock.Anything, itemID).
		Return(&entities.Item{AverageRating: 3.5, RatingCount: 8}, nil)
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, userID).
		Return(&entities.User{UserID: userID}, nil)
	ratingRepo.On("CreateItemRating", mock.Anything, mock.Anything, mock.Anything).
		Return(myErrors.ErrDuplicateRating)
	ratingRepo.On("RecomputeItemAggregates", mock.Anything, mock.Anything, itemID).
		Return(3.7, int64(9), nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	result, err := svc.RateItem(context.Background(), userID, &dto.RateItemRequest{ItemID: itemID, Score: 2})
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.Equal(t, 3.7, result.AverageRating)
	assert.Equal(t, int64(9), result.RatingCount)

	// 聚合写回和积分奖励都不应发生
	itemRepo.AssertNotCalled(t, "UpdateRatingAggregates", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "AdjustRankScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRateQuestion_Success(t *testing.T) {
	db, dbMock := newMockDB(t)
	ratingRepo := new(mockRatingRepo)
	questionRepo := new(mockQuestionRepo)
	userRepo := new(mockUserRepo)
	svc := NewRatingService(db, ratingRepo, new(mockItemRepo), questionRepo, userRepo, newTestLogger(t))

	const userID = int64(200)
	const questionID = "question-1"

	questionRepo.On("GetQuestionByID", mock.Anything, questionID).
		Return(&entities.TechQuestion{AverageRating: 0, RatingCount: 0}, nil)
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, userID).
		Return(&entities.User{UserID: userID}, nil)
	ratingRepo.On("CreateQuestionRating", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ratingRepo.On("RecomputeQuestionAggregates", mock.Anything, mock.Anything, questionID).
		Return(4.0, int64(1), nil)
	questionRepo.On("UpdateRatingAggregates", mock.Anything, mock.Anything, questionID, 4.0, int64(1)).
		Return(nil)
	userRepo.On("AdjustRankScore", mock.Anything, mock.Anything, userID, int64(constant.ScoreAwardRating)).
		Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	result, err := svc.RateQuestion(context.Background(), userID, &dto.RateQuestionRequest{QuestionID: questionID, Score: 4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.AverageRating)
	assert.Equal(t, int64(1), result.RatingCount)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

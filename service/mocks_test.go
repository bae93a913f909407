package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// newTestLogger 构造测试用的 ZapLogger，只输出错误级别，避免测试噪音。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return logger
}

// newMockDB 基于 sqlmock 构造 gorm.DB，服务层事务会在其上 Begin/Commit。
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// --- Repository mocks ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetOrCreate(ctx context.Context, db *gorm.DB, userID int64) (*entities.User, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) SetUsername(ctx context.Context, userID int64, username string) error {
	return m.Called(ctx, userID, username).Error(0)
}

func (m *mockUserRepo) SetPhoneNumber(ctx context.Context, userID int64, phoneNumber string) error {
	return m.Called(ctx, userID, phoneNumber).Error(0)
}

func (m *mockUserRepo) AdjustRankScore(ctx context.Context, db *gorm.DB, userID int64, delta int64) error {
	return m.Called(ctx, db, userID, delta).Error(0)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) CreateItem(ctx context.Context, db *gorm.DB, item *entities.Item) error {
	return m.Called(ctx, db, item).Error(0)
}

func (m *mockItemRepo) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Item), args.Error(1)
}

func (m *mockItemRepo) ListItemsByType(ctx context.Context, itemType enums.ItemType, offset, limit int) ([]*entities.Item, int64, error) {
	args := m.Called(ctx, itemType, offset, limit)
	items, _ := args.Get(0).([]*entities.Item)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockItemRepo) SearchItems(ctx context.Context, keyword string, offset, limit int) ([]*entities.Item, int64, error) {
	args := m.Called(ctx, keyword, offset, limit)
	items, _ := args.Get(0).([]*entities.Item)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockItemRepo) UpdateRatingAggregates(ctx context.Context, db *gorm.DB, itemID string, average float64, count int64) error {
	return m.Called(ctx, db, itemID, average, count).Error(0)
}

func (m *mockItemRepo) DeleteItemCascade(ctx context.Context, db *gorm.DB, itemID string) error {
	return m.Called(ctx, db, itemID).Error(0)
}

type mockRatingRepo struct{ mock.Mock }

func (m *mockRatingRepo) CreateItemRating(ctx context.Context, db *gorm.DB, rating *entities.ItemRating) error {
	return m.Called(ctx, db, rating).Error(0)
}

func (m *mockRatingRepo) CreateQuestionRating(ctx context.Context, db *gorm.DB, rating *entities.QuestionRating) error {
	return m.Called(ctx, db, rating).Error(0)
}

func (m *mockRatingRepo) RecomputeItemAggregates(ctx context.Context, db *gorm.DB, itemID string) (float64, int64, error) {
	args := m.Called(ctx, db, itemID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockRatingRepo) RecomputeQuestionAggregates(ctx context.Context, db *gorm.DB, questionID string) (float64, int64, error) {
	args := m.Called(ctx, db, questionID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockRatingRepo) ListRatedItemIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockRatingRepo) ListRatedQuestionIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	return m.Called(ctx, db, comment).Error(0)
}

func (m *mockCommentRepo) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *mockCommentRepo) ListByItem(ctx context.Context, itemID string, status *enums.ContentStatus, offset, limit int) ([]*entities.Comment, int64, error) {
	args := m.Called(ctx, itemID, status, offset, limit)
	comments, _ := args.Get(0).([]*entities.Comment)
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ListPending(ctx context.Context, offset, limit int) ([]*entities.Comment, int64, error) {
	args := m.Called(ctx, offset, limit)
	comments, _ := args.Get(0).([]*entities.Comment)
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	return m.Called(ctx, db, id, status).Error(0)
}

func (m *mockCommentRepo) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockCommentReplyRepo struct{ mock.Mock }

func (m *mockCommentReplyRepo) CreateReply(ctx context.Context, db *gorm.DB, reply *entities.CommentReply) error {
	return m.Called(ctx, db, reply).Error(0)
}

func (m *mockCommentReplyRepo) GetReplyByID(ctx context.Context, id string) (*entities.CommentReply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CommentReply), args.Error(1)
}

func (m *mockCommentReplyRepo) ListDirect(ctx context.Context, commentID string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error) {
	args := m.Called(ctx, commentID, status, offset, limit)
	replies, _ := args.Get(0).([]*entities.CommentReply)
	return replies, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentReplyRepo) ListChildren(ctx context.Context, parentReplyID string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error) {
	args := m.Called(ctx, parentReplyID, status, offset, limit)
	replies, _ := args.Get(0).([]*entities.CommentReply)
	return replies, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentReplyRepo) CountDirect(ctx context.Context, commentID string, status *enums.ContentStatus) (int64, error) {
	args := m.Called(ctx, commentID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentReplyRepo) CountChildren(ctx context.Context, parentReplyID string, status *enums.ContentStatus) (int64, error) {
	args := m.Called(ctx, parentReplyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentReplyRepo) ListPending(ctx context.Context, offset, limit int) ([]*entities.CommentReply, int64, error) {
	args := m.Called(ctx, offset, limit)
	replies, _ := args.Get(0).([]*entities.CommentReply)
	return replies, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentReplyRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	return m.Called(ctx, db, id, status).Error(0)
}

type mockQuestionRepo struct{ mock.Mock }

func (m *mockQuestionRepo) CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.TechQuestion) error {
	return m.Called(ctx, db, question).Error(0)
}

func (m *mockQuestionRepo) GetQuestionByID(ctx context.Context, id string) (*entities.TechQuestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TechQuestion), args.Error(1)
}

func (m *mockQuestionRepo) ListQuestions(ctx context.Context, status *enums.ContentStatus, offset, limit int) ([]*entities.TechQuestion, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	questions, _ := args.Get(0).([]*entities.TechQuestion)
	return questions, args.Get(1).(int64), args.Error(2)
}

func (m *mockQuestionRepo) ListTopRated(ctx context.Context, limit int) ([]*entities.TechQuestion, error) {
	args := m.Called(ctx, limit)
	questions, _ := args.Get(0).([]*entities.TechQuestion)
	return questions, args.Error(1)
}

func (m *mockQuestionRepo) ListPending(ctx context.Context, offset, limit int) ([]*entities.TechQuestion, int64, error) {
	args := m.Called(ctx, offset, limit)
	questions, _ := args.Get(0).([]*entities.TechQuestion)
	return questions, args.Get(1).(int64), args.Error(2)
}

func (m *mockQuestionRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	return m.Called(ctx, db, id, status).Error(0)
}

func (m *mockQuestionRepo) UpdateRatingAggregates(ctx context.Context, db *gorm.DB, questionID string, average float64, count int64) error {
	return m.Called(ctx, db, questionID, average, count).Error(0)
}

func (m *mockQuestionRepo) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockQuestionReplyRepo struct{ mock.Mock }

func (m *mockQuestionReplyRepo) CreateReply(ctx context.Context, db *gorm.DB, reply *entities.QuestionReply) error {
	return m.Called(ctx, db, reply).Error(0)
}

func (m *mockQuestionReplyRepo) GetReplyByID(ctx context.Context, id string) (*entities.QuestionReply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QuestionReply), args.Error(1)
}

func (m *mockQuestionReplyRepo) ListByQuestion(ctx context.Context, questionID string, status *enums.ContentStatus, offset, limit int) ([]*entities.QuestionReply, int64, error) {
	args := m.Called(ctx, questionID, status, offset, limit)
	replies, _ := args.Get(0).([]*entities.QuestionReply)
	return replies, args.Get(1).(int64), args.Error(2)
}

func (m *mockQuestionReplyRepo) ListPending(ctx context.Context, offset, limit int) ([]*entities.QuestionReply, int64, error) {
	args := m.Called(ctx, offset, limit)
	replies, _ := args.Get(0).([]*entities.QuestionReply)
	return replies, args.Get(1).(int64), args.Error(2)
}

func (m *mockQuestionReplyRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	return m.Called(ctx, db, id, status).Error(0)
}

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) CreateMessage(ctx context.Context, db *gorm.DB, message *entities.ContactMessage) error {
	return m.Called(ctx, db, message).Error(0)
}

func (m *mockContactRepo) GetMessageByID(ctx context.Context, id string) (*entities.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContactMessage), args.Error(1)
}

func (m *mockContactRepo) ListByStatus(ctx context.Context, status *enums.MessageStatus, offset, limit int) ([]*entities.ContactMessage, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	messages, _ := args.Get(0).([]*entities.ContactMessage)
	return messages, args.Get(1).(int64), args.Error(2)
}

func (m *mockContactRepo) Answer(ctx context.Context, db *gorm.DB, id string, response string) error {
	return m.Called(ctx, db, id, response).Error(0)
}

func (m *mockContactRepo) Reject(ctx context.Context, db *gorm.DB, id string) error {
	return m.Called(ctx, db, id).Error(0)
}

func (m *mockContactRepo) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockSuggestionRepo struct{ mock.Mock }

func (m *mockSuggestionRepo) CreateSuggestion(ctx context.Context, db *gorm.DB, suggestion *entities.ProductSuggestion) error {
	return m.Called(ctx, db, suggestion).Error(0)
}

func (m *mockSuggestionRepo) GetSuggestionByID(ctx context.Context, id string) (*entities.ProductSuggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProductSuggestion), args.Error(1)
}

func (m *mockSuggestionRepo) ListPending(ctx context.Context, offset, limit int) ([]*entities.ProductSuggestion, int64, error) {
	args := m.Called(ctx, offset, limit)
	suggestions, _ := args.Get(0).([]*entities.ProductSuggestion)
	return suggestions, args.Get(1).(int64), args.Error(2)
}

func (m *mockSuggestionRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	return m.Called(ctx, db, id, status).Error(0)
}

// mockRateLimiter 供内容服务测试绕开或模拟限额检查。
type mockRateLimiter struct{ mock.Mock }

func (m *mockRateLimiter) CheckDailyLimit(ctx context.Context, userID int64, action enums.ActionKind) error {
	return m.Called(ctx, userID, action).Error(0)
}

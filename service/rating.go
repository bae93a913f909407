package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// RatingService 定义了评分的业务逻辑接口。
// - 打分、聚合重算、聚合写回、积分奖励在同一个事务内完成。
// - 重复打分是幂等操作: 不报错，返回 Duplicate=true 和当前聚合值。
type RatingService interface {
	// RateItem 处理用户给商品打分。
	RateItem(ctx context.Context, userID int64, req *dto.RateItemRequest) (*vo.RatingResultVO, error)

	// RateQuestion 处理用户给技术问答打分。
	RateQuestion(ctx context.Context, userID int64, req *dto.RateQuestionRequest) (*vo.RatingResultVO, error)
}

// ratingService 是 RatingService 接口的具体实现。
type ratingService struct {
	ratingRepo   mysql.RatingRepository
	itemRepo     mysql.ItemRepository
	questionRepo mysql.TechQuestionRepository
	userRepo     mysql.UserRepository
	db           *gorm.DB
	logger       *core.ZapLogger
}

// NewRatingService 是 ratingService 的构造函数。
func NewRatingService(
	db *gorm.DB,
	ratingRepo mysql.RatingRepository,
	itemRepo mysql.ItemRepository,
	questionRepo mysql.TechQuestionRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) RatingService {
	return &ratingService{
		ratingRepo:   ratingRepo,
		itemRepo:     itemRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
		db:           db,
		logger:       logger,
	}
}

// validateScore 校验分值范围，1~5 的整数。
func validateScore(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("%w: 分值必须在 1~5 之间", myErrors.ErrValidation)
	}
	return nil
}

// RateItem 实现商品打分。
func (s *ratingService) RateItem(ctx context.Context, userID int64, req *dto.RateItemRequest) (*vo.RatingResultVO, error) {
	if err := validateScore(req.Score); err != nil {
		return nil, err
	}

	// 商品必须存在
	if _, err := s.itemRepo.GetItemByID(ctx, req.ItemID); err != nil {
		return nil, err
	}

	result := &vo.RatingResultVO{}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}

		rating := &entities.ItemRating{
			UserID: userID,
			ItemID: req.ItemID,
			Score:  req.Score,
		}
		if repoErr := s.ratingRepo.CreateItemRating(ctx, tx, rating); repoErr != nil {
			if errors.Is(repoErr, myErrors.ErrDuplicateRating) {
				// 幂等: 不改任何数据，在事务内从评分行重算当前聚合值带回去
				average, count, aggErr := s.ratingRepo.RecomputeItemAggregates(ctx, tx, req.ItemID)
				if aggErr != nil {
					return fmt.Errorf("读取商品评分聚合失败: %w", aggErr)
				}
				result.Duplicate = true
				result.AverageRating = average
				result.RatingCount = count
				return nil
			}
			return fmt.Errorf("插入商品评分失败: %w", repoErr)
		}

		// 评分行是数据源，聚合在同一事务内重算写回
		average, count, repoErr := s.ratingRepo.RecomputeItemAggregates(ctx, tx, req.ItemID)
		if repoErr != nil {
			return fmt.Errorf("重算商品评分聚合失败: %w", repoErr)
		}
		if repoErr := s.itemRepo.UpdateRatingAggregates(ctx, tx, req.ItemID, average, count); repoErr != nil {
			return fmt.Errorf("写回商品评分聚合失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, constant.ScoreAwardRating); repoErr != nil {
			return fmt.Errorf("累加评分积分失败: %w", repoErr)
		}

		result.AverageRating = average
		result.RatingCount = count
		return nil
	})
	if err != nil {
		s.logger.Error("商品打分事务失败",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.String("itemID", req.ItemID),
		)
		return nil, err
	}

	if result.Duplicate {
		s.logger.Info("用户重复给商品打分，已忽略",
			zap.Int64("userID", userID),
			zap.String("itemID", req.ItemID),
		)
	}
	return result, nil
}

// RateQuestion 实现问答打分，流程与 RateItem 平行。
func (s *ratingService) RateQuestion(ctx context.Context, userID int64, req *dto.RateQuestionRequest) (*vo.RatingResultVO, error) {
	if err := validateScore(req.Score); err != nil {
		return nil, err
	}

	if _, err := s.questionRepo.GetQuestionByID(ctx, req.QuestionID); err != nil {
		return nil, err
	}

	result := &vo.RatingResultVO{}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}

		rating := &entities.QuestionRating{
			UserID:     userID,
			QuestionID: req.QuestionID,
			Score:      req.Score,
		}
		if repoErr := s.ratingRepo.CreateQuestionRating(ctx, tx, rating); repoErr != nil {
			if errors.Is(repoErr, myErrors.ErrDuplicateRating) {
				average, count, aggErr := s.ratingRepo.RecomputeQuestionAggregates(ctx, tx, req.QuestionID)
				if aggErr != nil {
					return fmt.Errorf("读取问答评分聚合失败: %w", aggErr)
				}
				result.Duplicate = true
				result.AverageRating = average
				result.RatingCount = count
				return nil
			}
			return fmt.Errorf("插入问答评分失败: %w", repoErr)
		}

		average, count, repoErr := s.ratingRepo.RecomputeQuestionAggregates(ctx, tx, req.QuestionID)
		if repoErr != nil {
			return fmt.Errorf("重算问答评分聚合失败: %w", repoErr)
		}
		if repoErr := s.questionRepo.UpdateRatingAggregates(ctx, tx, req.QuestionID, average, count); repoErr != nil {
			return fmt.Errorf("写回问答评分聚合失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, constant.ScoreAwardRating); repoErr != nil {
			return fmt.Errorf("累加评分积分失败: %w", repoErr)
		}

		result.AverageRating = average
		result.RatingCount = count
		return nil
	})
	if err != nil {
		s.logger.Error("问答打分事务失败",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.String("questionID", req.QuestionID),
		)
		return nil, err
	}

	if result.Duplicate {
		s.logger.Info("用户重复给问答打分，已忽略",
			zap.Int64("userID", userID),
			zap.String("questionID", req.QuestionID),
		)
	}
	return result, nil
}

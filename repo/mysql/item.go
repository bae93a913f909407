package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// ItemRepository 定义了商品数据在 MySQL 中的持久化操作接口。
type ItemRepository interface {
	// CreateItem 持久化一个新的商品记录（管理端录入）。
	CreateItem(ctx context.Context, db *gorm.DB, item *entities.Item) error

	// GetItemByID 根据单个 ID 检索商品信息。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetItemByID(ctx context.Context, id string) (*entities.Item, error)

	// ListItemsByType 按商品类别分页查询，高分商品在前。
	// - 返回: 商品列表, 符合条件的总记录数, 错误。
	ListItemsByType(ctx context.Context, itemType enums.ItemType, offset, limit int) ([]*entities.Item, int64, error)

	// SearchItems 按商品名模糊搜索，排序与类别列表一致。
	SearchItems(ctx context.Context, keyword string, offset, limit int) ([]*entities.Item, int64, error)

	// UpdateRatingAggregates 写回派生的评分聚合字段。
	// - 必须与评分行的插入处于同一事务，否则聚合会和真实数据漂移。
	UpdateRatingAggregates(ctx context.Context, db *gorm.DB, itemID string, average float64, count int64) error

	// DeleteItemCascade 删除商品及其关联数据（评论、评论回复、评分）。
	// - 调用方负责把它放进事务，半删状态不可接受。
	DeleteItemCascade(ctx context.Context, db *gorm.DB, itemID string) error
}

// itemRepository 是 ItemRepository 接口针对 MySQL 的具体实现。
type itemRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewItemRepository 是 itemRepository 的构造函数。
func NewItemRepository(db *gorm.DB, logger *core.ZapLogger) ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem 实现商品的数据库插入操作。
func (r *itemRepository) CreateItem(ctx context.Context, db *gorm.DB, item *entities.Item) error {
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		r.logger.Error("创建商品数据库操作失败", zap.Error(err), zap.String("name", item.Name))
		return err
	}
	return nil
}

// GetItemByID 实现根据单个 ID 获取商品。
func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取商品未找到", zap.String("itemID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取商品数据库查询失败", zap.String("itemID", id), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// ListItemsByType 实现按类别的分页查询。
func (r *itemRepository) ListItemsByType(ctx context.Context, itemType enums.ItemType, offset, limit int) ([]*entities.Item, int64, error) {
	var items []*entities.Item
	var totalCount int64

	countQuery := r.db.WithContext(ctx).Model(&entities.Item{}).Where("type = ?", itemType)
	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("按类别获取商品列表：计数查询失败",
			zap.Error(err),
			zap.Int("type", int(itemType)),
		)
		return nil, 0, fmt.Errorf("计数商品失败: %w", err)
	}

	if totalCount == 0 {
		return items, 0, nil
	}

	err := r.db.WithContext(ctx).
		Where("type = ?", itemType).
		Order("average_rating DESC").Order("created_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		r.logger.Error("按类别获取商品列表：列表查询失败",
			zap.Error(err),
			zap.Int("type", int(itemType)),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询商品列表失败: %w", err)
	}

	return items, totalCount, nil
}

// SearchItems 实现按名称的模糊搜索。
func (r *itemRepository) SearchItems(ctx context.Context, keyword string, offset, limit int) ([]*entities.Item, int64, error) {
	var items []*entities.Item
	var totalCount int64

	pattern := "%" + keyword + "%"

	countQuery := r.db.WithContext(ctx).Model(&entities.Item{}).Where("name LIKE ?", pattern)
	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("搜索商品：计数查询失败", zap.Error(err), zap.String("keyword", keyword))
		return nil, 0, fmt.Errorf("计数商品失败: %w", err)
	}

	if totalCount == 0 {
		return items, 0, nil
	}

	err := r.db.WithContext(ctx).
		Where("name LIKE ?", pattern).
		Order("average_rating DESC").Order("created_at DESC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		r.logger.Error("搜索商品：列表查询失败",
			zap.Error(err),
			zap.String("keyword", keyword),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("搜索商品失败: %w", err)
	}

	return items, totalCount, nil
}

// UpdateRatingAggregates 实现评分聚合字段的写回。
func (r *itemRepository) UpdateRatingAggregates(ctx context.Context, db *gorm.DB, itemID string, average float64, count int64) error {
	result := db.WithContext(ctx).
		Model(&entities.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"average_rating": average,
			"rating_count":   count,
		})
	if result.Error != nil {
		r.logger.Error("写回商品评分聚合失败",
			zap.Error(result.Error),
			zap.String("itemID", itemID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("写回评分聚合但未找到商品", zap.String("itemID", itemID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteItemCascade 实现商品及其关联数据的级联删除。
func (r *itemRepository) DeleteItemCascade(ctx context.Context, db *gorm.DB, itemID string) error {
	// 先删回复，子查询定位该商品下所有评论
	commentIDs := db.Model(&entities.Comment{}).Select("id").Where("item_id = ?", itemID)
	if err := db.WithContext(ctx).Where("comment_id IN (?)", commentIDs).Delete(&entities.CommentReply{}).Error; err != nil {
		r.logger.Error("级联删除评论回复失败", zap.Error(err), zap.String("itemID", itemID))
		return fmt.Errorf("级联删除评论回复失败: %w", err)
	}
	if err := db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&entities.Comment{}).Error; err != nil {
		r.logger.Error("级联删除评论失败", zap.Error(err), zap.String("itemID", itemID))
		return fmt.Errorf("级联删除评论失败: %w", err)
	}
	if err := db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&entities.ItemRating{}).Error; err != nil {
		r.logger.Error("级联删除商品评分失败", zap.Error(err), zap.String("itemID", itemID))
		return fmt.Errorf("级联删除商品评分失败: %w", err)
	}

	result := db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.Item{})
	if result.Error != nil {
		r.logger.Error("删除商品失败", zap.Error(result.Error), zap.String("itemID", itemID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("删除商品但记录不存在", zap.String("itemID", itemID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

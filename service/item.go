package service

import (
	"fmt"

	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// ItemService 定义了商品目录的业务逻辑接口。
// - 商品由管理端录入，不走审核管道。
type ItemService interface {
	// CreateItem 录入一个新商品（管理端）。
	CreateItem(ctx context.Context, req *dto.CreateItemRequest) (*vo.ItemResponse, error)

	// GetItem 获取单个商品（含评分聚合）。
	GetItem(ctx context.Context, itemID string) (*vo.ItemResponse, error)

	// ListItems 按类别分页浏览商品，高分商品在前。
	ListItems(ctx context.Context, req *dto.ListItemsRequest) (*vo.ItemPageVO, error)

	// SearchItems 按名称模糊搜索商品。
	SearchItems(ctx context.Context, req *dto.SearchItemsRequest) (*vo.ItemPageVO, error)

	// DeleteItem 下架商品并级联清理其评论、回复和评分（管理端）。
	DeleteItem(ctx context.Context, itemID string) error
}

// itemService 是 ItemService 接口的具体实现。
type itemService struct {
	itemRepo mysql.ItemRepository
	db       *gorm.DB
	logger   *core.ZapLogger
}

// NewItemService 是 itemService 的构造函数。
func NewItemService(db *gorm.DB, itemRepo mysql.ItemRepository, logger *core.ZapLogger) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		db:       db,
		logger:   logger,
	}
}

// CreateItem 实现商品录入。
func (s *itemService) CreateItem(ctx context.Context, req *dto.CreateItemRequest) (*vo.ItemResponse, error) {
	itemType := enums.ItemType(req.Type)
	if !itemType.IsValid() {
		return nil, fmt.Errorf("%w: 未知的商品类别 %d", myErrors.ErrValidation, req.Type)
	}

	item := &entities.Item{
		Type:        itemType,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.itemRepo.CreateItem(ctx, s.db, item); err != nil {
		s.logger.Error("录入商品失败", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	s.logger.Info("商品已录入", zap.String("itemID", item.ID), zap.String("name", item.Name))
	return vo.MapItemToResponseVO(item), nil
}

// GetItem 实现单个商品查询。
func (s *itemService) GetItem(ctx context.Context, itemID string) (*vo.ItemResponse, error) {
	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return vo.MapItemToResponseVO(item), nil
}

// ListItems 实现按类别的商品浏览。
func (s *itemService) ListItems(ctx context.Context, req *dto.ListItemsRequest) (*vo.ItemPageVO, error) {
	itemType := enums.ItemType(req.Type)
	if !itemType.IsValid() {
		return nil, fmt.Errorf("%w: 未知的商品类别 %d", myErrors.ErrValidation, req.Type)
	}

	offset, limit := pageToOffset(req.Page, req.PageSize)
	items, total, err := s.itemRepo.ListItemsByType(ctx, itemType, offset, limit)
	if err != nil {
		return nil, err
	}

	return &vo.ItemPageVO{
		Items: vo.MapItemsToResponsesVO(items),
		Total: total,
	}, nil
}

// SearchItems 实现按名称的模糊搜索。
func (s *itemService) SearchItems(ctx context.Context, req *dto.SearchItemsRequest) (*vo.ItemPageVO, error) {
	offset, limit := pageToOffset(req.Page, req.PageSize)
	items, total, err := s.itemRepo.SearchItems(ctx, req.Keyword, offset, limit)
	if err != nil {
		return nil, err
	}

	return &vo.ItemPageVO{
		Items: vo.MapItemsToResponsesVO(items),
		Total: total,
	}, nil
}

// DeleteItem 实现商品的级联下架。
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	// 先确认存在，让 404 与删除失败区分开
	if _, err := s.itemRepo.GetItemByID(ctx, itemID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.itemRepo.DeleteItemCascade(ctx, tx, itemID)
	})
	if err != nil {
		s.logger.Error("级联下架商品失败", zap.Error(err), zap.String("itemID", itemID))
		return err
	}

	s.logger.Info("商品已下架", zap.String("itemID", itemID))
	return nil
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel 是所有以 UUID 作主键的实体的公共嵌入结构。
// - 主键: char(36) 的 UUID 字符串，在 BeforeCreate 钩子中生成。
// - 支持软删除（gorm.DeletedAt），实际的级联删除由服务层在事务中完成。
type BaseModel struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate 在插入前填充 UUID 主键。
// - 允许调用方预先指定 ID（例如测试或数据迁移），仅在为空时生成。
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

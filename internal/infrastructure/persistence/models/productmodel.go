package models

type ProductModel struct {
	ID          uint   `gorm:"primaryKey"`
	Prefix      string `gorm:"uniqueIndex;size:64;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Owner       string `gorm:"size:255"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ProductModel) TableName() string {
	return "products"
}

package models

type ComponentModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_component_product,priority:1"`
	Product     string `gorm:"size:64;not null;uniqueIndex:idx_component_product,priority:2;index"`
	Owner       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ComponentModel) TableName() string {
	return "components"
}

type MilestoneModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_milestone_product,priority:1"`
	Product     string `gorm:"size:64;not null;uniqueIndex:idx_milestone_product,priority:2;index"`
	Due         *int64
	Completed   *int64
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MilestoneModel) TableName() string {
	return "milestones"
}

type VersionModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_version_product,priority:1"`
	Product     string `gorm:"size:64;not null;uniqueIndex:idx_version_product,priority:2;index"`
	Time        *int64 `gorm:"column:time"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (VersionModel) TableName() string {
	return "versions"
}

type EnumModel struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"size:64;not null;uniqueIndex:idx_enum_key,priority:1"`
	Name      string `gorm:"size:255;not null;uniqueIndex:idx_enum_key,priority:2"`
	Product   string `gorm:"size:64;not null;uniqueIndex:idx_enum_key,priority:3;index"`
	Value     string `gorm:"size:255"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EnumModel) TableName() string {
	return "enums"
}

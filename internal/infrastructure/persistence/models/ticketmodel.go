package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	ProductTicketID int     `gorm:"column:product_ticket_id;not null;uniqueIndex:idx_product_ticket,priority:2"`
	Product         string  `gorm:"size:64;not null;uniqueIndex:idx_product_ticket,priority:1;index"`
	Type            *string `gorm:"size:255"`
	Component       *string `gorm:"size:255;index"`
	Milestone       *string `gorm:"size:255;index"`
	Version         *string `gorm:"size:255;index"`
	Severity        string  `gorm:"size:255"`
	Priority        string  `gorm:"size:255"`
	Owner           string  `gorm:"size:255;index"`
	Reporter        string  `gorm:"size:255;index"`
	CC              string  `gorm:"column:cc;type:text"`
	Status          string  `gorm:"size:255;index"`
	Resolution      *string `gorm:"size:255"`
	Summary         string  `gorm:"size:255;not null"`
	Description     string  `gorm:"type:text"`
	Keywords        datatypes.JSON
	Time            int64 `gorm:"column:time;autoCreateTime:milli;not null"`
	ChangeTime      int64 `gorm:"column:changetime;autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketChangeModel struct {
	ID       uint   `gorm:"primaryKey"`
	TicketID uint   `gorm:"column:ticket_id;not null;uniqueIndex:idx_change_key,priority:1;index"`
	Number   int    `gorm:"column:product_ticket_id;not null"`
	Time     int64  `gorm:"column:time;not null;uniqueIndex:idx_change_key,priority:2"`
	Field    string `gorm:"size:64;not null;uniqueIndex:idx_change_key,priority:3"`
	Product  string `gorm:"size:64;not null;uniqueIndex:idx_change_key,priority:4;index"`
	Author   string `gorm:"size:255"`
	OldValue string `gorm:"column:oldvalue;type:text"`
	NewValue string `gorm:"column:newvalue;type:text"`
}

func (TicketChangeModel) TableName() string {
	return "ticket_changes"
}

// TicketSequenceModel holds the per-product high-water mark of issued ticket
// numbers. Value is the last number handed out; it never decreases.
type TicketSequenceModel struct {
	Product   string `gorm:"primaryKey;size:64"`
	Value     int    `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}

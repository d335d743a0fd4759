package migration

import (
	"trackd/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProductModel{},
		&models.TicketModel{},
		&models.TicketChangeModel{},
		&models.TicketSequenceModel{},
		&models.ComponentModel{},
		&models.MilestoneModel{},
		&models.VersionModel{},
		&models.EnumModel{},
	}
}

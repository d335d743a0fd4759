package mappers

import (
	"trackd/internal/domain/resource"
	"trackd/internal/infrastructure/persistence/models"
)

// ResourceMapper converts the product-scoped child entities between their
// domain and persistence shapes. These entities carry no invariants beyond
// construction-time validation, so the domain side uses plain structs.
type ResourceMapper interface {
	ComponentToModel(c *resource.Component) *models.ComponentModel
	ComponentToDomain(model *models.ComponentModel) *resource.Component

	MilestoneToModel(m *resource.Milestone) *models.MilestoneModel
	MilestoneToDomain(model *models.MilestoneModel) *resource.Milestone

	VersionToModel(v *resource.Version) *models.VersionModel
	VersionToDomain(model *models.VersionModel) *resource.Version

	EnumToModel(e *resource.Enum) *models.EnumModel
	EnumToDomain(model *models.EnumModel) *resource.Enum
}

type ResourceMapperImpl struct{}

func NewResourceMapper() ResourceMapper {
	return &ResourceMapperImpl{}
}

func (m *ResourceMapperImpl) ComponentToModel(c *resource.Component) *models.ComponentModel {
	return &models.ComponentModel{
		ID:          c.ID,
		Name:        c.Name,
		Product:     c.Product,
		Owner:       c.Owner,
		Description: c.Description,
	}
}

func (m *ResourceMapperImpl) ComponentToDomain(model *models.ComponentModel) *resource.Component {
	return &resource.Component{
		ID:          model.ID,
		Name:        model.Name,
		Owner:       model.Owner,
		Description: model.Description,
		Product:     model.Product,
	}
}

func (m *ResourceMapperImpl) MilestoneToModel(ms *resource.Milestone) *models.MilestoneModel {
	return &models.MilestoneModel{
		ID:          ms.ID,
		Name:        ms.Name,
		Product:     ms.Product,
		Due:         ms.Due,
		Completed:   ms.Completed,
		Description: ms.Description,
	}
}

func (m *ResourceMapperImpl) MilestoneToDomain(model *models.MilestoneModel) *resource.Milestone {
	return &resource.Milestone{
		ID:          model.ID,
		Name:        model.Name,
		Due:         model.Due,
		Completed:   model.Completed,
		Description: model.Description,
		Product:     model.Product,
	}
}

func (m *ResourceMapperImpl) VersionToModel(v *resource.Version) *models.VersionModel {
	return &models.VersionModel{
		ID:          v.ID,
		Name:        v.Name,
		Product:     v.Product,
		Time:        v.Time,
		Description: v.Description,
	}
}

func (m *ResourceMapperImpl) VersionToDomain(model *models.VersionModel) *resource.Version {
	return &resource.Version{
		ID:          model.ID,
		Name:        model.Name,
		Time:        model.Time,
		Description: model.Description,
		Product:     model.Product,
	}
}

func (m *ResourceMapperImpl) EnumToModel(e *resource.Enum) *models.EnumModel {
	return &models.EnumModel{
		ID:      e.ID,
		Type:    e.Type,
		Name:    e.Name,
		Product: e.Product,
		Value:   e.Value,
	}
}

func (m *ResourceMapperImpl) EnumToDomain(model *models.EnumModel) *resource.Enum {
	return &resource.Enum{
		ID:      model.ID,
		Type:    model.Type,
		Name:    model.Name,
		Value:   model.Value,
		Product: model.Product,
	}
}

package mappers

import (
	"time"

	"trackd/internal/domain/product"
	"trackd/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between Product domain entities and persistence models.
type ProductMapper interface {
	ToModel(p *product.Product) *models.ProductModel
	ToDomain(model *models.ProductModel) (*product.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
		Prefix:      p.Prefix(),
		Name:        p.Name(),
		Description: p.Description(),
		Owner:       p.Owner(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProductMapperImpl) ToDomain(model *models.ProductModel) (*product.Product, error) {
	return product.ReconstructProduct(
		model.Prefix,
		model.Name,
		model.Description,
		model.Owner,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

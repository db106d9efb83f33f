package catalog

import (
	"github.com/jhoicas/tutu-catalog/internal/application/dto"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
)

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Category:      p.Category,
		Gender:        p.Gender,
		Type:          p.Type,
		Name:          p.Name,
		Color:         p.Color,
		Details:       p.Details,
		Price:         p.Price,
		ImageFilename: p.ImageFilename,
		ImagePath:     p.ImagePath,
		ParentID:      p.ParentID,
		CreatedAt:     p.CreatedAt,
	}
}

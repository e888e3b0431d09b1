package sales

import (
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas con sus líneas.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso con el repo atado al pool.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// GetByID devuelve la venta con sus líneas.
func (uc *SaleQueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale, items)
	return &resp, nil
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		BranchID:      s.BranchID,
		UserID:        s.UserID,
		CustomerID:    s.CustomerID,
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		SaleDate:      s.SaleDate,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}

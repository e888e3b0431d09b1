package sales

import (
	"context"

	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ReceiptPDFUseCase arma los datos del recibo y delega el render al generador.
type ReceiptPDFUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	customerRepo repository.CustomerRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
	generator ReceiptPDFGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// Generate devuelve los bytes del recibo PDF de una venta.
func (uc *ReceiptPDFUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	saleItems, err := uc.saleRepo.ListItems(saleID)
	if err != nil {
		return nil, err
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, err
	}

	items := make([]ReceiptItem, 0, len(saleItems))
	for _, it := range saleItems {
		description := it.ProductID
		if product, err := uc.productRepo.GetByID(it.ProductID); err == nil && product != nil {
			description = product.Name
		}
		items = append(items, ReceiptItem{
			Description: description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Subtotal:    it.Subtotal,
		})
	}

	var customer *entity.Customer
	if sale.CustomerID != nil {
		customer, err = uc.customerRepo.GetByID(*sale.CustomerID)
		if err != nil {
			return nil, err
		}
	}

	return uc.generator.GenerateReceiptPDF(ctx, sale, items, branch, customer)
}

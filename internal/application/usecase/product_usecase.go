package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	appinv "github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El alta materializa
// siempre el registro de stock en cero (con su umbral de reorden) y, si trae
// cantidad inicial, la recepción pasa por el motor como PURCHASE; el resto de
// la vida del producto el stock solo cambia vía movimientos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	branchRepo repository.BranchRepository
	stockRepo  repository.StockRepository
	engine     *appinv.Engine
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, branchRepo repository.BranchRepository, stockRepo repository.StockRepository, engine *appinv.Engine) *ProductUseCase {
	return &ProductUseCase{repo: repo, branchRepo: branchRepo, stockRepo: stockRepo, engine: engine}
}

// Create crea un producto junto con su registro de stock en cero en la
// sucursal indicada; si trae cantidad inicial registra además la recepción
// como movimiento PURCHASE.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		ImageURL:     in.ImageURL,
		Status:       entity.ProductActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}

	// El registro de stock nace junto con el producto, en cero y con el
	// umbral pedido; la recepción inicial solo cambia la cantidad.
	level := entity.DefaultReorderLevel
	if in.ReorderLevel != nil {
		level = *in.ReorderLevel
	}
	if err := uc.stockRepo.Upsert(&entity.StockRecord{
		ProductID:    product.ID,
		BranchID:     in.BranchID,
		Quantity:     0,
		ReorderLevel: level,
		UpdatedAt:    now,
	}); err != nil {
		return nil, err
	}

	if in.InitialQuantity > 0 {
		if _, err := uc.engine.ApplyStandalone(ctx, appinv.MovementInput{
			ProductID:    product.ID,
			BranchID:     in.BranchID,
			Delta:        in.InitialQuantity,
			Type:         entity.MovementTypePURCHASE,
			ActorID:      actorID,
			ReferenceID:  &product.ID,
			ReorderLevel: in.ReorderLevel,
		}); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar SKU ni stock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Status != nil {
		if *in.Status != entity.ProductActive && *in.Status != entity.ProductInactive {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda por nombre/SKU y paginación.
func (uc *ProductUseCase) List(search string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Si existen ventas que lo referencian se
// rechaza con ErrConflict: el historial de ventas no puede quedar colgando.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	used, err := uc.repo.HasSales(id)
	if err != nil {
		return err
	}
	if used {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		ImageURL:     p.ImageURL,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

package inventory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain"
	"github.com/tu-usuario/pos-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/pos-pro/internal/domain/inventory"
	"github.com/tu-usuario/pos-pro/internal/domain/repository"
)

// StockQueryUseCase lecturas de stock y del historial de movimientos.
// Son lecturas consultivas: la verificación que vale ocurre siempre dentro
// de la transacción del motor.
type StockQueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
}

// NewStockQueryUseCase construye el caso de uso con repos atados al pool.
func NewStockQueryUseCase(stockRepo repository.StockRepository, movRepo repository.StockMovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// GetStock devuelve el stock de un par (producto, sucursal); cantidad 0 si no existe.
func (uc *StockQueryUseCase) GetStock(productID, branchID string) (*dto.StockRecordResponse, error) {
	record, err := uc.stockRepo.Get(productID, branchID)
	if err != nil {
		return nil, err
	}
	resp := toStockResponse(record)
	return &resp, nil
}

// ListStock lista stock por sucursal, o por producto en todas las sucursales.
func (uc *StockQueryUseCase) ListStock(productID, branchID string, page dto.PageRequest) ([]dto.StockRecordResponse, error) {
	page.DefaultPage()
	switch {
	case productID != "" && branchID != "":
		one, err := uc.GetStock(productID, branchID)
		if err != nil {
			return nil, err
		}
		return []dto.StockRecordResponse{*one}, nil
	case productID != "":
		records, err := uc.stockRepo.ListByProduct(productID)
		if err != nil {
			return nil, err
		}
		return toStockResponses(records), nil
	case branchID != "":
		records, err := uc.stockRepo.ListByBranch(branchID, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		return toStockResponses(records), nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

// ListLowStock lista los pares en o bajo su nivel de reorden.
func (uc *StockQueryUseCase) ListLowStock(branchID string) ([]repository.LowStockItem, error) {
	return uc.stockRepo.ListLowStock(branchID)
}

// UpdateReorderLevel edita el umbral de reorden de un par existente.
func (uc *StockQueryUseCase) UpdateReorderLevel(in dto.ReorderLevelRequest) error {
	if in.ProductID == "" || in.BranchID == "" || in.ReorderLevel < 0 {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.UpdateReorderLevel(in.ProductID, in.BranchID, in.ReorderLevel)
}

// ListMovements consulta el historial por producto, sucursal o par, con rango de fechas.
func (uc *StockQueryUseCase) ListMovements(q dto.MovementQuery) ([]dto.MovementResponse, error) {
	q.DefaultPage()
	from, err := parseDate(q.From)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := parseDate(q.To)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	switch {
	case q.ProductID != "" && q.BranchID != "":
		movs, err := uc.movRepo.ListByPair(q.ProductID, q.BranchID, from, to, q.Limit, q.Offset)
		if err != nil {
			return nil, err
		}
		return toMovementResponses(movs), nil
	case q.ProductID != "":
		movs, err := uc.movRepo.ListByProduct(q.ProductID, from, to, q.Limit, q.Offset)
		if err != nil {
			return nil, err
		}
		return toMovementResponses(movs), nil
	case q.BranchID != "":
		movs, err := uc.movRepo.ListByBranch(q.BranchID, from, to, q.Limit, q.Offset)
		if err != nil {
			return nil, err
		}
		return toMovementResponses(movs), nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

// ExportCSV exporta el stock de una sucursal como CSV.
func (uc *StockQueryUseCase) ExportCSV(branchID string) ([]byte, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.stockRepo.ListByBranch(branchID, 10000, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"product_id", "branch_id", "quantity", "reorder_level", "low_stock", "updated_at"})
	for _, r := range records {
		_ = w.Write([]string{
			r.ProductID,
			r.BranchID,
			strconv.FormatInt(r.Quantity, 10),
			strconv.FormatInt(r.ReorderLevel, 10),
			strconv.FormatBool(domaininv.IsLowStock(r)),
			r.UpdatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("fecha inválida: %s", s)
}

func toStockResponse(r *entity.StockRecord) dto.StockRecordResponse {
	return dto.StockRecordResponse{
		ProductID:    r.ProductID,
		BranchID:     r.BranchID,
		Quantity:     r.Quantity,
		ReorderLevel: r.ReorderLevel,
		LowStock:     domaininv.IsLowStock(r),
		UpdatedAt:    r.UpdatedAt,
	}
}

func toStockResponses(records []*entity.StockRecord) []dto.StockRecordResponse {
	out := make([]dto.StockRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toStockResponse(r))
	}
	return out
}

func toMovementResponses(movs []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			BranchID:    m.BranchID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			ReferenceID: m.ReferenceID,
			CreatedBy:   m.CreatedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}

package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	CreateSale(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListItems(saleID string) ([]*entity.SaleItem, error)
	UpdateStatus(id, status string) error
}

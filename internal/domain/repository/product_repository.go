package repository

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	// Delete solo se permite cuando ninguna venta referencia al producto;
	// el borrado arrastra sus registros de stock.
	Delete(id string) error
	// HasSales indica si existen líneas de venta que referencian al producto.
	HasSales(productID string) (bool, error)
}

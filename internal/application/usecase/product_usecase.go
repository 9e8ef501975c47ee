package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	appinv "github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

const (
	// DefaultMinStock mínimo aplicado cuando el borrador no trae uno válido.
	DefaultMinStock = 5
	// DefaultSupplier proveedor cuando el borrador no trae uno.
	DefaultSupplier = "Sin especificar"
)

// ProductUseCase registro de productos. El stock solo cambia aquí por edición directa o
// importación; el resto de cambios pasan por movimientos.
type ProductUseCase struct {
	tx        appinv.TxRunner
	publisher appinv.EventPublisher
	metrics   appinv.Metrics
	log       *logger.Logger
	rng       inventory.RandomSource
	now       appinv.Clock
	minStock  int
}

// ProductOption ajusta dependencias opcionales del caso de uso.
type ProductOption func(*ProductUseCase)

// WithProductPublisher publica product.deleted tras cada borrado.
func WithProductPublisher(p appinv.EventPublisher) ProductOption {
	return func(uc *ProductUseCase) { uc.publisher = p }
}

// WithProductMetrics registra altas, cambios y bajas.
func WithProductMetrics(m appinv.Metrics) ProductOption {
	return func(uc *ProductUseCase) { uc.metrics = m }
}

// WithProductLogger logger del caso de uso.
func WithProductLogger(l *logger.Logger) ProductOption {
	return func(uc *ProductUseCase) { uc.log = l.Component("products") }
}

// WithRandom fuente para el sufijo de los SKU generados.
func WithRandom(r inventory.RandomSource) ProductOption {
	return func(uc *ProductUseCase) { uc.rng = r }
}

// WithProductClock reloj para LastUpdated.
func WithProductClock(c appinv.Clock) ProductOption {
	return func(uc *ProductUseCase) { uc.now = c }
}

// WithDefaultMinStock cambia el mínimo por defecto (DEFAULT_MIN_STOCK).
func WithDefaultMinStock(n int) ProductOption {
	return func(uc *ProductUseCase) {
		if n >= 0 {
			uc.minStock = n
		}
	}
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx appinv.TxRunner, opts ...ProductOption) *ProductUseCase {
	uc := &ProductUseCase{
		tx:        tx,
		publisher: appinv.NopPublisher{},
		metrics:   appinv.NopMetrics{},
		log:       logger.Nop(),
		rng:       inventory.DefaultRandom,
		now:       time.Now,
		minStock:  DefaultMinStock,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create valida el borrador y agrega un producto nuevo al final del registro.
// Dos borradores idénticos producen dos productos con IDs distintos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.fromDraft(in)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.ProductChanged("create")
	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	out := dto.NewProductResponse(product)
	return &out, nil
}

// CreateBatch agrega en una sola transacción los borradores válidos; los inválidos se omiten
// y se cuentan.
func (uc *ProductUseCase) CreateBatch(ctx context.Context, drafts []dto.CreateProductRequest) (*dto.BatchResult, error) {
	valid := make([]*entity.Product, 0, len(drafts))
	skipped := 0
	for _, d := range drafts {
		p, err := uc.fromDraft(d)
		if err != nil {
			skipped++
			uc.log.Debug().Err(err).Str("name", d.Name).Msg("borrador omitido")
			continue
		}
		valid = append(valid, p)
	}

	if len(valid) > 0 {
		err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
			for _, p := range valid {
				if err := products.Create(p); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	result := &dto.BatchResult{Created: make([]dto.ProductResponse, 0, len(valid)), Skipped: skipped}
	for _, p := range valid {
		result.Created = append(result.Created, dto.NewProductResponse(p))
	}
	uc.metrics.ProductsImported(len(valid), skipped)
	uc.log.Info().Int("created", len(valid)).Int("skipped", skipped).Msg("carga masiva de productos")
	return result, nil
}

// Update aplica los campos presentes, vuelve a derivar el estado y sella LastUpdated.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := uc.applyPatch(product, in); err != nil {
			return err
		}
		product.LastUpdated = uc.now()
		inventory.Refresh(product)
		if err := products.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.ProductChanged("update")
	out := dto.NewProductResponse(updated)
	return &out, nil
}

// Delete elimina el producto y, en la misma transacción, todos sus movimientos.
// Devuelve cuántos movimientos se eliminaron.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error) {
	var (
		removed int
		deleted *entity.Product
	)
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := products.Delete(id); err != nil {
			return err
		}
		removed, err = movements.DeleteByProduct(id)
		if err != nil {
			return err
		}
		deleted = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ProductChanged("delete")
	uc.log.Info().Str("product_id", id).Int("removed_movements", removed).Msg("producto eliminado")
	if err := uc.publisher.Publish(ctx, entity.InventoryEvent{
		Type:      entity.EventProductDeleted,
		ProductID: deleted.ID,
		SKU:       deleted.SKU,
		Timestamp: uc.now(),
	}); err != nil {
		uc.log.Warn().Err(err).Str("product_id", id).Msg("publicar product.deleted")
	}
	return &dto.DeleteProductResponse{ID: id, RemovedMovements: removed}, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var found *entity.Product
	err := uc.tx.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		p, err := products.GetByID(id)
		found = p
		return err
	})
	if err != nil || found == nil {
		return nil, err
	}
	out := dto.NewProductResponse(found)
	return &out, nil
}

// List filtra por texto (nombre, SKU, categoría o proveedor, sin distinguir mayúsculas) y por
// categoría exacta. "all" o vacío no filtra categoría.
func (uc *ProductUseCase) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.TrimSpace(filter.Category)
	if strings.EqualFold(category, "all") {
		category = ""
	}

	items := make([]dto.ProductResponse, 0)
	err := uc.tx.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		for _, p := range list {
			if category != "" && p.Category != category {
				continue
			}
			if search != "" && !matchesSearch(p, search) {
				continue
			}
			items = append(items, dto.NewProductResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Categories devuelve las categorías distintas en el orden en que aparecen.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, 0)
	err := uc.tx.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		seen := make(map[string]struct{}, len(list))
		for _, p := range list {
			if _, ok := seen[p.Category]; ok {
				continue
			}
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
		return nil
	})
	return out, err
}

func matchesSearch(p *entity.Product, term string) bool {
	for _, field := range []string{p.Name, p.SKU, p.Category, p.Supplier} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// fromDraft valida el borrador y construye la entidad con sus valores por defecto.
func (uc *ProductUseCase) fromDraft(in dto.CreateProductRequest) (*entity.Product, error) {
	verr := domain.NewValidationError()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		verr.Add("name")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		verr.Add("category")
	}
	stock, err := parseQuantity(in.Stock)
	if err != nil {
		verr.Add("stock")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		verr.Add("price")
	}
	minStock := uc.minStock
	if !in.MinStock.IsEmpty() {
		if n, err := parseInteger(in.MinStock); err == nil {
			if n < 0 {
				verr.Add("min_stock")
			} else {
				minStock = n
			}
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = inventory.GenerateSKU(name, category, uc.rng)
	}
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		supplier = DefaultSupplier
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		SKU:         sku,
		Category:    category,
		Stock:       stock,
		MinStock:    minStock,
		Price:       price,
		Supplier:    supplier,
		Description: strings.TrimSpace(in.Description),
		LastUpdated: uc.now(),
	}
	inventory.Refresh(product)
	return product, nil
}

func (uc *ProductUseCase) applyPatch(p *entity.Product, in dto.UpdateProductRequest) error {
	verr := domain.NewValidationError()
	if in.Name != nil {
		if v := strings.TrimSpace(*in.Name); v != "" {
			p.Name = v
		} else {
			verr.Add("name")
		}
	}
	if in.Category != nil {
		if v := strings.TrimSpace(*in.Category); v != "" {
			p.Category = v
		} else {
			verr.Add("category")
		}
	}
	if in.Stock != nil {
		if n, err := parseQuantity(*in.Stock); err == nil {
			p.Stock = n
		} else {
			verr.Add("stock")
		}
	}
	if in.MinStock != nil {
		if n, err := parseQuantity(*in.MinStock); err == nil {
			p.MinStock = n
		} else {
			verr.Add("min_stock")
		}
	}
	if in.Price != nil {
		if d, err := parsePrice(*in.Price); err == nil {
			p.Price = d
		} else {
			verr.Add("price")
		}
	}
	if in.Supplier != nil {
		p.Supplier = strings.TrimSpace(*in.Supplier)
		if p.Supplier == "" {
			p.Supplier = DefaultSupplier
		}
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	// Un SKU vacío se regenera igual que en el alta, con el nombre y la categoría ya aplicados.
	if in.SKU != nil {
		p.SKU = strings.TrimSpace(*in.SKU)
		if p.SKU == "" {
			p.SKU = inventory.GenerateSKU(p.Name, p.Category, uc.rng)
		}
	}
	return nil
}

// parseInteger acepta enteros y decimales sin parte fraccionaria ("12", "12.0").
func parseInteger(s dto.NumericString) (int, error) {
	if n, err := strconv.Atoi(s.String()); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s.String())
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, domain.ErrInvalidInput
	}
	return int(d.IntPart()), nil
}

// parseQuantity entero obligatorio y no negativo.
func parseQuantity(s dto.NumericString) (int, error) {
	if s.IsEmpty() {
		return 0, domain.ErrInvalidInput
	}
	n, err := parseInteger(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}

// parsePrice decimal obligatorio y no negativo.
func parsePrice(s dto.NumericString) (decimal.Decimal, error) {
	if s.IsEmpty() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	d, err := decimal.NewFromString(s.String())
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return d, nil
}

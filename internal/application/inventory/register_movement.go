package inventory

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// DefaultUser actor registrado cuando la petición no trae uno.
const DefaultUser = "Usuario Demo"

// RegisterMovementUseCase registra entradas y salidas de forma transaccional: el cambio de stock
// del producto y el asiento en el libro se confirman juntos o no se confirman.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	publisher   EventPublisher
	metrics     Metrics
	log         *logger.Logger
	now         Clock
	defaultUser string
}

// NewRegisterMovementUseCase construye el caso de uso. publisher, metrics y log pueden ser nil.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	publisher EventPublisher,
	metrics Metrics,
	log *logger.Logger,
) *RegisterMovementUseCase {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		publisher:   publisher,
		metrics:     metrics,
		log:         log.Component("movements"),
		now:         time.Now,
		defaultUser: DefaultUser,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *RegisterMovementUseCase) WithClock(c Clock) *RegisterMovementUseCase {
	uc.now = c
	return uc
}

// WithDefaultUser cambia el actor por defecto (DEFAULT_USER).
func (uc *RegisterMovementUseCase) WithDefaultUser(user string) *RegisterMovementUseCase {
	if strings.TrimSpace(user) != "" {
		uc.defaultUser = user
	}
	return uc
}

// MovementInputDTO entrada para registrar un movimiento.
type MovementInputDTO struct {
	ProductID string
	Type      string
	Quantity  int
	Notes     string
	User      string
}

// RegisterMovement valida la entrada, aplica el movimiento al producto y lo inserta al inicio
// del libro. Una salida mayor que el stock devuelve domain.ErrInsufficientStock sin modificar nada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*dto.MovementResponse, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(input.ProductID) == "" {
		verr.Add("product_id")
	}
	if input.Type != entity.MovementTypeIn && input.Type != entity.MovementTypeOut {
		verr.Add("type")
	}
	if input.Quantity <= 0 {
		verr.Add("quantity")
	}
	if err := verr.OrNil(); err != nil {
		uc.metrics.MovementRejected("validation")
		return nil, err
	}

	user := strings.TrimSpace(input.User)
	if user == "" {
		user = uc.defaultUser
	}

	var (
		movement *entity.Movement
		product  *entity.Product
		before   entity.ProductStatus
	)
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		p, err := products.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewValidationError("product_id")
		}

		previous := p.Stock
		var next int
		switch input.Type {
		case entity.MovementTypeIn:
			if input.Quantity > math.MaxInt-previous {
				return domain.NewValidationError("quantity")
			}
			next = previous + input.Quantity
		default:
			next = previous - input.Quantity
			if next < 0 {
				return domain.ErrInsufficientStock
			}
		}

		now := uc.now()
		before = p.Status
		p.Stock = next
		p.LastUpdated = now
		inventory.Refresh(p)
		if err := products.Update(p); err != nil {
			return err
		}

		m := &entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     p.ID,
			ProductName:   p.Name,
			Type:          input.Type,
			Quantity:      input.Quantity,
			Date:          now,
			User:          user,
			Notes:         strings.TrimSpace(input.Notes),
			PreviousStock: previous,
			NewStock:      next,
		}
		if err := movements.Create(m); err != nil {
			return err
		}
		movement, product = m, p
		return nil
	})
	if err != nil {
		uc.metrics.MovementRejected(rejectReason(err))
		return nil, err
	}

	uc.metrics.MovementRegistered(movement.Type, movement.Quantity)
	uc.log.Product(movement.ProductID).Info().
		Str("movement_id", movement.ID).
		Str("type", movement.Type).
		Int("quantity", movement.Quantity).
		Int("new_stock", movement.NewStock).
		Msg("movimiento registrado")
	uc.notify(ctx, movement, product, before)

	out := dto.NewMovementResponse(movement)
	return &out, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, user string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.RegisterMovement(ctx, MovementInputDTO{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		User:      user,
	})
}

// List devuelve el libro del más reciente al más antiguo; productID vacío no filtra.
func (uc *RegisterMovementUseCase) List(ctx context.Context, productID string) ([]dto.MovementResponse, error) {
	var out []dto.MovementResponse
	err := uc.txRunner.View(ctx, func(_ repository.ProductReader, movements repository.MovementReader) error {
		var (
			list []*entity.Movement
			err  error
		)
		if productID == "" {
			list, err = movements.List()
		} else {
			list, err = movements.ListByProduct(productID)
		}
		if err != nil {
			return err
		}
		out = dto.NewMovementResponses(list)
		return nil
	})
	return out, err
}

// notify publica los eventos después de confirmar; un fallo solo se registra.
func (uc *RegisterMovementUseCase) notify(ctx context.Context, m *entity.Movement, p *entity.Product, before entity.ProductStatus) {
	events := []entity.InventoryEvent{{
		Type:       entity.EventMovementRegistered,
		ProductID:  p.ID,
		SKU:        p.SKU,
		MovementID: m.ID,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		Status:     p.Status,
		Timestamp:  m.Date,
	}}
	if p.Status != before {
		switch p.Status {
		case entity.StatusLowStock:
			events = append(events, alertEvent(entity.EventStockLow, m, p))
		case entity.StatusOutOfStock:
			events = append(events, alertEvent(entity.EventStockOut, m, p))
		}
	}
	for _, ev := range events {
		if err := uc.publisher.Publish(ctx, ev); err != nil {
			uc.log.Warn().Err(err).Str("event", ev.Type).Str("product_id", p.ID).Msg("publicar evento")
		}
	}
}

func alertEvent(kind string, m *entity.Movement, p *entity.Product) entity.InventoryEvent {
	return entity.InventoryEvent{
		Type:       kind,
		ProductID:  p.ID,
		SKU:        p.SKU,
		MovementID: m.ID,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		Status:     p.Status,
		Timestamp:  m.Date,
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidInput):
		return "validation"
	default:
		return "error"
	}
}

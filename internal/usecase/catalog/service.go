package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Repository é o contrato de armazenamento do catálogo de serviços.
type Repository interface {
	GetByPublicID(ctx context.Context, publicID string) (*models.Service, error)
	List(ctx context.Context, includeInactive bool) ([]models.Service, error)
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Name        string
	Description string
	Price       float64
	DurationMin int
}

type UpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	DurationMin *int
}

// ======================================================
// USE CASE
// ======================================================

type Catalog struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCatalog(repo Repository, auditDispatcher *audit.Dispatcher) *Catalog {
	return &Catalog{repo: repo, audit: auditDispatcher}
}

// List devolve o catálogo. Clientes veem apenas serviços ativos;
// barbeiros podem pedir o catálogo completo.
func (c *Catalog) List(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return c.repo.List(ctx, includeInactive)
}

func (c *Catalog) Get(ctx context.Context, publicID string) (*models.Service, error) {
	svc, err := c.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.NotFoundErr("service_not_found", "Serviço não encontrado.")
	}
	return svc, nil
}

func (c *Catalog) Create(ctx context.Context, actorID uint, in CreateInput) (*models.Service, error) {
	if err := validateFields(in.Name, in.Price, in.DurationMin); err != nil {
		return nil, err
	}

	svc := models.Service{
		PublicID:    uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Status:      models.ServiceStatusActive,
	}

	if err := c.repo.Create(ctx, &svc); err != nil {
		return nil, err
	}

	c.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return &svc, nil
}

func (c *Catalog) Update(
	ctx context.Context,
	actorID uint,
	publicID string,
	in UpdateInput,
) (*models.Service, error) {

	svc, err := c.Get(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.DurationMin != nil {
		svc.DurationMin = *in.DurationMin
	}

	if err := validateFields(svc.Name, svc.Price, svc.DurationMin); err != nil {
		return nil, err
	}

	if err := c.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	c.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}

// Deactivate faz o soft delete: o serviço some das listagens de cliente
// e não pode mais ser agendado, mas os horários já marcados continuam
// válidos pelos snapshots.
func (c *Catalog) Deactivate(ctx context.Context, actorID uint, publicID string) error {
	return c.setStatus(ctx, actorID, publicID, models.ServiceStatusInactive, "service_deactivated")
}

// Restore reativa um serviço desativado.
func (c *Catalog) Restore(ctx context.Context, actorID uint, publicID string) error {
	return c.setStatus(ctx, actorID, publicID, models.ServiceStatusActive, "service_restored")
}

func (c *Catalog) setStatus(
	ctx context.Context,
	actorID uint,
	publicID string,
	status string,
	action string,
) error {

	svc, err := c.Get(ctx, publicID)
	if err != nil {
		return err
	}

	svc.Status = status
	if err := c.repo.Update(ctx, svc); err != nil {
		return err
	}

	c.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return nil
}

func validateFields(name string, price float64, durationMin int) error {
	if name == "" {
		return httperr.ValidationErr("invalid_name", "O nome do serviço é obrigatório.")
	}
	if price <= 0 {
		return httperr.ValidationErr("invalid_price", "O preço deve ser maior que zero.")
	}
	if durationMin <= 0 {
		return httperr.ValidationErr("invalid_duration", "A duração deve ser maior que zero.")
	}
	return nil
}

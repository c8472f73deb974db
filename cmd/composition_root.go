package cmd

import (
	"context"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/notify"
	"foodorder/internal/core/application/session"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTodayOrdersQueryHandler() queries.GetTodayOrdersQueryHandler {
	return queries.NewGetTodayOrdersQueryHandler(c.gormDB)
}

// CreateNotificationSequencer builds a sequencer with the standard
// confirmation window.
func (c *CompositionRoot) CreateNotificationSequencer() (*notify.Sequencer, error) {
	return notify.NewSequencer(notify.DefaultVisibleDuration)
}

// NewOrderSession starts an interactive session composing a brand-new order
// against the postgres-backed store.
func (c *CompositionRoot) NewOrderSession() (*session.Session, error) {
	notifier, err := c.CreateNotificationSequencer()
	if err != nil {
		return nil, err
	}
	return session.NewCreateSession(c.remoteStore(), notifier)
}

// NewOrderEditSession starts an interactive session revising the persisted
// order with the given identifier. The caller must LoadExisting before use.
func (c *CompositionRoot) NewOrderEditSession(orderID kernel.UUID) (*session.Session, error) {
	notifier, err := c.CreateNotificationSequencer()
	if err != nil {
		return nil, err
	}
	return session.NewEditSession(c.remoteStore(), notifier, orderID)
}

func (c *CompositionRoot) remoteStore() session.RemoteRepository {
	return &uowRemoteStore{uowFactory: &c.uowFactory}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// uowRemoteStore adapts the unit-of-work machinery to the narrow persistence
// port a session needs. Create assigns drafts a fresh identifier before
// persisting.
type uowRemoteStore struct {
	uowFactory *postgres.GormUnitOfWorkFactory
}

func (s *uowRemoteStore) Fetch(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().Get(ctx, id)
}

func (s *uowRemoteStore) Create(ctx context.Context, aggregate *order.Order) error {
	if !aggregate.IsPersisted() {
		if err := aggregate.AssignIdentifier(kernel.NewUUID()); err != nil {
			return err
		}
	}

	return s.inTransaction(ctx, func(uow commands.OrderUoW) error {
		return uow.OrderRepository().Add(ctx, aggregate)
	})
}

func (s *uowRemoteStore) Update(ctx context.Context, aggregate *order.Order) error {
	return s.inTransaction(ctx, func(uow commands.OrderUoW) error {
		return uow.OrderRepository().Update(ctx, aggregate)
	})
}

func (s *uowRemoteStore) inTransaction(ctx context.Context, op func(uow commands.OrderUoW) error) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := op(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

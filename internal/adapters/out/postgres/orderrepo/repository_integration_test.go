package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createProduct(title string, priceCents int64) menu.Product {
	price, err := kernel.NewPrice(priceCents)
	suite.Require().NoError(err)
	product, err := menu.NewProduct(kernel.NewUUID(), title, price)
	suite.Require().NoError(err)
	return product
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(notes string) *order.Order {
	burger, err := order.NewLineItem(suite.createProduct("Burger", 850), 2)
	suite.Require().NoError(err)
	fries, err := order.NewLineItem(suite.createProduct("Fries", 350), 1)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), []order.LineItem{burger, fries}, notes)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("no onions")
	suite.tracker.On("TrackAggregate", *testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DraftWithoutIdentifier_Fails() {
	ctx := context.Background()

	draft := order.NewDraft()
	suite.Require().NoError(draft.AddUnits(suite.createProduct("Burger", 850), 1))

	err := suite.repository.Add(ctx, draft)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_PreservesLedgerOrder() {
	ctx := context.Background()

	burger := suite.createProduct("Burger", 850)
	fries := suite.createProduct("Fries", 350)
	cola := suite.createProduct("Cola", 250)

	testOrder := order.NewDraft()
	suite.Require().NoError(testOrder.AddUnits(burger, 2))
	suite.Require().NoError(testOrder.AddUnits(fries, 1))
	suite.Require().NoError(testOrder.AddUnits(cola, 3))
	testOrder.SetNotes("extra ketchup")
	suite.Require().NoError(testOrder.AssignIdentifier(kernel.NewUUID()))

	suite.tracker.On("TrackAggregate", *testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, *testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(*retrieved.ID()))
	suite.Equal("extra ketchup", retrieved.Notes())

	items := retrieved.Items()
	suite.Require().Len(items, 3)
	suite.Equal("Burger", items[0].Product().Title())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("Fries", items[1].Product().Title())
	suite.Equal("Cola", items[2].Product().Title())
	suite.Equal(int64(850), items[0].Product().Price().Cents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_OverwritesGroupingsAndNotes() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("")
	suite.tracker.On("TrackAggregate", *testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	pizza, err := order.NewLineItem(suite.createProduct("Pizza", 1200), 1)
	suite.Require().NoError(err)
	revised, err := order.RestoreOrder(*testOrder.ID(), []order.LineItem{pizza}, "ring twice")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", *revised.ID(), revised).Once()
	suite.Require().NoError(suite.repository.Update(ctx, revised))

	retrieved, err := suite.repository.Get(ctx, *testOrder.ID())
	suite.Require().NoError(err)

	items := retrieved.Items()
	suite.Require().Len(items, 1)
	suite.Equal("Pizza", items[0].Product().Title())
	suite.Equal("ring twice", retrieved.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("")
	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndGroupings() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("")
	suite.tracker.On("TrackAggregate", *testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, *testOrder.ID()))

	suite.assertOrderCount(0)
	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(0), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

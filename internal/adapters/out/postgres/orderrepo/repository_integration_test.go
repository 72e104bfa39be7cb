package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"tailorshop/internal/adapters/out/postgres/orderrepo"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including the version-guarded update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	tailorID := kernel.NewUUID()

	testOrder := suite.createTestOrder(customerID)
	suite.Require().NoError(testOrder.AssignTailor(tailorID, false))
	suite.Require().NoError(testOrder.Accept(tailorID))
	suite.Require().NoError(testOrder.StartWork(tailorID, time.Now().UTC()))
	suite.Require().NoError(testOrder.AddNote(customerID, "extra inside pocket", time.Now().UTC()))

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(customerID, retrieved.Customer())
	suite.Require().NotNil(retrieved.Tailor())
	suite.Equal(tailorID, *retrieved.Tailor())
	suite.Equal(order.Accepted, retrieved.Assignment())
	suite.Equal(order.Cutting, retrieved.Status())
	suite.Equal("suit", retrieved.ItemType())
	suite.Equal(testOrder.Measurements(), retrieved.Measurements())
	suite.Equal(order.FabricFromShop, retrieved.Fabric().Source())
	suite.Equal("navy wool", retrieved.Fabric().Name())
	suite.Require().Len(retrieved.Notes(), 1)
	suite.Equal("extra inside pocket", retrieved.Notes()[0].Text)
	suite.Equal(customerID, retrieved.Notes()[0].AuthorID)
	suite.Require().NotNil(retrieved.StartedAt())
	suite.Require().NotNil(retrieved.StartedBy())
	suite.Equal(tailorID, *retrieved.StartedBy())
	suite.Equal(1, retrieved.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_IncrementsVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tailorID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignTailor(tailorID, false))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingAcceptance, retrieved.Assignment())
	suite.Equal(2, retrieved.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflictError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two writers load the same version.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AssignTailor(kernel.NewUUID(), false))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.AssignTailor(kernel.NewUUID(), false))
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentConflict)

	// The first writer's tailor won.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(*first.Tailor(), *retrieved.Tailor())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsConflictError() {
	testOrder := suite.createTestOrder(kernel.NewUUID())

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomer_ReturnsOnlyOwnOrders() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	mine1 := suite.createTestOrder(customerID)
	mine2 := suite.createTestOrder(customerID)
	other := suite.createTestOrder(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, mine1))
	suite.Require().NoError(suite.repository.Add(ctx, mine2))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Equal(customerID, o.Customer())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTailor_ExcludesTerminalOrders() {
	ctx := context.Background()
	tailorID := kernel.NewUUID()

	active := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(active.AssignTailor(tailorID, false))
	suite.Require().NoError(active.Accept(tailorID))
	suite.Require().NoError(suite.repository.Add(ctx, active))

	cancelled := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(cancelled.AssignTailor(tailorID, false))
	_, err := cancelled.Cancel(kernel.NewUUID(), "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	queue, err := suite.repository.GetByTailor(ctx, tailorID)
	suite.Require().NoError(err)
	suite.Require().Len(queue, 1)
	suite.Equal(active.ID(), queue[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesTerminalOrders() {
	ctx := context.Background()

	active := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, active))

	cancelled := suite.createTestOrder(kernel.NewUUID())
	_, err := cancelled.Cancel(kernel.NewUUID(), "customer withdrew", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	orders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(active.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsEverything() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(kernel.NewUUID())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(kernel.NewUUID())))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
}

// createTestOrder creates a freshly placed order for the given customer.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerID kernel.UUID) *order.Order {
	fabric, err := order.NewFabric(order.FabricFromShop, "navy wool")
	suite.Require().NoError(err)

	now := time.Now().UTC()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), customerID, "suit",
		order.Measurements{"chest": 96, "waist": 82},
		fabric, now.AddDate(0, 0, 10), 450, now,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

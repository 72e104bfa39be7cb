package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "tailorshop/internal/adapters/in/http"
	"tailorshop/internal/adapters/out/notify"
	postgresadapter "tailorshop/internal/adapters/out/postgres"
	"tailorshop/internal/adapters/out/postgres/billrepo"
	"tailorshop/internal/adapters/out/postgres/notificationrepo"
	"tailorshop/internal/adapters/out/postgres/orderrepo"
	"tailorshop/internal/adapters/out/postgres/tailordir"
	"tailorshop/internal/core/application/usecases/commands"
	"tailorshop/internal/core/application/usecases/queries"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/domain/services"
	"tailorshop/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type orderUoWFactory struct{ factory ports.UnitOfWorkFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

type billUoWFactory struct{ factory ports.UnitOfWorkFactory }

func (f billUoWFactory) Create() commands.BillUoW { return f.factory.Create() }

type notificationUoWFactory struct{ factory ports.UnitOfWorkFactory }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.factory.Create() }

type fullUoWFactory struct{ factory ports.UnitOfWorkFactory }

func (f fullUoWFactory) Create() commands.UoW { return f.factory.Create() }

// ServerIntegrationTestSuite drives the HTTP handlers against a real
// PostgreSQL database and checks that mutating endpoints answer with the
// stored order snapshot, not an empty body.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	echo      *echo.Echo
	server    *httpin.Server
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&billrepo.BillDTO{},
		&notificationrepo.NotificationDTO{},
		&tailordir.TailorDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
	dispatcher := notify.NewStoreDispatcher(notificationrepo.NewGormNotificationRepository(db))
	directory := tailordir.NewGormTailorDirectory(db)
	billGenerator := services.NewBillGenerator()

	orderF := orderUoWFactory{factory: suite.factory}
	billF := billUoWFactory{factory: suite.factory}
	notificationF := notificationUoWFactory{factory: suite.factory}
	fullF := fullUoWFactory{factory: suite.factory}

	suite.echo = echo.New()
	suite.server = httpin.NewServer(
		commands.NewCreateOrderCommandHandler(orderF),
		commands.NewAssignTailorCommandHandler(orderF, directory, dispatcher),
		commands.NewAcceptOrderCommandHandler(orderF),
		commands.NewRequestChangeCommandHandler(orderF, dispatcher),
		commands.NewStartWorkCommandHandler(orderF, dispatcher),
		commands.NewAdvanceStatusCommandHandler(fullF, billGenerator, dispatcher),
		commands.NewMarkReadyCommandHandler(fullF, billGenerator, dispatcher),
		commands.NewCancelOrderCommandHandler(orderF, dispatcher),
		commands.NewAddNoteCommandHandler(orderF),
		commands.NewRecordPaymentCommandHandler(billF),
		commands.NewMarkNotificationReadCommandHandler(notificationF),
		queries.NewGetOrderQueryHandler(db),
		queries.NewGetOrdersQueryHandler(db),
		queries.NewGetBillQueryHandler(db),
		queries.NewGetDashboardStatsQueryHandler(db),
		queries.NewGetNotificationsQueryHandler(db),
	)
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, bills, notifications, tailors").Error
	suite.Require().NoError(err)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// invoke calls an endpoint method directly with the given actor installed,
// the way the auth middleware would install it.
func (suite *ServerIntegrationTestSuite) invoke(
	actor ports.Actor, body string, call func(echo.Context) error,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := suite.echo.NewContext(req, rec)
	ctx.Set("tailorshop.actor", actor)
	suite.Require().NoError(call(ctx))

	return rec
}

func (suite *ServerIntegrationTestSuite) seedOrder() kernel.UUID {
	fabric, err := order.NewFabric(order.FabricFromCustomer, "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"jacket",
		order.Measurements{"chest": 100},
		fabric,
		time.Now().AddDate(0, 0, 10),
		300,
		time.Now(),
	)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	return aggregate.ID()
}

func (suite *ServerIntegrationTestSuite) seedTailor(id kernel.UUID) {
	row := tailordir.TailorDTO{
		ID:        id.Bytes(),
		Name:      "Meera",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&row).Error)
}

func (suite *ServerIntegrationTestSuite) TestCancelOrder_ReturnsUpdatedSnapshot() {
	orderID := suite.seedOrder()
	staff := ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleStaff}

	rec := suite.invoke(staff, `{"reason":"customer moved away"}`, func(ctx echo.Context) error {
		return suite.server.CancelOrder(ctx, orderID.Bytes())
	})

	suite.Equal(http.StatusOK, rec.Code)

	var got map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal(orderID.String(), got["id"])
	suite.Equal("Cancelled", got["status"])
	suite.Greater(got["version"], float64(1))
}

func (suite *ServerIntegrationTestSuite) TestAssignTailor_ReturnsUpdatedSnapshot() {
	orderID := suite.seedOrder()
	tailorID := kernel.NewUUID()
	suite.seedTailor(tailorID)
	staff := ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleStaff}

	rec := suite.invoke(staff, `{"tailorId":"`+tailorID.String()+`"}`, func(ctx echo.Context) error {
		return suite.server.AssignTailor(ctx, orderID.Bytes())
	})

	suite.Equal(http.StatusOK, rec.Code)

	var got map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal("PendingAcceptance", got["assignment"])
	suite.Equal(tailorID.String(), got["tailorId"])
}

func (suite *ServerIntegrationTestSuite) TestAcceptOrder_ReturnsUpdatedSnapshot() {
	orderID := suite.seedOrder()
	tailorID := kernel.NewUUID()
	suite.seedTailor(tailorID)
	staff := ports.Actor{ID: kernel.NewUUID(), Role: kernel.RoleStaff}
	tailor := ports.Actor{ID: tailorID, Role: kernel.RoleTailor}

	suite.invoke(staff, `{"tailorId":"`+tailorID.String()+`"}`, func(ctx echo.Context) error {
		return suite.server.AssignTailor(ctx, orderID.Bytes())
	})

	rec := suite.invoke(tailor, "", func(ctx echo.Context) error {
		return suite.server.AcceptOrder(ctx, orderID.Bytes())
	})

	suite.Equal(http.StatusOK, rec.Code)

	var got map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal("Accepted", got["assignment"])
	suite.Equal("OrderPlaced", got["status"])
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}

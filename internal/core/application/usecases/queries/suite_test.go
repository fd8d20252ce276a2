package queries_test

import (
	"context"
	"time"

	"printz/internal/adapters/out/postgres/orderrepo"
	"printz/internal/adapters/out/postgres/shoprepo"
	"printz/internal/adapters/out/postgres/studentrepo"
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/core/domain/model/shop"
	"printz/internal/core/domain/model/student"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresQuerySuite carries the container and seeding helpers shared by the
// query handler suites.
type postgresQuerySuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	shopRepo    *shoprepo.GormShopRepository
	studentRepo *studentrepo.GormStudentRepository
}

func (suite *postgresQuerySuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &shoprepo.ShopDTO{}, &studentrepo.StudentDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.shopRepo = shoprepo.NewGormShopRepository(db, &mockAggregateTracker{})
	suite.studentRepo = studentrepo.NewGormStudentRepository(db)
}

func (suite *postgresQuerySuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *postgresQuerySuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shops, students CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *postgresQuerySuite) username(value string) kernel.Username {
	username, err := kernel.NewUsername(value)
	suite.Require().NoError(err)
	return username
}

func (suite *postgresQuerySuite) printSpec() order.PrintSpec {
	return order.PrintSpec{
		Copies:      1,
		PaperSize:   order.A4,
		ColorMode:   order.Grayscale,
		Orientation: order.Portrait,
		PageCount:   4,
		Documents:   []string{"notes.pdf"},
	}
}

// seedOrder persists an order created at the given time, optionally moved to
// a terminal status first.
func (suite *postgresQuerySuite) seedOrder(
	studentName, shopName, paymentID string,
	createdAt time.Time,
	status order.Status,
	total float64,
) *order.Order {
	pid, err := kernel.NewPaymentID(paymentID)
	suite.Require().NoError(err)
	money, err := kernel.MoneyFromFloat(total)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		suite.username(studentName),
		suite.username(shopName),
		pid,
		suite.printSpec(),
		money,
		createdAt,
	)
	suite.Require().NoError(err)

	if status != order.Processing {
		suite.Require().NoError(o.TransitionTo(status))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *postgresQuerySuite) seedShop(username string, active bool) *shop.Shop {
	s, err := shop.NewShop(suite.username(username), username+"@shops.example", "", "", "")
	suite.Require().NoError(err)
	s.SetActive(active)
	suite.Require().NoError(suite.shopRepo.Add(context.Background(), s))
	return s
}

func (suite *postgresQuerySuite) seedStudent(username, email string, role student.Role) *student.Student {
	s, err := student.NewStudent(suite.username(username), email, "", role)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.studentRepo.Add(context.Background(), s))
	return s
}

// mockAggregateTracker satisfies the repositories' tracker dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ string, _ any) {}

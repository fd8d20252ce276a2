package queries_test

import (
	"context"
	"testing"
	"time"

	"printz/internal/core/application/usecases/queries"
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetStudentOrdersQueryHandlerTestSuite struct {
	postgresQuerySuite
	handler queries.GetStudentOrdersQueryHandler
}

func (suite *GetStudentOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.postgresQuerySuite.SetupSuite()
	suite.handler = queries.NewGetStudentOrdersQueryHandler(suite.db)
}

func (suite *GetStudentOrdersQueryHandlerTestSuite) TestHandle_UnknownStudent_ReturnsEmptySlice() {
	query, err := queries.NewGetStudentOrdersQuery(suite.username("nobody"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStudentOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnOrdersNewestFirst() {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.seedOrder("ada", "copyshack", "pay_1", base, order.Processing, 10)
	suite.seedOrder("ada", "printhaus", "pay_2", base.Add(2*time.Hour), order.Completed, 20)
	suite.seedOrder("ada", "copyshack", "pay_3", base.Add(time.Hour), order.Failed, 30)
	suite.seedOrder("bob", "copyshack", "pay_4", base.Add(3*time.Hour), order.Processing, 40)

	query, err := queries.NewGetStudentOrdersQuery(suite.username("ada"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("pay_2", result[0].PaymentID)
	suite.Equal("pay_3", result[1].PaymentID)
	suite.Equal("pay_1", result[2].PaymentID)
	for _, r := range result {
		suite.Equal("ada", r.Student)
	}
}

func (suite *GetStudentOrdersQueryHandlerTestSuite) TestHandle_MapsSpecAndStatus() {
	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seeded := suite.seedOrder("ada", "copyshack", "pay_1", createdAt, order.Completed, 12.50)

	query, err := queries.NewGetStudentOrdersQuery(suite.username("ada"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	got := result[0]
	suite.Equal(seeded.ID(), got.ID)
	suite.Equal("copyshack", got.Shop)
	suite.Equal("Completed", got.Status)
	suite.InDelta(12.50, got.Total, 0.001)
	suite.Equal("A4", got.Spec.PaperSize)
	suite.Equal("Grayscale", got.Spec.ColorMode)
	suite.Equal("Portrait", got.Spec.Orientation)
	suite.Equal([]string{"notes.pdf"}, got.Spec.Documents)
}

func (suite *GetStudentOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStudentOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetStudentOrdersQueryHandlerTestSuite) TestNewGetStudentOrdersQuery_RequiresUsername() {
	_, err := queries.NewGetStudentOrdersQuery(kernel.Username{})
	suite.Require().Error(err)
}

func TestGetStudentOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStudentOrdersQueryHandlerTestSuite))
}

package queries_test

import (
	"context"
	"testing"

	"printz/internal/core/application/usecases/queries"
	"printz/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetShopsQueryHandlerTestSuite struct {
	postgresQuerySuite
	handler         queries.GetShopsQueryHandler
	activityHandler queries.GetShopActivityQueryHandler
}

func (suite *GetShopsQueryHandlerTestSuite) SetupSuite() {
	suite.postgresQuerySuite.SetupSuite()
	suite.handler = queries.NewGetShopsQueryHandler(suite.db)
	suite.activityHandler = queries.NewGetShopActivityQueryHandler(suite.db)
}

func (suite *GetShopsQueryHandlerTestSuite) TestHandle_ListsOnlyActiveShops() {
	suite.seedShop("copyshack", true)
	suite.seedShop("printhaus", true)
	suite.seedShop("closeddoors", false)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetShopsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("copyshack", result[0].Username)
	suite.Equal("printhaus", result[1].Username)
}

func (suite *GetShopsQueryHandlerTestSuite) TestHandle_EmptyDirectory_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetShopsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetShopsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetShopsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetShopsQueryHandlerTestSuite) TestActivity_AnswersForInactiveShops() {
	suite.seedShop("closeddoors", false)

	query, err := queries.NewGetShopActivityQuery(suite.username("closeddoors"))
	suite.Require().NoError(err)

	result, err := suite.activityHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.False(result.Active)
}

func (suite *GetShopsQueryHandlerTestSuite) TestActivity_UnknownShop_ReturnsNotFound() {
	query, err := queries.NewGetShopActivityQuery(suite.username("nobody"))
	suite.Require().NoError(err)

	_, err = suite.activityHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetShopsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShopsQueryHandlerTestSuite))
}

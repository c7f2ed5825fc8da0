//go:build integration
// +build integration

package repository

import (
	"testing"

	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StockRepositoryTestSuite tests the StockRepository
type StockRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StockRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *StockRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewStockRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *StockRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StockRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StockRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestAdjustQuantityIncrement tests adding one unit
func (suite *StockRepositoryTestSuite) TestAdjustQuantityIncrement() {
	stock := suite.factories.Stock.WithQuantity(tenantA, 3)
	suite.Require().NoError(suite.repo.Create(stock))

	updated, err := suite.repo.AdjustQuantity(tenantA, stock.ID, 1)

	suite.NoError(err)
	suite.Equal(4, updated.Adet)
}

// TestAdjustQuantityDecrementAtZero tests that decrementing an empty item is a no-op
func (suite *StockRepositoryTestSuite) TestAdjustQuantityDecrementAtZero() {
	stock := suite.factories.Stock.WithQuantity(tenantA, 0)
	suite.Require().NoError(suite.repo.Create(stock))

	updated, err := suite.repo.AdjustQuantity(tenantA, stock.ID, -1)

	suite.NoError(err)
	suite.Equal(0, updated.Adet)
}

// TestAdjustQuantityOtherTenant tests that a foreign item is reported missing and left untouched
func (suite *StockRepositoryTestSuite) TestAdjustQuantityOtherTenant() {
	stock := suite.factories.Stock.WithQuantity(tenantA, 5)
	suite.Require().NoError(suite.repo.Create(stock))

	_, err := suite.repo.AdjustQuantity(tenantB, stock.ID, -1)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	found, err := suite.repo.GetByID(tenantA, stock.ID)
	suite.NoError(err)
	suite.Equal(5, found.Adet)
}

// TestUpdatePartial tests that only the given columns change
func (suite *StockRepositoryTestSuite) TestUpdatePartial() {
	stock := suite.factories.Stock.Create(tenantA)
	suite.Require().NoError(suite.repo.Create(stock))

	suite.NoError(suite.repo.Update(tenantA, stock.ID, map[string]interface{}{"info": "6 litre"}))

	found, err := suite.repo.GetByID(tenantA, stock.ID)
	suite.NoError(err)
	suite.Equal("6 litre", found.Info)
	suite.Equal(stock.StokAdi, found.StokAdi)
	suite.Equal(stock.Adet, found.Adet)
}

// TestDeleteAll tests that only the caller's stock is removed
func (suite *StockRepositoryTestSuite) TestDeleteAll() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Stock.Create(tenantA)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Stock.Create(tenantB)))

	deleted, err := suite.repo.DeleteAll(tenantA)

	suite.NoError(err)
	suite.Equal(int64(1), deleted)
	remaining, err := suite.repo.GetAll(tenantB)
	suite.NoError(err)
	suite.Len(remaining, 1)
}

// Run the test suite
func TestStockRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepositoryTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"

	"garage-backend/internal/database/models"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// BackupRepositoryTestSuite tests the BackupRepository
type BackupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BackupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BackupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBackupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BackupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BackupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BackupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestRestoreStampsCallerTenant tests that restored rows belong to the caller
func (suite *BackupRepositoryTestSuite) TestRestoreStampsCallerTenant() {
	card := suite.factories.Card.WithWorkItems(tenantB, 2)
	card.ID = 999
	quote := suite.factories.Quote.WithWorkItems(tenantB, 1)
	stock := suite.factories.Stock.Create(tenantB)

	err := suite.repo.Restore(tenantA, []models.Card{*card}, []models.Quote{*quote}, []models.Stock{*stock})
	suite.NoError(err)

	cards, err := NewCardRepository(suite.baseTestSuite.DB).GetAll(tenantA)
	suite.NoError(err)
	suite.Require().Len(cards, 1)
	suite.NotEqual(int64(999), cards[0].ID)
	suite.Len(cards[0].Yapilanlar, 2)

	quotes, err := NewQuoteRepository(suite.baseTestSuite.DB).GetAll(tenantA)
	suite.NoError(err)
	suite.Len(quotes, 1)

	foreign, err := NewStockRepository(suite.baseTestSuite.DB).GetAll(tenantB)
	suite.NoError(err)
	suite.Empty(foreign)
}

// Run the test suite
func TestBackupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BackupRepositoryTestSuite))
}

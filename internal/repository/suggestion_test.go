//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"garage-backend/internal/database/models"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SuggestionRepositoryTestSuite tests the SuggestionRepository
type SuggestionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SuggestionRepository
}

// SetupSuite runs before all tests in the suite
func (suite *SuggestionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSuggestionRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SuggestionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SuggestionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SuggestionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SuggestionRepositoryTestSuite) submit(tenantID int64, title string) *models.Suggestion {
	s := &models.Suggestion{
		TenantModel: models.TenantModel{TenantID: tenantID},
		OneriBaslik: title,
		SorunTanimi: "Müşterilere hatırlatma gönderilemiyor",
		MevcutCozum: "Telefonla arıyoruz",
		EtkiAlani:   []string{"müşteri"},
		Username:    "usta",
		Tarih:       time.Now(),
		Status:      models.SuggestionStatusPending,
	}
	suite.Require().NoError(suite.repo.Create(s))
	return s
}

// TestGetByIDOtherTenant tests that another tenant's suggestion looks absent
func (suite *SuggestionRepositoryTestSuite) TestGetByIDOtherTenant() {
	s := suite.submit(tenantA, "Toplu SMS")

	_, err := suite.repo.GetByID(tenantB, s.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	found, err := suite.repo.GetByID(tenantA, s.ID)
	suite.NoError(err)
	suite.Equal([]string{"müşteri"}, found.EtkiAlani)
}

// TestUpdate tests a partial update including the jsonb list column
func (suite *SuggestionRepositoryTestSuite) TestUpdate() {
	s := suite.submit(tenantA, "Toplu SMS")

	err := suite.repo.Update(tenantA, s.ID, map[string]interface{}{
		"oneri_baslik": "Toplu SMS ve e-posta",
		"etki_alani":   []string{"müşteri", "iletişim"},
	})
	suite.NoError(err)

	found, err := suite.repo.GetByID(tenantA, s.ID)
	suite.NoError(err)
	suite.Equal("Toplu SMS ve e-posta", found.OneriBaslik)
	suite.Equal([]string{"müşteri", "iletişim"}, found.EtkiAlani)
	suite.Equal(models.SuggestionStatusPending, found.Status)
}

// TestUpdateOtherTenant tests that a foreign suggestion is left untouched
func (suite *SuggestionRepositoryTestSuite) TestUpdateOtherTenant() {
	s := suite.submit(tenantA, "Toplu SMS")

	err := suite.repo.Update(tenantB, s.ID, map[string]interface{}{"oneri_baslik": "changed"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	found, err := suite.repo.GetByID(tenantA, s.ID)
	suite.NoError(err)
	suite.Equal("Toplu SMS", found.OneriBaslik)
}

// TestDeleteOtherTenant tests that a foreign suggestion cannot be removed
func (suite *SuggestionRepositoryTestSuite) TestDeleteOtherTenant() {
	s := suite.submit(tenantA, "Toplu SMS")

	suite.ErrorIs(suite.repo.Delete(tenantB, s.ID), gorm.ErrRecordNotFound)
	suite.NoError(suite.repo.Delete(tenantA, s.ID))

	_, err := suite.repo.GetByID(tenantA, s.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllScopedToTenant tests listing order and tenant isolation
func (suite *SuggestionRepositoryTestSuite) TestGetAllScopedToTenant() {
	suite.submit(tenantA, "first")
	suite.submit(tenantA, "second")
	suite.submit(tenantB, "foreign")

	list, err := suite.repo.GetAll(tenantA)
	suite.NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("second", list[0].OneriBaslik)

	all, err := suite.repo.GetAllTenants()
	suite.NoError(err)
	suite.Len(all, 3)
}

// Run the test suite
func TestSuggestionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionRepositoryTestSuite))
}

package service_test

import (
	"context"
	"testing"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type StockServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockStockRepositoryInterface
	mockAuditor  *mocks.MockAuditor
	stockService *service.StockService
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStockRepositoryInterface(suite.ctrl)
	suite.mockAuditor = mocks.NewMockAuditor(suite.ctrl)
	suite.stockService = service.NewStockService(suite.mockRepo, service.NewValidator(), suite.mockAuditor)
}

func (suite *StockServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StockServiceTestSuite) TestCreate_Defaults() {
	before := time.Now()
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAuditor.EXPECT().Record(gomock.Any(), testTenant, models.ActionStockCreate, "Motor yağı")

	stock, err := suite.stockService.Create(context.Background(), testTenant, &service.CreateStockRequest{
		StokAdi: strPtr("Motor yağı"),
		Adet:    intPtr(0),
		Info:    strPtr("5W-30"),
	})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), stock.MinStokSeviyesi)
	assert.Equal(suite.T(), models.DefaultMinStockLevel, *stock.MinStokSeviyesi)
	assert.False(suite.T(), stock.EklenisTarihi.Before(before))
	assert.Equal(suite.T(), 0, stock.Adet)
}

func (suite *StockServiceTestSuite) TestCreate_NegativeQuantity() {
	_, err := suite.stockService.Create(context.Background(), testTenant, &service.CreateStockRequest{
		StokAdi: strPtr("Motor yağı"),
		Adet:    intPtr(-2),
		Info:    strPtr(""),
	})

	verr, ok := apperrors.AsValidation(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "adet", verr.Details()[0].Field)
}

func (suite *StockServiceTestSuite) TestAdjustQuantity_Increment() {
	suite.mockRepo.EXPECT().AdjustQuantity(testTenant, int64(4), 1).Return(&models.Stock{ID: 4, StokAdi: "Filtre", Adet: 6}, nil)
	suite.mockAuditor.EXPECT().Record(gomock.Any(), testTenant, models.ActionStockUpdate, "Filtre increment")

	stock, err := suite.stockService.AdjustQuantity(context.Background(), testTenant, 4, "increment")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6, stock.Adet)
}

func (suite *StockServiceTestSuite) TestAdjustQuantity_DecrementAtZeroIsNoop() {
	suite.mockRepo.EXPECT().AdjustQuantity(testTenant, int64(4), -1).Return(&models.Stock{ID: 4, StokAdi: "Filtre", Adet: 0}, nil)
	suite.mockAuditor.EXPECT().Record(gomock.Any(), testTenant, models.ActionStockUpdate, gomock.Any())

	stock, err := suite.stockService.AdjustQuantity(context.Background(), testTenant, 4, "decrement")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, stock.Adet)
}

func (suite *StockServiceTestSuite) TestAdjustQuantity_InvalidOperation() {
	_, err := suite.stockService.AdjustQuantity(context.Background(), testTenant, 4, "double")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStockOperation)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *StockServiceTestSuite) TestAdjustQuantity_NotFound() {
	suite.mockRepo.EXPECT().AdjustQuantity(testTenant, int64(4), 1).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.stockService.AdjustQuantity(context.Background(), testTenant, 4, "increment")

	assert.ErrorIs(suite.T(), err, apperrors.ErrStockNotFound)
}

func (suite *StockServiceTestSuite) TestUpdate_PartialFields() {
	suite.mockRepo.EXPECT().Update(testTenant, int64(4), map[string]interface{}{"adet": 10}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(4)).Return(&models.Stock{ID: 4, StokAdi: "Filtre", Adet: 10}, nil)
	suite.mockAuditor.EXPECT().Record(gomock.Any(), testTenant, models.ActionStockUpdate, "Filtre")

	stock, err := suite.stockService.Update(context.Background(), testTenant, 4, &service.UpdateStockRequest{Adet: intPtr(10)})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, stock.Adet)
}

func (suite *StockServiceTestSuite) TestDeleteAll() {
	suite.mockRepo.EXPECT().DeleteAll(testTenant).Return(int64(2), nil)
	suite.mockAuditor.EXPECT().Record(gomock.Any(), testTenant, models.ActionStockDelete, "2 stok")

	resp, err := suite.stockService.DeleteAll(context.Background(), testTenant)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Deleted)
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}

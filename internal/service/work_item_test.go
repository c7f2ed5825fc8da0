package service_test

import (
	"context"
	"testing"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkItemServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockWorkItemRepositoryInterface
	mockCards       *mocks.MockCardRepositoryInterface
	mockQuotes      *mocks.MockQuoteRepositoryInterface
	mockStock       *mocks.MockStockRepositoryInterface
	workItemService *service.WorkItemService
}

func (suite *WorkItemServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWorkItemRepositoryInterface(suite.ctrl)
	suite.mockCards = mocks.NewMockCardRepositoryInterface(suite.ctrl)
	suite.mockQuotes = mocks.NewMockQuoteRepositoryInterface(suite.ctrl)
	suite.mockStock = mocks.NewMockStockRepositoryInterface(suite.ctrl)
	suite.workItemService = service.NewWorkItemService(suite.mockRepo, suite.mockCards, suite.mockQuotes, suite.mockStock, service.NewValidator())
}

func (suite *WorkItemServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkItemServiceTestSuite) TestCreate_OnCard() {
	req := &service.CreateWorkItemRequest{WorkItemInput: validWorkItem(), CardID: int64Ptr(5)}
	suite.mockCards.EXPECT().Exists(testTenant, int64(5)).Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(item *models.WorkItem) error {
		assert.Equal(suite.T(), testTenant, item.TenantID)
		require.NotNil(suite.T(), item.CardID)
		assert.Equal(suite.T(), int64(5), *item.CardID)
		assert.Nil(suite.T(), item.TeklifID)
		return nil
	})

	item, err := suite.workItemService.Create(context.Background(), testTenant, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1500, item.ToplamFiyat)
}

func (suite *WorkItemServiceTestSuite) TestCreate_CardOfAnotherTenant() {
	req := &service.CreateWorkItemRequest{WorkItemInput: validWorkItem(), CardID: int64Ptr(5)}
	suite.mockCards.EXPECT().Exists(testTenant, int64(5)).Return(false, nil)

	_, err := suite.workItemService.Create(context.Background(), testTenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCardNotFound)
}

func (suite *WorkItemServiceTestSuite) TestCreate_QuoteOfAnotherTenant() {
	req := &service.CreateWorkItemRequest{WorkItemInput: validWorkItem(), TeklifID: int64Ptr(9)}
	suite.mockQuotes.EXPECT().Exists(testTenant, int64(9)).Return(false, nil)

	_, err := suite.workItemService.Create(context.Background(), testTenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrQuoteNotFound)
}

func (suite *WorkItemServiceTestSuite) TestCreate_BothOwnersRejected() {
	req := &service.CreateWorkItemRequest{WorkItemInput: validWorkItem(), CardID: int64Ptr(5), TeklifID: int64Ptr(9)}

	_, err := suite.workItemService.Create(context.Background(), testTenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkItemOwnerAmbiguous)
}

func (suite *WorkItemServiceTestSuite) TestUpdate_FromStockNeedsTenantStock() {
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(3)).Return(&models.WorkItem{ID: 3}, nil)
	suite.mockStock.EXPECT().Exists(testTenant, int64(77)).Return(false, nil)

	_, err := suite.workItemService.Update(context.Background(), testTenant, 3, &service.UpdateWorkItemRequest{
		IsFromStock: boolPtr(true),
		StockID:     int64Ptr(77),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStockNotFound)
}

func (suite *WorkItemServiceTestSuite) TestCreate_ForeignStockWithoutFromStockFlag() {
	input := validWorkItem()
	input.StockID = int64Ptr(77)
	req := &service.CreateWorkItemRequest{WorkItemInput: input, CardID: int64Ptr(5)}
	suite.mockCards.EXPECT().Exists(testTenant, int64(5)).Return(true, nil)
	suite.mockStock.EXPECT().Exists(testTenant, int64(77)).Return(false, nil)

	_, err := suite.workItemService.Create(context.Background(), testTenant, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStockNotFound)
}

func (suite *WorkItemServiceTestSuite) TestCreate_OwnStockWithoutFromStockFlag() {
	input := validWorkItem()
	input.StockID = int64Ptr(77)
	req := &service.CreateWorkItemRequest{WorkItemInput: input}
	suite.mockStock.EXPECT().Exists(testTenant, int64(77)).Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	item, err := suite.workItemService.Create(context.Background(), testTenant, req)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), item.IsFromStock)
	assert.Equal(suite.T(), int64(77), *item.StockID)
}

func (suite *WorkItemServiceTestSuite) TestUpdate_ForeignStockWithoutFromStockFlag() {
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(3)).Return(&models.WorkItem{ID: 3}, nil)
	suite.mockStock.EXPECT().Exists(testTenant, int64(77)).Return(false, nil)

	_, err := suite.workItemService.Update(context.Background(), testTenant, 3, &service.UpdateWorkItemRequest{
		StockID: int64Ptr(77),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStockNotFound)
}

func (suite *WorkItemServiceTestSuite) TestUpdate_PartialFields() {
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(3)).Return(&models.WorkItem{ID: 3}, nil)
	suite.mockRepo.EXPECT().Update(testTenant, int64(3), map[string]interface{}{"birim_adedi": 4, "toplam_fiyat": 3000}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(3)).Return(&models.WorkItem{ID: 3, BirimAdedi: 4, ToplamFiyat: 3000}, nil)

	item, err := suite.workItemService.Update(context.Background(), testTenant, 3, &service.UpdateWorkItemRequest{
		BirimAdedi:  intPtr(4),
		ToplamFiyat: intPtr(3000),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, item.BirimAdedi)
}

func TestWorkItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkItemServiceTestSuite))
}

package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/models"
)

func itemServiceUnderTest() (ItemService, *MockItemRepository, *MockShelfRepository, *MockMovementRepository) {
	itemRepo := new(MockItemRepository)
	shelfRepo := new(MockShelfRepository)
	movementRepo := new(MockMovementRepository)
	return NewItemService(itemRepo, shelfRepo, movementRepo), itemRepo, shelfRepo, movementRepo
}

func TestItemService_CreateRequiresName(t *testing.T) {
	svc, _, _, _ := itemServiceUnderTest()

	_, err := svc.CreateItem(dto.ItemCreate{Name: "   "}, "root@example.com")

	assert.Error(t, err)
	assert.Equal(t, 400, apierror.StatusOf(err))
}

func TestItemService_CreateResolvesLocation(t *testing.T) {
	svc, itemRepo, shelfRepo, _ := itemServiceUnderTest()
	shelf := &models.Shelf{BaseModel: models.BaseModel{ID: 9}, Label: "B-2"}
	shelfRepo.On("FindByLocation", "SYS1", "B-2").Return(shelf, nil)
	itemRepo.On("Create", mock.AnythingOfType("*models.Item")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Item).ID = 4
	}).Return(nil)
	itemRepo.On("FindRow", uint(4)).Return(&dto.ItemListRow{ID: 4, Name: "gasket"}, nil)

	row, err := svc.CreateItem(dto.ItemCreate{Name: "gasket", SystemCode: "SYS1", ShelfLabel: "B-2"}, "ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, uint(4), row.ID)
	itemRepo.AssertExpectations(t)
}

func TestItemService_CreateUnknownLocation(t *testing.T) {
	svc, _, shelfRepo, _ := itemServiceUnderTest()
	shelfRepo.On("FindByLocation", "SYS1", "nope").Return(nil, nil)

	_, err := svc.CreateItem(dto.ItemCreate{Name: "gasket", SystemCode: "SYS1", ShelfLabel: "nope"}, "")

	assert.Error(t, err)
	assert.Equal(t, 400, apierror.StatusOf(err))
}

func TestItemService_CreateDuplicateSKU(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	taken := "W-1"
	itemRepo.On("FindBySKU", "W-1").Return(&models.Item{BaseModel: models.BaseModel{ID: 7}, SKU: &taken}, nil)

	_, err := svc.CreateItem(dto.ItemCreate{Name: "widget", SKU: "W-1"}, "")

	assert.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
	itemRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestItemService_UpdateSKUConflict(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	itemRepo.On("FindByID", uint(3)).Return(&models.Item{BaseModel: models.BaseModel{ID: 3}, Name: "gasket"}, nil)
	taken := "W-1"
	itemRepo.On("FindBySKU", "W-1").Return(&models.Item{BaseModel: models.BaseModel{ID: 7}, SKU: &taken}, nil)

	sku := "W-1"
	_, err := svc.UpdateItemPartial(3, dto.ItemPatch{SKU: &sku})

	assert.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestItemService_UpdateKeepsOwnSKU(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	own := "W-1"
	item := &models.Item{BaseModel: models.BaseModel{ID: 7}, Name: "widget", SKU: &own}
	itemRepo.On("FindByID", uint(7)).Return(item, nil)
	itemRepo.On("FindBySKU", "W-1").Return(item, nil)
	itemRepo.On("Update", item).Return(nil)
	itemRepo.On("FindRow", uint(7)).Return(&dto.ItemListRow{ID: 7, SKU: "W-1"}, nil)

	sku := "W-1"
	row, err := svc.UpdateItemPartial(7, dto.ItemPatch{SKU: &sku})

	assert.NoError(t, err)
	assert.Equal(t, "W-1", row.SKU)
}

func TestItemService_CreateClearanceRange(t *testing.T) {
	svc, _, _, _ := itemServiceUnderTest()

	_, err := svc.CreateItem(dto.ItemCreate{Name: "gasket", ClearanceLevel: 5}, "")

	assert.Error(t, err)
	assert.Equal(t, 400, apierror.StatusOf(err))
}

func TestItemService_ListClampsStalePage(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	itemRepo.On("CountSearch", mock.Anything, mock.Anything).Return(int64(137), nil)
	// 137 rows at 50 per page is 3 pages; page 5 lands on page 3, offset 100.
	itemRepo.On("Search", mock.Anything, mock.Anything, mock.Anything, 50, 100).Return([]dto.ItemListRow{{ID: 101}}, nil)

	page, err := svc.ListItems(ListQuery{Page: 5}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, int64(137), page.Total)
	itemRepo.AssertExpectations(t)
}

func TestItemService_ListEmptyResultIsNotNil(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	itemRepo.On("CountSearch", mock.Anything, mock.Anything).Return(int64(0), nil)
	itemRepo.On("Search", mock.Anything, mock.Anything, mock.Anything, 50, 0).Return(nil, nil)

	page, err := svc.ListItems(ListQuery{}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
}

func TestItemService_UpdateArchivedRejected(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	archived := &models.Item{BaseModel: models.BaseModel{ID: 1, IsDeleted: 1}, Name: "gasket"}
	itemRepo.On("FindByID", uint(1)).Return(archived, nil)

	name := "new name"
	_, err := svc.UpdateItemPartial(1, dto.ItemPatch{Name: &name})

	assert.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestItemService_DeleteBlockedWhileCheckedOut(t *testing.T) {
	svc, itemRepo, _, movementRepo := itemServiceUnderTest()
	itemRepo.On("FindByID", uint(1)).Return(&models.Item{BaseModel: models.BaseModel{ID: 1}}, nil)
	movementRepo.On("OutstandingByItem", uint(1)).Return(-2, nil)

	err := svc.DeleteItem(1)

	assert.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestItemService_DeleteBlockedWhileStocked(t *testing.T) {
	svc, itemRepo, _, movementRepo := itemServiceUnderTest()
	itemRepo.On("FindByID", uint(1)).Return(&models.Item{BaseModel: models.BaseModel{ID: 1}, Quantity: 3}, nil)
	movementRepo.On("OutstandingByItem", uint(1)).Return(0, nil)

	err := svc.DeleteItem(1)

	assert.Error(t, err)
	assert.Equal(t, 409, apierror.StatusOf(err))
}

func TestItemService_DeleteIdempotent(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	archived := &models.Item{BaseModel: models.BaseModel{ID: 1, IsDeleted: 1}}
	itemRepo.On("FindByID", uint(1)).Return(archived, nil)

	err := svc.DeleteItem(1)

	assert.NoError(t, err)
	itemRepo.AssertNotCalled(t, "Delete", uint(1))
}

func TestItemService_DeleteReconciled(t *testing.T) {
	svc, itemRepo, _, movementRepo := itemServiceUnderTest()
	itemRepo.On("FindByID", uint(1)).Return(&models.Item{BaseModel: models.BaseModel{ID: 1}}, nil)
	movementRepo.On("OutstandingByItem", uint(1)).Return(0, nil)
	itemRepo.On("Delete", uint(1)).Return(nil)

	err := svc.DeleteItem(1)

	assert.NoError(t, err)
	itemRepo.AssertExpectations(t)
}

func TestItemService_GetTimelineClampsLimit(t *testing.T) {
	svc, itemRepo, _, movementRepo := itemServiceUnderTest()
	itemRepo.On("FindByID", uint(1)).Return(&models.Item{BaseModel: models.BaseModel{ID: 1}}, nil)
	movementRepo.On("FindByItem", uint(1), 500).Return([]models.Movement{}, nil)

	_, err := svc.GetTimeline(1, 9999)

	assert.NoError(t, err)
	movementRepo.AssertExpectations(t)
}

func TestItemService_GetItemNotFound(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	itemRepo.On("FindRow", uint(42)).Return(nil, nil)

	_, err := svc.GetItem(42)

	assert.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestItemService_GetItemRepoError(t *testing.T) {
	svc, itemRepo, _, _ := itemServiceUnderTest()
	itemRepo.On("FindRow", uint(42)).Return(nil, errors.New("db gone"))

	_, err := svc.GetItem(42)

	assert.Error(t, err)
	assert.Equal(t, 500, apierror.StatusOf(err))
}

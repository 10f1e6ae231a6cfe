package services

import (
	"time"

	"github.com/stretchr/testify/mock"

	"Shelved/internal/dto"
	"Shelved/internal/models"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(entity *models.Item) error {
	args := m.Called(entity)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(id uint) (*models.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(includeDeleted bool) ([]models.Item, error) {
	args := m.Called(includeDeleted)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(entity *models.Item) error {
	args := m.Called(entity)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockItemRepository) Restore(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockItemRepository) FindBySKU(sku string) (*models.Item, error) {
	args := m.Called(sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Search(whereClause string, queryArgs []interface{}, order string, limit int, offset int) ([]dto.ItemListRow, error) {
	args := m.Called(whereClause, queryArgs, order, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ItemListRow), args.Error(1)
}

func (m *MockItemRepository) CountSearch(whereClause string, queryArgs []interface{}) (int64, error) {
	args := m.Called(whereClause, queryArgs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) FindRow(id uint) (*dto.ItemListRow, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemListRow), args.Error(1)
}

func (m *MockItemRepository) CountsSummary(maxClearance *int) (dto.StatsSummary, error) {
	args := m.Called(maxClearance)
	return args.Get(0).(dto.StatsSummary), args.Error(1)
}

func (m *MockItemRepository) BySystem(maxClearance *int) ([]dto.SystemBreakdown, error) {
	args := m.Called(maxClearance)
	return args.Get(0).([]dto.SystemBreakdown), args.Error(1)
}

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Append(movement *models.Movement) error {
	args := m.Called(movement)
	return args.Error(0)
}

func (m *MockMovementRepository) AppendTransfer(out *models.Movement, in *models.Movement) error {
	args := m.Called(out, in)
	return args.Error(0)
}

func (m *MockMovementRepository) Search(whereClause string, queryArgs []interface{}, limit int, offset int) ([]models.Movement, error) {
	args := m.Called(whereClause, queryArgs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movement), args.Error(1)
}

func (m *MockMovementRepository) CountSearch(whereClause string, queryArgs []interface{}) (int64, error) {
	args := m.Called(whereClause, queryArgs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovementRepository) FindByItem(itemID uint, limit int) ([]models.Movement, error) {
	args := m.Called(itemID, limit)
	return args.Get(0).([]models.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindRecent(limit int) ([]models.Movement, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Movement), args.Error(1)
}

func (m *MockMovementRepository) OutstandingByItem(itemID uint) (int, error) {
	args := m.Called(itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockMovementRepository) OutstandingByHolder(holder string, itemID *uint, maxClearance *int) ([]dto.HolderOutstanding, error) {
	args := m.Called(holder, itemID, maxClearance)
	return args.Get(0).([]dto.HolderOutstanding), args.Error(1)
}

func (m *MockMovementRepository) FindOverdue(holder string, maxClearance *int) ([]dto.OverdueRow, error) {
	args := m.Called(holder, maxClearance)
	return args.Get(0).([]dto.OverdueRow), args.Error(1)
}

func (m *MockMovementRepository) ClaimOverdue(now time.Time) ([]dto.OverdueRow, error) {
	args := m.Called(now)
	return args.Get(0).([]dto.OverdueRow), args.Error(1)
}

type MockShelfRepository struct {
	mock.Mock
}

func (m *MockShelfRepository) Create(entity *models.Shelf) error {
	args := m.Called(entity)
	return args.Error(0)
}

func (m *MockShelfRepository) FindByID(id uint) (*models.Shelf, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelf), args.Error(1)
}

func (m *MockShelfRepository) FindAll(includeDeleted bool) ([]models.Shelf, error) {
	args := m.Called(includeDeleted)
	return args.Get(0).([]models.Shelf), args.Error(1)
}

func (m *MockShelfRepository) Update(entity *models.Shelf) error {
	args := m.Called(entity)
	return args.Error(0)
}

func (m *MockShelfRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockShelfRepository) Restore(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockShelfRepository) FindForList(systemID *uint, includeDeleted bool) ([]models.Shelf, error) {
	args := m.Called(systemID, includeDeleted)
	return args.Get(0).([]models.Shelf), args.Error(1)
}

func (m *MockShelfRepository) LabelExists(systemID uint, label string, excludeID uint) (bool, error) {
	args := m.Called(systemID, label, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShelfRepository) FindByLocation(systemCode string, shelfLabel string) (*models.Shelf, error) {
	args := m.Called(systemCode, shelfLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelf), args.Error(1)
}

func (m *MockShelfRepository) DeleteCascade(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get() (*models.Settings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(adminEmail string, reminderFreqMinutes int) (*models.Settings, error) {
	args := m.Called(adminEmail, reminderFreqMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

package catalog

import (
	"context"
	"testing"

	"sportrent/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, it *domain.Item) error {
	args := m.Called(ctx, it)
	if it != nil {
		it.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, categoryID *int64, availableOnly bool) ([]domain.Item, error) {
	args := m.Called(ctx, categoryID, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, it *domain.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 1
	}
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationGuard struct {
	mock.Mock
}

func (m *MockReservationGuard) IsItemHeld(ctx context.Context, itemID int64) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *MockItemRepository, *MockCategoryRepository, *MockReservationGuard) {
	items := new(MockItemRepository)
	categories := new(MockCategoryRepository)
	guard := new(MockReservationGuard)
	return NewService(items, categories, guard), items, categories, guard
}

func TestCreateItem_Success(t *testing.T) {
	service, items, _, _ := newTestService()

	items.On("Create", mock.Anything, mock.Anything).Return(nil)

	item, err := service.CreateItem(context.Background(), CreateItemRequest{
		Name:         "Racket",
		Brand:        "Wilson",
		PricePerHour: decimal.RequireFromString("5.00"),
	})

	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.True(t, item.Available, "new items start available")
	assert.Nil(t, item.CategoryID)
}

func TestCreateItem_RejectsNegativePrice(t *testing.T) {
	service, items, _, _ := newTestService()

	_, err := service.CreateItem(context.Background(), CreateItemRequest{
		Name:         "Racket",
		PricePerHour: decimal.RequireFromString("-1"),
	})

	assert.ErrorIs(t, err, ErrValidation)
	items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateItem_RejectsEmptyName(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.CreateItem(context.Background(), CreateItemRequest{
		Name:         "   ",
		PricePerHour: decimal.RequireFromString("5.00"),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateItem_UnknownCategory(t *testing.T) {
	service, _, categories, _ := newTestService()

	catID := int64(9)
	categories.On("GetByID", mock.Anything, catID).Return(nil, nil)

	_, err := service.CreateItem(context.Background(), CreateItemRequest{
		Name:         "Racket",
		PricePerHour: decimal.RequireFromString("5.00"),
		CategoryID:   &catID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetItem_NotFound(t *testing.T) {
	service, items, _, _ := newTestService()

	items.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	_, err := service.GetItem(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItem_RevalidatesPrice(t *testing.T) {
	service, items, _, _ := newTestService()

	items.On("GetByID", mock.Anything, int64(1)).Return(&domain.Item{
		ID:           1,
		Name:         "Racket",
		PricePerHour: decimal.RequireFromString("5.00"),
		Available:    true,
	}, nil)

	bad := decimal.RequireFromString("-2")
	_, err := service.UpdateItem(context.Background(), 1, UpdateItemRequest{PricePerHour: &bad})
	assert.ErrorIs(t, err, ErrValidation)
	items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteItem_RefusedWhileHeld(t *testing.T) {
	service, items, _, guard := newTestService()

	items.On("GetByID", mock.Anything, int64(1)).Return(&domain.Item{ID: 1, Name: "Racket"}, nil)
	guard.On("IsItemHeld", mock.Anything, int64(1)).Return(true, nil)

	err := service.DeleteItem(context.Background(), 1)
	assert.ErrorIs(t, err, ErrItemReserved)
	items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteItem_Success(t *testing.T) {
	service, items, _, guard := newTestService()

	items.On("GetByID", mock.Anything, int64(1)).Return(&domain.Item{ID: 1, Name: "Racket"}, nil)
	guard.On("IsItemHeld", mock.Anything, int64(1)).Return(false, nil)
	items.On("Delete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, service.DeleteItem(context.Background(), 1))
	items.AssertExpectations(t)
}

func TestDeleteCategory_BlockedWhileNonEmpty(t *testing.T) {
	service, items, categories, _ := newTestService()

	categories.On("GetByID", mock.Anything, int64(3)).Return(&domain.Category{ID: 3, Name: "Rackets"}, nil)

	// two items assigned: delete must be refused
	items.On("CountByCategory", mock.Anything, int64(3)).Return(int64(2), nil).Once()

	err := service.DeleteCategory(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCategoryNotEmpty)
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	// after both items are detached the same call succeeds
	items.On("CountByCategory", mock.Anything, int64(3)).Return(int64(0), nil).Once()
	categories.On("Delete", mock.Anything, int64(3)).Return(nil)

	assert.NoError(t, service.DeleteCategory(context.Background(), 3))
	categories.AssertExpectations(t)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	service, _, categories, _ := newTestService()

	categories.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	err := service.DeleteCategory(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCategory_RejectsEmptyName(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.CreateCategory(context.Background(), CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetAvailability_Toggle(t *testing.T) {
	service, items, _, _ := newTestService()

	items.On("GetByID", mock.Anything, int64(1)).Return(&domain.Item{ID: 1, Name: "Racket", Available: true}, nil)
	items.On("SetAvailability", mock.Anything, int64(1), false).Return(nil)

	item, err := service.SetAvailability(context.Background(), 1, false)
	assert.NoError(t, err)
	assert.False(t, item.Available)
}

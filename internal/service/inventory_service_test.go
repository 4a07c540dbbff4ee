package service

import (
	"context"
	"testing"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture(t *testing.T) (InventoryService, *stubInventoryRepo, uuid.UUID) {
	t.Helper()
	inventoryRepo := newStubInventoryRepo()
	categoryRepo := newStubCategoryRepo()
	categoryID := categoryRepo.seed(testUser, "Coffee Beans")
	svc := NewInventoryService(inventoryRepo, categoryRepo, newStubStoreRepo(), nil, t.TempDir())
	return svc, inventoryRepo, categoryID
}

func beansRequest(categoryID uuid.UUID, quantity, reorderLevel int) dto.CreateInventoryRequest {
	return dto.CreateInventoryRequest{
		SKU:           "BEAN-ARA-1KG",
		Name:          "Arabica Beans 1kg",
		CategoryID:    categoryID.String(),
		OrderUnit:     "bag",
		Unit:          "g",
		Quantity:      quantity,
		ReorderLevel:  reorderLevel,
		UnitPrice:     decimal.NewFromInt(850),
		AmountPerUnit: decimal.NewFromInt(1000),
	}
}

func TestInventoryCreateDerivesStatus(t *testing.T) {
	svc, _, categoryID := newInventoryFixture(t)

	cases := []struct {
		quantity, reorder int
		want              string
	}{
		{0, 5, "OUT_OF_STOCK"},
		{5, 5, "LOW_IN_STOCK"},
		{6, 5, "IN_STOCK"},
		{1, 0, "IN_STOCK"},
	}
	for _, tc := range cases {
		req := beansRequest(categoryID, tc.quantity, tc.reorder)
		req.SKU = uuid.NewString() // unique per case
		resp, err := svc.Create(context.Background(), testUser, req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.Status, "qty=%d reorder=%d", tc.quantity, tc.reorder)
	}
}

func TestInventoryUpdateRecomputesStatus(t *testing.T) {
	svc, _, categoryID := newInventoryFixture(t)

	created, err := svc.Create(context.Background(), testUser, beansRequest(categoryID, 20, 5))
	require.NoError(t, err)
	assert.Equal(t, "IN_STOCK", created.Status)

	req := beansRequest(categoryID, 3, 5)
	updated, err := svc.Update(context.Background(), testUser, uuid.MustParse(created.ID), dto.UpdateInventoryRequest{CreateInventoryRequest: req})
	require.NoError(t, err)
	assert.Equal(t, "LOW_IN_STOCK", updated.Status)
}

func TestInventoryStats(t *testing.T) {
	svc, repo, categoryID := newInventoryFixture(t)

	seed := func(sku string, qty, reorder int) {
		item := &model.Inventory{
			UserID: testUser, SKU: sku, Name: sku, CategoryID: categoryID,
			OrderUnit: "bag", Unit: "g", Quantity: qty, ReorderLevel: reorder,
			UnitPrice: decimal.NewFromInt(1), AmountPerUnit: decimal.NewFromInt(1),
			Status: model.DeriveStockStatus(qty, reorder),
		}
		require.NoError(t, repo.Create(context.Background(), item))
	}
	seed("a", 10, 2)
	seed("b", 10, 2)
	seed("c", 1, 2)
	seed("d", 0, 2)

	stats, err := svc.Stats(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.InStockCount)
	assert.Equal(t, int64(1), stats.LowInStockCount)
	assert.Equal(t, int64(1), stats.OutOfStockCount)
}

func TestInventoryGetUnknownID(t *testing.T) {
	svc, _, _ := newInventoryFixture(t)

	_, err := svc.GetByID(context.Background(), testUser, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apierror.CodeRecordNotFound, apierror.AsAPIError(err).Code)
}

func TestInventoryCreateUnknownCategory(t *testing.T) {
	svc, _, _ := newInventoryFixture(t)

	_, err := svc.Create(context.Background(), testUser, beansRequest(uuid.New(), 10, 2))
	require.Error(t, err)
	assert.Equal(t, apierror.CodeRelatedRecordMissing, apierror.AsAPIError(err).Code)
}

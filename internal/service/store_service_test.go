package service

import (
	"context"
	"testing"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardCreatesStoreAndDefaultCategories(t *testing.T) {
	storeRepo := newStubStoreRepo()
	categoryRepo := newStubCategoryRepo()
	svc := NewStoreService(storeRepo, categoryRepo)

	resp, err := svc.Onboard(context.Background(), testUser, dto.OnboardRequest{Name: "Kape Natin"})
	require.NoError(t, err)
	assert.Equal(t, "Kape Natin", resp.Name)
	assert.Equal(t, "PHP", resp.Currency)

	categories, err := categoryRepo.List(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, categories, len(DefaultCategories))

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Uncategorized")
	assert.Contains(t, names, "Coffee Beans")
}

func TestOnboardTwiceRejected(t *testing.T) {
	storeRepo := newStubStoreRepo()
	svc := NewStoreService(storeRepo, newStubCategoryRepo())

	_, err := svc.Onboard(context.Background(), testUser, dto.OnboardRequest{Name: "First"})
	require.NoError(t, err)

	_, err = svc.Onboard(context.Background(), testUser, dto.OnboardRequest{Name: "Second"})
	require.Error(t, err)
	assert.Equal(t, apierror.CodeUniqueConstraint, apierror.AsAPIError(err).Code)
}

func TestStoreUpdatePartial(t *testing.T) {
	storeRepo := newStubStoreRepo()
	svc := NewStoreService(storeRepo, newStubCategoryRepo())

	_, err := svc.Onboard(context.Background(), testUser, dto.OnboardRequest{Name: "Kape Natin", Currency: "USD"})
	require.NoError(t, err)

	newName := "Kape Natin PH"
	updated, err := svc.Update(context.Background(), testUser, dto.UpdateStoreRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Kape Natin PH", updated.Name)
	assert.Equal(t, "USD", updated.Currency)
}

func TestCategoryDuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), testUser, dto.CreateCategoryRequest{Name: "Coffee Beans"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), testUser, dto.CreateCategoryRequest{Name: "coffee beans"})
	require.Error(t, err)
	assert.Equal(t, apierror.CodeUniqueConstraint, apierror.AsAPIError(err).Code)
}

func TestCategorySameNameDifferentUsers(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), "user_a", dto.CreateCategoryRequest{Name: "Coffee Beans"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "user_b", dto.CreateCategoryRequest{Name: "Coffee Beans"})
	require.NoError(t, err)
}

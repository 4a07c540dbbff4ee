package service

import (
	"context"
	"strings"

	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"
	"github.com/engrjeff/kapenatinph/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so runTx executes callbacks
// directly without a transaction.

// ── Category stub ────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.ProductCategory
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.ProductCategory)}
}

func (r *stubCategoryRepo) seed(userID, name string) uuid.UUID {
	id := uuid.New()
	r.categories[id] = &model.ProductCategory{ID: id, UserID: userID, Name: name}
	return id
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.ProductCategory) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cloned := *c
	r.categories[c.ID] = &cloned
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.ProductCategory, error) {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, userID, name string) (*model.ProductCategory, error) {
	for _, c := range r.categories {
		if c.UserID == userID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context, userID string) ([]model.ProductCategory, error) {
	var out []model.ProductCategory
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.ProductCategory) error {
	cloned := *c
	r.categories[c.ID] = &cloned
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CreateManyTx(_ *gorm.DB, categories []model.ProductCategory) error {
	for i := range categories {
		if categories[i].ID == uuid.Nil {
			categories[i].ID = uuid.New()
		}
		cloned := categories[i]
		r.categories[cloned.ID] = &cloned
	}
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── Product stub ─────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.VariantOptions {
		opt := &p.VariantOptions[i]
		if opt.ID == uuid.Nil {
			opt.ID = uuid.New()
		}
		opt.ProductID = p.ID
		for j := range opt.Values {
			if opt.Values[j].ID == uuid.Nil {
				opt.Values[j].ID = uuid.New()
			}
			opt.Values[j].OptionID = opt.ID
		}
	}
	for i := range p.Variants {
		if p.Variants[i].ID == uuid.Nil {
			p.Variants[i].ID = uuid.New()
		}
		p.Variants[i].ProductID = p.ID
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, userID string, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) UpdateProductTx(_ *gorm.DB, p *model.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = p.Name
	stored.Description = p.Description
	stored.CategoryID = p.CategoryID
	stored.SKU = p.SKU
	stored.BasePrice = p.BasePrice
	stored.IsActive = p.IsActive
	stored.HasVariants = p.HasVariants
	return nil
}

func (r *stubProductRepo) CreateOptionTx(_ *gorm.DB, opt *model.ProductVariantOption) error {
	p, ok := r.products[opt.ProductID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	opt.ID = uuid.New()
	for j := range opt.Values {
		opt.Values[j].ID = uuid.New()
		opt.Values[j].OptionID = opt.ID
	}
	p.VariantOptions = append(p.VariantOptions, *opt)
	return nil
}

func (r *stubProductRepo) UpdateOptionTx(_ *gorm.DB, opt *model.ProductVariantOption) error {
	for _, p := range r.products {
		for i := range p.VariantOptions {
			if p.VariantOptions[i].ID == opt.ID {
				p.VariantOptions[i].Name = opt.Name
				p.VariantOptions[i].Position = opt.Position
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductRepo) DeleteOptionsTx(_ *gorm.DB, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	for _, p := range r.products {
		kept := p.VariantOptions[:0]
		for _, opt := range p.VariantOptions {
			if !drop[opt.ID] {
				kept = append(kept, opt)
			}
		}
		p.VariantOptions = kept
	}
	return nil
}

func (r *stubProductRepo) CreateValueTx(_ *gorm.DB, v *model.ProductVariantOptionValue) error {
	for _, p := range r.products {
		for i := range p.VariantOptions {
			if p.VariantOptions[i].ID == v.OptionID {
				v.ID = uuid.New()
				p.VariantOptions[i].Values = append(p.VariantOptions[i].Values, *v)
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductRepo) UpdateValueTx(_ *gorm.DB, v *model.ProductVariantOptionValue) error {
	for _, p := range r.products {
		for i := range p.VariantOptions {
			for j := range p.VariantOptions[i].Values {
				if p.VariantOptions[i].Values[j].ID == v.ID {
					p.VariantOptions[i].Values[j].Value = v.Value
					p.VariantOptions[i].Values[j].Position = v.Position
					return nil
				}
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductRepo) DeleteValuesTx(_ *gorm.DB, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	for _, p := range r.products {
		for i := range p.VariantOptions {
			kept := p.VariantOptions[i].Values[:0]
			for _, v := range p.VariantOptions[i].Values {
				if !drop[v.ID] {
					kept = append(kept, v)
				}
			}
			p.VariantOptions[i].Values = kept
		}
	}
	return nil
}

func (r *stubProductRepo) CreateVariantTx(_ *gorm.DB, v *model.ProductVariant) error {
	p, ok := r.products[v.ProductID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.ID = uuid.New()
	p.Variants = append(p.Variants, *v)
	return nil
}

func (r *stubProductRepo) UpdateVariantTx(_ *gorm.DB, v *model.ProductVariant) error {
	for _, p := range r.products {
		for i := range p.Variants {
			if p.Variants[i].ID == v.ID {
				p.Variants[i].Title = v.Title
				p.Variants[i].SKU = v.SKU
				p.Variants[i].Price = v.Price
				p.Variants[i].IsDefault = v.IsDefault
				p.Variants[i].IsAvailable = v.IsAvailable
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubProductRepo) DeleteVariantsTx(_ *gorm.DB, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	for _, p := range r.products {
		kept := p.Variants[:0]
		for _, v := range p.Variants {
			if !drop[v.ID] {
				kept = append(kept, v)
			}
		}
		p.Variants = kept
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Inventory stub ───────────────────────────────────────────────────────────

type stubInventoryRepo struct {
	items map[uuid.UUID]*model.Inventory
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[uuid.UUID]*model.Inventory)}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *model.Inventory) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cloned := *item
	r.items[item.ID] = &cloned
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Inventory, error) {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *item
	return &cloned, nil
}

func (r *stubInventoryRepo) FindByIDTx(_ *gorm.DB, userID string, id uuid.UUID) (*model.Inventory, error) {
	return r.FindByID(context.Background(), userID, id)
}

func (r *stubInventoryRepo) List(_ context.Context, userID string, filter dto.InventoryFilter) ([]model.Inventory, int64, error) {
	var out []model.Inventory
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		if filter.Status != "" && string(item.Status) != filter.Status {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *stubInventoryRepo) ListAll(_ context.Context, userID string) ([]model.Inventory, error) {
	var out []model.Inventory
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *model.Inventory) error {
	cloned := *item
	r.items[item.ID] = &cloned
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubInventoryRepo) CountByStatus(_ context.Context, userID string, status model.InventoryStatus) (int64, error) {
	var n int64
	for _, item := range r.items {
		if item.UserID == userID && item.Status == status {
			n++
		}
	}
	return n, nil
}

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

// ── Recipe stub ──────────────────────────────────────────────────────────────

type stubRecipeRepo struct {
	recipes   map[uuid.UUID]*model.Recipe
	inventory *stubInventoryRepo
}

func newStubRecipeRepo(inventory *stubInventoryRepo) *stubRecipeRepo {
	return &stubRecipeRepo{
		recipes:   make(map[uuid.UUID]*model.Recipe),
		inventory: inventory,
	}
}

func (r *stubRecipeRepo) FindByID(_ context.Context, userID string, id uuid.UUID) (*model.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok || rec.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	// Emulate the Ingredients.Inventory preload
	cloned := *rec
	cloned.Ingredients = append([]model.RecipeIngredient(nil), rec.Ingredients...)
	for i := range cloned.Ingredients {
		if item, ok := r.inventory.items[cloned.Ingredients[i].InventoryID]; ok {
			cloned.Ingredients[i].Inventory = item
		}
	}
	return &cloned, nil
}

func (r *stubRecipeRepo) List(_ context.Context, userID string, _ dto.RecipeFilter) ([]model.Recipe, int64, error) {
	var out []model.Recipe
	for _, rec := range r.recipes {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubRecipeRepo) ListByProduct(_ context.Context, userID string, productID uuid.UUID) ([]model.Recipe, error) {
	var out []model.Recipe
	for _, rec := range r.recipes {
		if rec.UserID == userID && rec.ProductID == productID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) ListByVariant(_ context.Context, userID string, variantID uuid.UUID) ([]model.Recipe, error) {
	var out []model.Recipe
	for _, rec := range r.recipes {
		if rec.UserID == userID && rec.VariantID != nil && *rec.VariantID == variantID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, userID string, id uuid.UUID) error {
	rec, ok := r.recipes[id]
	if !ok || rec.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.recipes, id)
	return nil
}

func (r *stubRecipeRepo) CreateTx(_ *gorm.DB, rec *model.Recipe) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recipes[rec.ID] = rec
	return nil
}

func (r *stubRecipeRepo) UpdateTx(_ *gorm.DB, rec *model.Recipe) error {
	stored, ok := r.recipes[rec.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = rec.Name
	stored.Description = rec.Description
	stored.Instructions = rec.Instructions
	stored.PrepTimeMinutes = rec.PrepTimeMinutes
	stored.ProductID = rec.ProductID
	stored.VariantID = rec.VariantID
	stored.IsActive = rec.IsActive
	return nil
}

func (r *stubRecipeRepo) DeleteIngredientsTx(_ *gorm.DB, recipeID uuid.UUID) error {
	if rec, ok := r.recipes[recipeID]; ok {
		rec.Ingredients = nil
	}
	return nil
}

func (r *stubRecipeRepo) CreateIngredientTx(_ *gorm.DB, ing *model.RecipeIngredient) error {
	rec, ok := r.recipes[ing.RecipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ing.ID = uuid.New()
	rec.Ingredients = append(rec.Ingredients, *ing)
	return nil
}

func (r *stubRecipeRepo) SetTotalCostTx(_ *gorm.DB, recipeID uuid.UUID, total decimal.Decimal) error {
	rec, ok := r.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rec.TotalCost = total
	return nil
}

func (r *stubRecipeRepo) DB() *gorm.DB { return nil }

var _ repository.RecipeRepository = (*stubRecipeRepo)(nil)

// ── Store stub ───────────────────────────────────────────────────────────────

type stubStoreRepo struct {
	stores map[string]*model.Store // keyed by userID
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{stores: make(map[string]*model.Store)}
}

func (r *stubStoreRepo) FindByUser(_ context.Context, userID string) (*model.Store, error) {
	s, ok := r.stores[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubStoreRepo) Update(_ context.Context, s *model.Store) error {
	cloned := *s
	r.stores[s.UserID] = &cloned
	return nil
}

func (r *stubStoreRepo) CreateTx(_ *gorm.DB, s *model.Store) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cloned := *s
	r.stores[s.UserID] = &cloned
	return nil
}

func (r *stubStoreRepo) DB() *gorm.DB { return nil }

var _ repository.StoreRepository = (*stubStoreRepo)(nil)

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/model"
	"github.com/engrjeff/kapenatinph/internal/repository"
	"github.com/engrjeff/kapenatinph/internal/variant"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const productCacheTTL = 5 * time.Minute

// ProductService defines the business logic contract for the product
// catalog, including the variant option/value/variant reconciliation that
// runs on every update.
type ProductService interface {
	Create(ctx context.Context, userID string, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, userID string, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	rdb          *redis.Client
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, rdb: rdb}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Payload-level uniqueness checks ──────────────────────────────────────────
// The schema layer guarantees shape; duplicate names/values/SKUs within one
// submission are semantic errors and are rejected here before any write.

func checkOptionUniqueness(options []dto.VariantOptionInput) error {
	names := make(map[string]bool, len(options))
	for _, opt := range options {
		key := strings.ToLower(strings.TrimSpace(opt.Name))
		if names[key] {
			return apierror.Duplicate("Option \""+opt.Name+"\" already exists", "name")
		}
		names[key] = true

		values := make(map[string]bool, len(opt.Values))
		for _, v := range opt.Values {
			vKey := strings.ToLower(strings.TrimSpace(v.Value))
			if values[vKey] {
				return apierror.Duplicate("Value \""+v.Value+"\" already exists in option \""+opt.Name+"\"", "value")
			}
			values[vKey] = true
		}
	}
	return nil
}

func checkVariantUniqueness(variants []dto.VariantInput) error {
	skus := make(map[string]bool, len(variants))
	titles := make(map[string]bool, len(variants))
	for _, v := range variants {
		sKey := strings.ToLower(v.SKU)
		if skus[sKey] {
			return apierror.Duplicate("Variant SKU \""+v.SKU+"\" already exists", "sku")
		}
		skus[sKey] = true
		tKey := strings.ToLower(v.Title)
		if titles[tKey] {
			return apierror.Duplicate("Variant \""+v.Title+"\" already exists", "title")
		}
		titles[tKey] = true
	}
	return nil
}

// parseOptional converts a DTO's optional string ID into a uuid pointer.
func parseOptional(id *string) *uuid.UUID {
	if id == nil || *id == "" {
		return nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return nil
	}
	return &parsed
}

// ── Create ───────────────────────────────────────────────────────────────────

func (s *productService) Create(ctx context.Context, userID string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apierror.NewField(apierror.CodeValidation, "Invalid category id", 422, "categoryId")
	}
	if _, err := s.categoryRepo.FindByID(ctx, userID, categoryID); err != nil {
		return nil, apierror.NewField(apierror.CodeRelatedRecordMissing, "Category not found", 404, "categoryId")
	}

	if err := checkOptionUniqueness(req.VariantOptions); err != nil {
		return nil, err
	}
	if err := checkVariantUniqueness(req.Variants); err != nil {
		return nil, err
	}

	p := &model.Product{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		SKU:         req.SKU,
		BasePrice:   req.BasePrice,
		IsActive:    req.IsActive,
		HasVariants: req.HasVariants,
	}

	if req.HasVariants {
		for _, opt := range req.VariantOptions {
			mOpt := model.ProductVariantOption{Name: opt.Name, Position: opt.Position}
			for _, v := range opt.Values {
				mOpt.Values = append(mOpt.Values, model.ProductVariantOptionValue{
					Value:    v.Value,
					Position: v.Position,
				})
			}
			p.VariantOptions = append(p.VariantOptions, mOpt)
		}

		variants := req.Variants
		if len(variants) == 0 {
			// The client normally submits the generated grid; regenerate
			// server-side when it was omitted.
			for _, seed := range variant.BuildVariants(req.Name, req.BasePrice, optionInputs(req.VariantOptions), nil) {
				variants = append(variants, dto.VariantInput{
					Title:       seed.Title,
					SKU:         seed.SKU,
					Price:       seed.Price,
					IsDefault:   seed.IsDefault,
					IsAvailable: seed.IsAvailable,
				})
			}
		}
		for _, v := range variants {
			p.Variants = append(p.Variants, model.ProductVariant{
				Title:       v.Title,
				SKU:         v.SKU,
				Price:       v.Price,
				IsDefault:   v.IsDefault,
				IsAvailable: v.IsAvailable,
			})
		}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.FromDB(err, "product", "sku")
	}

	created, err := s.repo.FindByID(ctx, userID, p.ID)
	if err != nil {
		return nil, apierror.FromDB(err, "product", "")
	}
	return productToResponse(created), nil
}

// optionInputs converts DTO option inputs into the variant engine's shape.
func optionInputs(options []dto.VariantOptionInput) []variant.OptionInput {
	out := make([]variant.OptionInput, 0, len(options))
	for _, opt := range options {
		in := variant.OptionInput{
			ID:       parseOptional(opt.ID),
			Name:     opt.Name,
			Position: opt.Position,
		}
		for _, v := range opt.Values {
			in.Values = append(in.Values, variant.ValueInput{
				ID:       parseOptional(v.ID),
				Value:    v.Value,
				Position: v.Position,
			})
		}
		out = append(out, in)
	}
	return out
}

// ── Read ─────────────────────────────────────────────────────────────────────

func (s *productService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.ProductResponse, error) {
	cacheKey := productCacheKey(userID, id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProductResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "product", "")
	}
	resp := productToResponse(p)

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, productCacheTTL).Err()
		}
	}
	return resp, nil
}

func productCacheKey(userID string, id uuid.UUID) string {
	return "product:" + userID + ":" + id.String()
}

func (s *productService) List(ctx context.Context, userID string, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	products, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, apierror.FromDB(err, "product", "")
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		PageInfo: dto.PageInfo{Total: total, Page: filter.Page, Limit: filter.Limit},
		Data:     data,
	}, nil
}

// ── Update: three-level reconciliation ───────────────────────────────────────
// Persisted state must end up exactly matching the submitted state while
// records whose IDs survive keep their identity. All levels run in ONE
// transaction: a constraint violation on any variant rolls back every
// option/value change too.

func (s *productService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "product", "")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apierror.NewField(apierror.CodeValidation, "Invalid category id", 422, "categoryId")
	}
	if _, err := s.categoryRepo.FindByID(ctx, userID, categoryID); err != nil {
		return nil, apierror.NewField(apierror.CodeRelatedRecordMissing, "Category not found", 404, "categoryId")
	}

	if err := checkOptionUniqueness(req.VariantOptions); err != nil {
		return nil, err
	}
	if err := checkVariantUniqueness(req.Variants); err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		updated := &model.Product{
			ID:          existing.ID,
			Name:        req.Name,
			Description: req.Description,
			CategoryID:  categoryID,
			SKU:         req.SKU,
			BasePrice:   req.BasePrice,
			IsActive:    req.IsActive,
			HasVariants: req.HasVariants,
		}
		if err := s.repo.UpdateProductTx(tx, updated); err != nil {
			return err
		}

		if !req.HasVariants {
			// Turning variants off drops the whole option/variant tree.
			return s.dropVariantTree(tx, existing)
		}

		if err := s.reconcileOptions(tx, existing, req.VariantOptions); err != nil {
			return err
		}
		return s.reconcileVariants(tx, existing, req.Variants)
	})
	if txErr != nil {
		var apiErr *apierror.APIError
		if errors.As(txErr, &apiErr) {
			return nil, apiErr
		}
		return nil, apierror.FromDB(txErr, "product", "sku")
	}

	s.invalidate(ctx, userID, id)

	reloaded, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "product", "")
	}
	return productToResponse(reloaded), nil
}

func (s *productService) dropVariantTree(tx *gorm.DB, existing *model.Product) error {
	optIDs := make([]uuid.UUID, 0, len(existing.VariantOptions))
	for _, opt := range existing.VariantOptions {
		optIDs = append(optIDs, opt.ID)
	}
	if err := s.repo.DeleteOptionsTx(tx, optIDs); err != nil {
		return err
	}
	varIDs := make([]uuid.UUID, 0, len(existing.Variants))
	for _, v := range existing.Variants {
		varIDs = append(varIDs, v.ID)
	}
	return s.repo.DeleteVariantsTx(tx, varIDs)
}

// reconcileOptions diffs the incoming option set against the persisted one,
// then recurses into the value sets of options that survive as updates.
// Newly created options carry their values in the same create; deleted
// options cascade-delete their values at the DB level.
func (s *productService) reconcileOptions(tx *gorm.DB, existing *model.Product, incoming []dto.VariantOptionInput) error {
	existingIDs := make([]uuid.UUID, 0, len(existing.VariantOptions))
	byID := make(map[uuid.UUID]*model.ProductVariantOption, len(existing.VariantOptions))
	for i := range existing.VariantOptions {
		opt := &existing.VariantOptions[i]
		existingIDs = append(existingIDs, opt.ID)
		byID[opt.ID] = opt
	}

	diff := variant.ComputeDiff(incoming, existingIDs, func(o dto.VariantOptionInput) *uuid.UUID {
		return parseOptional(o.ID)
	})

	for _, opt := range diff.Updates {
		optID := *parseOptional(opt.ID)
		if err := s.repo.UpdateOptionTx(tx, &model.ProductVariantOption{
			ID:       optID,
			Name:     opt.Name,
			Position: opt.Position,
		}); err != nil {
			return err
		}
		if err := s.reconcileValues(tx, byID[optID], opt.Values); err != nil {
			return err
		}
	}

	for _, opt := range diff.Creates {
		mOpt := &model.ProductVariantOption{
			ProductID: existing.ID,
			Name:      opt.Name,
			Position:  opt.Position,
		}
		for _, v := range opt.Values {
			mOpt.Values = append(mOpt.Values, model.ProductVariantOptionValue{
				Value:    v.Value,
				Position: v.Position,
			})
		}
		if err := s.repo.CreateOptionTx(tx, mOpt); err != nil {
			return err
		}
	}

	return s.repo.DeleteOptionsTx(tx, diff.Deletes)
}

func (s *productService) reconcileValues(tx *gorm.DB, existingOpt *model.ProductVariantOption, incoming []dto.VariantOptionValueInput) error {
	existingIDs := make([]uuid.UUID, 0, len(existingOpt.Values))
	for _, v := range existingOpt.Values {
		existingIDs = append(existingIDs, v.ID)
	}

	diff := variant.ComputeDiff(incoming, existingIDs, func(v dto.VariantOptionValueInput) *uuid.UUID {
		return parseOptional(v.ID)
	})

	for _, v := range diff.Updates {
		if err := s.repo.UpdateValueTx(tx, &model.ProductVariantOptionValue{
			ID:       *parseOptional(v.ID),
			Value:    v.Value,
			Position: v.Position,
		}); err != nil {
			return err
		}
	}
	for _, v := range diff.Creates {
		if err := s.repo.CreateValueTx(tx, &model.ProductVariantOptionValue{
			OptionID: existingOpt.ID,
			Value:    v.Value,
			Position: v.Position,
		}); err != nil {
			return err
		}
	}
	return s.repo.DeleteValuesTx(tx, diff.Deletes)
}

func (s *productService) reconcileVariants(tx *gorm.DB, existing *model.Product, incoming []dto.VariantInput) error {
	existingIDs := make([]uuid.UUID, 0, len(existing.Variants))
	for _, v := range existing.Variants {
		existingIDs = append(existingIDs, v.ID)
	}

	diff := variant.ComputeDiff(incoming, existingIDs, func(v dto.VariantInput) *uuid.UUID {
		return parseOptional(v.ID)
	})

	for _, v := range diff.Updates {
		if err := s.repo.UpdateVariantTx(tx, &model.ProductVariant{
			ID:          *parseOptional(v.ID),
			Title:       v.Title,
			SKU:         v.SKU,
			Price:       v.Price,
			IsDefault:   v.IsDefault,
			IsAvailable: v.IsAvailable,
		}); err != nil {
			return err
		}
	}
	for _, v := range diff.Creates {
		if err := s.repo.CreateVariantTx(tx, &model.ProductVariant{
			ProductID:   existing.ID,
			Title:       v.Title,
			SKU:         v.SKU,
			Price:       v.Price,
			IsDefault:   v.IsDefault,
			IsAvailable: v.IsAvailable,
		}); err != nil {
			return err
		}
	}
	return s.repo.DeleteVariantsTx(tx, diff.Deletes)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func (s *productService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return apierror.FromDB(err, "product", "")
	}
	s.invalidate(ctx, userID, id)
	return nil
}

// invalidate drops the cached detail payload — best effort, ignore errors.
func (s *productService) invalidate(ctx context.Context, userID string, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, productCacheKey(userID, id)).Err()
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func productToResponse(p *model.Product) *dto.ProductResponse {
	options := make([]dto.VariantOptionResponse, 0, len(p.VariantOptions))
	for _, opt := range p.VariantOptions {
		values := make([]dto.VariantOptionValueResponse, 0, len(opt.Values))
		for _, v := range opt.Values {
			values = append(values, dto.VariantOptionValueResponse{
				ID:       v.ID.String(),
				Value:    v.Value,
				Position: v.Position,
			})
		}
		options = append(options, dto.VariantOptionResponse{
			ID:       opt.ID.String(),
			Name:     opt.Name,
			Position: opt.Position,
			Values:   values,
		})
	}

	variants := make([]dto.VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, dto.VariantResponse{
			ID:          v.ID.String(),
			Title:       v.Title,
			SKU:         v.SKU,
			Price:       v.Price,
			IsDefault:   v.IsDefault,
			IsAvailable: v.IsAvailable,
		})
	}

	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}

	return &dto.ProductResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID.String(),
		CategoryName:   categoryName,
		SKU:            p.SKU,
		BasePrice:      p.BasePrice,
		IsActive:       p.IsActive,
		HasVariants:    p.HasVariants,
		VariantOptions: options,
		Variants:       variants,
	}
}

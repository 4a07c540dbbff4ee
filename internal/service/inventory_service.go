package service

import (
	"context"

	"github.com/engrjeff/kapenatinph/internal/apierror"
	"github.com/engrjeff/kapenatinph/internal/dto"
	"github.com/engrjeff/kapenatinph/internal/infra"
	"github.com/engrjeff/kapenatinph/internal/model"
	"github.com/engrjeff/kapenatinph/internal/repository"
	"github.com/engrjeff/kapenatinph/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InventoryService manages raw-material stock items. Status is derived from
// quantity and reorder level on every write, never accepted from the client.
type InventoryService interface {
	Create(ctx context.Context, userID string, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.InventoryResponse, error)
	List(ctx context.Context, userID string, filter dto.InventoryFilter) (*dto.InventoryListResponse, error)
	Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	Stats(ctx context.Context, userID string) (*dto.InventoryStatsResponse, error)
	// Report writes a PDF snapshot of the whole inventory and returns its path.
	Report(ctx context.Context, userID string) (string, error)
}

type inventoryService struct {
	repo         repository.InventoryRepository
	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
	queue        *worker.Queue
	reportPath   string
}

func NewInventoryService(repo repository.InventoryRepository, categoryRepo repository.CategoryRepository, storeRepo repository.StoreRepository, queue *worker.Queue, reportPath string) InventoryService {
	return &inventoryService{
		repo:         repo,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		queue:        queue,
		reportPath:   reportPath,
	}
}

func (s *inventoryService) Create(ctx context.Context, userID string, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apierror.NewField(apierror.CodeValidation, "Invalid category id", 422, "categoryId")
	}
	if _, err := s.categoryRepo.FindByID(ctx, userID, categoryID); err != nil {
		return nil, apierror.NewField(apierror.CodeRelatedRecordMissing, "Category not found", 404, "categoryId")
	}

	item := &model.Inventory{
		UserID:        userID,
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    categoryID,
		OrderUnit:     req.OrderUnit,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		ReorderLevel:  req.ReorderLevel,
		UnitPrice:     req.UnitPrice,
		AmountPerUnit: req.AmountPerUnit,
		Supplier:      req.Supplier,
		Status:        model.DeriveStockStatus(req.Quantity, req.ReorderLevel),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apierror.FromDB(err, "inventory item", "sku")
	}

	s.maybeAlert(ctx, item)
	return inventoryToResponse(item), nil
}

func (s *inventoryService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*dto.InventoryResponse, error) {
	item, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "inventory item", "")
	}
	return inventoryToResponse(item), nil
}

func (s *inventoryService) List(ctx context.Context, userID string, filter dto.InventoryFilter) (*dto.InventoryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	items, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, apierror.FromDB(err, "inventory item", "")
	}
	data := make([]dto.InventoryResponse, 0, len(items))
	for i := range items {
		data = append(data, *inventoryToResponse(&items[i]))
	}
	return &dto.InventoryListResponse{
		PageInfo: dto.PageInfo{Total: total, Page: filter.Page, Limit: filter.Limit},
		Data:     data,
	}, nil
}

func (s *inventoryService) Update(ctx context.Context, userID string, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, apierror.FromDB(err, "inventory item", "")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apierror.NewField(apierror.CodeValidation, "Invalid category id", 422, "categoryId")
	}
	if _, err := s.categoryRepo.FindByID(ctx, userID, categoryID); err != nil {
		return nil, apierror.NewField(apierror.CodeRelatedRecordMissing, "Category not found", 404, "categoryId")
	}

	wasLow := item.Status != model.StatusInStock

	item.SKU = req.SKU
	item.Name = req.Name
	item.Description = req.Description
	item.CategoryID = categoryID
	item.OrderUnit = req.OrderUnit
	item.Unit = req.Unit
	item.Quantity = req.Quantity
	item.ReorderLevel = req.ReorderLevel
	item.UnitPrice = req.UnitPrice
	item.AmountPerUnit = req.AmountPerUnit
	item.Supplier = req.Supplier
	item.Status = model.DeriveStockStatus(req.Quantity, req.ReorderLevel)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, apierror.FromDB(err, "inventory item", "sku")
	}

	// Alert only on the transition into a degraded state, not on every save.
	if !wasLow {
		s.maybeAlert(ctx, item)
	}
	return inventoryToResponse(item), nil
}

func (s *inventoryService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return apierror.FromDB(err, "inventory item", "")
	}
	return nil
}

func (s *inventoryService) Stats(ctx context.Context, userID string) (*dto.InventoryStatsResponse, error) {
	inStock, err := s.repo.CountByStatus(ctx, userID, model.StatusInStock)
	if err != nil {
		return nil, apierror.FromDB(err, "inventory item", "")
	}
	low, err := s.repo.CountByStatus(ctx, userID, model.StatusLowInStock)
	if err != nil {
		return nil, apierror.FromDB(err, "inventory item", "")
	}
	out, err := s.repo.CountByStatus(ctx, userID, model.StatusOutOfStock)
	if err != nil {
		return nil, apierror.FromDB(err, "inventory item", "")
	}
	return &dto.InventoryStatsResponse{
		InStockCount:    inStock,
		LowInStockCount: low,
		OutOfStockCount: out,
	}, nil
}

func (s *inventoryService) Report(ctx context.Context, userID string) (string, error) {
	items, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return "", apierror.FromDB(err, "inventory item", "")
	}

	storeName := "Inventory"
	if store, err := s.storeRepo.FindByUser(ctx, userID); err == nil {
		storeName = store.Name
	}

	path, err := infra.GenerateInventoryReportPDF(storeName, items, s.reportPath)
	if err != nil {
		return "", apierror.Internal("Failed to generate report")
	}
	return path, nil
}

// maybeAlert enqueues a low-stock notification job when the item is low or
// out of stock. Best effort: a full queue never fails the request.
func (s *inventoryService) maybeAlert(ctx context.Context, item *model.Inventory) {
	if s.queue == nil || item.Status == model.StatusInStock {
		return
	}
	payload := worker.LowStockPayload{
		UserID:       item.UserID,
		ItemName:     item.Name,
		SKU:          item.SKU,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		Status:       string(item.Status),
	}
	if err := s.queue.EnqueueLowStock(ctx, payload); err != nil {
		log.Warn().Err(err).Str("sku", item.SKU).Msg("failed to enqueue low stock alert")
	}
}

func inventoryToResponse(item *model.Inventory) *dto.InventoryResponse {
	categoryName := ""
	if item.Category != nil {
		categoryName = item.Category.Name
	}
	return &dto.InventoryResponse{
		ID:            item.ID.String(),
		SKU:           item.SKU,
		Name:          item.Name,
		Description:   item.Description,
		CategoryID:    item.CategoryID.String(),
		CategoryName:  categoryName,
		OrderUnit:     item.OrderUnit,
		Unit:          item.Unit,
		Quantity:      item.Quantity,
		ReorderLevel:  item.ReorderLevel,
		UnitPrice:     item.UnitPrice,
		AmountPerUnit: item.AmountPerUnit,
		Supplier:      item.Supplier,
		Status:        string(item.Status),
	}
}

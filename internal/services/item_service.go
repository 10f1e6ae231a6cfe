package services

import (
	"strings"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

type ItemService interface {
	CreateItem(input dto.ItemCreate, addedBy string) (*dto.ItemListRow, error)
	GetItem(id uint) (*dto.ItemListRow, error)
	ListItems(query ListQuery, maxClearance *int) (*dto.ItemPage, error)
	UpdateItemPartial(id uint, patch dto.ItemPatch) (*dto.ItemListRow, error)
	DeleteItem(id uint) error
	RestoreItem(id uint) (*dto.ItemListRow, error)
	GetTimeline(id uint, limit int) ([]models.Movement, error)
}

type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	shelfRepo    repository.ShelfRepository
	movementRepo repository.MovementRepository
}

func NewItemService(
	itemRepository repository.ItemRepository,
	shelfRepository repository.ShelfRepository,
	movementRepository repository.MovementRepository,
) ItemService {
	return &itemServiceImpl{
		itemRepo:     itemRepository,
		shelfRepo:    shelfRepository,
		movementRepo: movementRepository,
	}
}

func (s *itemServiceImpl) CreateItem(input dto.ItemCreate, addedBy string) (*dto.ItemListRow, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apierror.BadRequest("name is required")
	}
	if input.ClearanceLevel == 0 {
		input.ClearanceLevel = 1
	}
	if input.ClearanceLevel < 1 || input.ClearanceLevel > 4 {
		return nil, apierror.BadRequest("clearance_level must be 1..4")
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = "units"
	}

	sku, err := s.availableSKU(strings.TrimSpace(input.SKU), 0)
	if err != nil {
		return nil, err
	}

	shelfID, err := s.resolveLocation(input.SystemCode, input.ShelfLabel)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		SKU:            sku,
		Name:           name,
		Unit:           unit,
		Category:       input.Category,
		Tag:            input.Tag,
		Note:           input.Note,
		ClearanceLevel: input.ClearanceLevel,
		ShelfID:        shelfID,
		HeightMM:       input.HeightMM,
		WidthMM:        input.WidthMM,
		DepthMM:        input.DepthMM,
		AddedBy:        addedBy,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return s.itemRepo.FindRow(item.ID)
}

func (s *itemServiceImpl) GetItem(id uint) (*dto.ItemListRow, error) {
	row, err := s.itemRepo.FindRow(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierror.NotFound("item not found")
	}
	return row, nil
}

func (s *itemServiceImpl) ListItems(query ListQuery, maxClearance *int) (*dto.ItemPage, error) {
	query = NormalizeListQuery(query)
	whereClause, args, order := BuildItemFilter(query, maxClearance)

	total, err := s.itemRepo.CountSearch(whereClause, args)
	if err != nil {
		return nil, err
	}
	if maxPage := MaxPage(total, query.PageSize); query.Page > maxPage {
		query.Page = maxPage
	}
	offset := (query.Page - 1) * query.PageSize

	rows, err := s.itemRepo.Search(whereClause, args, order, query.PageSize, offset)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.ItemListRow{}
	}
	return &dto.ItemPage{
		Items:    rows,
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
	}, nil
}

func (s *itemServiceImpl) UpdateItemPartial(id uint, patch dto.ItemPatch) (*dto.ItemListRow, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, apierror.NotFound("item not found")
	}
	if item.IsDeleted == 1 {
		return nil, apierror.Conflict("cannot edit an archived item")
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apierror.BadRequest("name cannot be empty")
		}
		item.Name = name
	}
	if patch.SKU != nil {
		sku, err := s.availableSKU(strings.TrimSpace(*patch.SKU), item.ID)
		if err != nil {
			return nil, err
		}
		item.SKU = sku
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Tag != nil {
		item.Tag = *patch.Tag
	}
	if patch.Note != nil {
		item.Note = *patch.Note
	}
	if patch.ClearanceLevel != nil {
		if *patch.ClearanceLevel < 1 || *patch.ClearanceLevel > 4 {
			return nil, apierror.BadRequest("clearance_level must be 1..4")
		}
		item.ClearanceLevel = *patch.ClearanceLevel
	}
	if patch.HeightMM != nil {
		item.HeightMM = *patch.HeightMM
	}
	if patch.WidthMM != nil {
		item.WidthMM = *patch.WidthMM
	}
	if patch.DepthMM != nil {
		item.DepthMM = *patch.DepthMM
	}
	if patch.SystemCode != nil || patch.ShelfLabel != nil {
		systemCode := ""
		shelfLabel := ""
		if patch.SystemCode != nil {
			systemCode = *patch.SystemCode
		}
		if patch.ShelfLabel != nil {
			shelfLabel = *patch.ShelfLabel
		}
		shelfID, err := s.resolveLocation(systemCode, shelfLabel)
		if err != nil {
			return nil, err
		}
		item.ShelfID = shelfID
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return s.itemRepo.FindRow(item.ID)
}

// DeleteItem soft-deletes. An item holding stock, or with quantity out with
// a holder, must be reconciled to zero first.
func (s *itemServiceImpl) DeleteItem(id uint) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return apierror.NotFound("item not found")
	}
	if item.IsDeleted == 1 {
		// Deleting twice is a visual no-op.
		return nil
	}
	net, err := s.movementRepo.OutstandingByItem(id)
	if err != nil {
		return err
	}
	if net < 0 {
		return apierror.Conflict("cannot archive: item is currently checked out")
	}
	if item.Quantity > 0 {
		return apierror.Conflict("cannot archive: quantity is not zero; return or adjust first")
	}
	return s.itemRepo.Delete(id)
}

func (s *itemServiceImpl) RestoreItem(id uint) (*dto.ItemListRow, error) {
	if _, err := s.itemRepo.FindByID(id); err != nil {
		return nil, apierror.NotFound("item not found")
	}
	if err := s.itemRepo.Restore(id); err != nil {
		return nil, err
	}
	return s.itemRepo.FindRow(id)
}

func (s *itemServiceImpl) GetTimeline(id uint, limit int) ([]models.Movement, error) {
	if _, err := s.itemRepo.FindByID(id); err != nil {
		return nil, apierror.NotFound("item not found")
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	return s.movementRepo.FindByItem(id, limit)
}

// availableSKU returns nil for an empty SKU and a conflict error when another
// item (excluding selfID) already carries it.
func (s *itemServiceImpl) availableSKU(sku string, selfID uint) (*string, error) {
	if sku == "" {
		return nil, nil
	}
	existing, err := s.itemRepo.FindBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != selfID {
		return nil, apierror.Conflict("sku already in use: " + sku)
	}
	return &sku, nil
}

func (s *itemServiceImpl) resolveLocation(systemCode, shelfLabel string) (*uint, error) {
	systemCode = strings.TrimSpace(systemCode)
	shelfLabel = strings.TrimSpace(shelfLabel)
	if systemCode == "" && shelfLabel == "" {
		return nil, nil
	}
	shelf, err := s.shelfRepo.FindByLocation(systemCode, shelfLabel)
	if err != nil {
		return nil, err
	}
	if shelf == nil {
		return nil, apierror.BadRequest("unknown location: " + systemCode + "/" + shelfLabel)
	}
	return &shelf.ID, nil
}

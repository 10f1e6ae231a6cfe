package services

import (
	"strings"
	"time"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

const movementMaxPageSize = 1000

// parseFilterDate accepts RFC3339 timestamps or bare dates.
func parseFilterDate(v string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", v)
}

type MovementService interface {
	Receive(input dto.ReceiveInput, actor *Claims) (*models.Movement, error)
	Issue(input dto.IssueInput, actor *Claims) (*models.Movement, error)
	Return(input dto.ReturnInput, actor *Claims) (*models.Movement, error)
	Adjust(input dto.AdjustInput, actor *Claims) (*models.Movement, error)
	Transfer(input dto.TransferInput, actor *Claims) ([]models.Movement, error)
	List(filter dto.MovementFilter, maxClearance *int) (*dto.MovementPage, error)
	OutByHolder(holder string, itemID *uint, maxClearance *int) ([]dto.HolderOutstanding, error)
	Overdue(holder string, maxClearance *int) ([]dto.OverdueRow, error)
}

type movementServiceImpl struct {
	movementRepo repository.MovementRepository
	itemRepo     repository.ItemRepository
	shelfRepo    repository.ShelfRepository
}

func NewMovementService(
	movementRepository repository.MovementRepository,
	itemRepository repository.ItemRepository,
	shelfRepository repository.ShelfRepository,
) MovementService {
	return &movementServiceImpl{
		movementRepo: movementRepository,
		itemRepo:     itemRepository,
		shelfRepo:    shelfRepository,
	}
}

func (s *movementServiceImpl) Receive(input dto.ReceiveInput, actor *Claims) (*models.Movement, error) {
	item, err := s.guardItem(input.ItemID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.guardShelf(input.ShelfID); err != nil {
		return nil, err
	}
	if input.Qty <= 0 {
		return nil, apierror.BadRequest("qty must be > 0")
	}
	m := &models.Movement{
		ItemID:      item.ID,
		Kind:        models.MovementReceive,
		Quantity:    input.Qty,
		ShelfID:     &input.ShelfID,
		ActorUserID: actorID(actor),
		Note:        input.Note,
	}
	if err := s.movementRepo.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *movementServiceImpl) Issue(input dto.IssueInput, actor *Claims) (*models.Movement, error) {
	item, err := s.guardItem(input.ItemID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.guardShelf(input.ShelfID); err != nil {
		return nil, err
	}
	if input.Qty <= 0 {
		return nil, apierror.BadRequest("qty must be > 0")
	}
	holder := strings.TrimSpace(input.Holder)
	if holder == "" {
		return nil, apierror.BadRequest("holder is required for issue")
	}
	if input.Qty > item.Quantity {
		return nil, apierror.Conflict("insufficient stock: requested qty exceeds on-hand quantity")
	}
	m := &models.Movement{
		ItemID:      item.ID,
		Kind:        models.MovementIssue,
		Quantity:    -input.Qty,
		ShelfID:     &input.ShelfID,
		Holder:      holder,
		DueAt:       input.DueAt,
		ActorUserID: actorID(actor),
		Note:        input.Note,
	}
	if err := s.movementRepo.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *movementServiceImpl) Return(input dto.ReturnInput, actor *Claims) (*models.Movement, error) {
	item, err := s.guardItem(input.ItemID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.guardShelf(input.ShelfID); err != nil {
		return nil, err
	}
	if input.Qty <= 0 {
		return nil, apierror.BadRequest("qty must be > 0")
	}
	m := &models.Movement{
		ItemID:      item.ID,
		Kind:        models.MovementReturn,
		Quantity:    input.Qty,
		ShelfID:     &input.ShelfID,
		Holder:      strings.TrimSpace(input.Holder),
		ActorUserID: actorID(actor),
		Note:        input.Note,
	}
	if err := s.movementRepo.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Adjust takes a signed delta instead of a quantity; the two are mutually
// exclusive on the wire. Admin-only, and a note is mandatory.
func (s *movementServiceImpl) Adjust(input dto.AdjustInput, actor *Claims) (*models.Movement, error) {
	item, err := s.guardItem(input.ItemID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.guardShelf(input.ShelfID); err != nil {
		return nil, err
	}
	if input.QtyDelta == 0 {
		return nil, apierror.BadRequest("qty_delta must be nonzero")
	}
	if strings.TrimSpace(input.Note) == "" {
		return nil, apierror.BadRequest("note is required for adjust")
	}
	if item.Quantity+input.QtyDelta < 0 {
		return nil, apierror.Conflict("adjustment would take quantity below zero")
	}
	m := &models.Movement{
		ItemID:      item.ID,
		Kind:        models.MovementAdjust,
		Quantity:    input.QtyDelta,
		ShelfID:     &input.ShelfID,
		ActorUserID: actorID(actor),
		Note:        input.Note,
	}
	if err := s.movementRepo.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Transfer writes two ledger rows in one transaction: -qty at the source
// shelf, +qty at the destination. Quantity is conserved.
func (s *movementServiceImpl) Transfer(input dto.TransferInput, actor *Claims) ([]models.Movement, error) {
	item, err := s.guardItem(input.ItemID, actor)
	if err != nil {
		return nil, err
	}
	if input.FromShelfID == input.ToShelfID {
		return nil, apierror.BadRequest("to_shelf_id must differ from from_shelf_id")
	}
	if err := s.guardShelf(input.FromShelfID); err != nil {
		return nil, err
	}
	if err := s.guardShelf(input.ToShelfID); err != nil {
		return nil, err
	}
	if input.Qty <= 0 {
		return nil, apierror.BadRequest("qty must be > 0")
	}
	if input.Qty > item.Quantity {
		return nil, apierror.Conflict("insufficient stock: requested qty exceeds on-hand quantity")
	}
	out := &models.Movement{
		ItemID:      item.ID,
		Kind:        models.MovementTransfer,
		Quantity:    -input.Qty,
		ShelfID:     &input.FromShelfID,
		ActorUserID: actorID(actor),
		Note:        input.Note,
	}
	in := &models.Movement{
		ItemID:      item.ID,
		Kind:        models.MovementTransfer,
		Quantity:    input.Qty,
		ShelfID:     &input.ToShelfID,
		ActorUserID: actorID(actor),
		Note:        input.Note,
	}
	if err := s.movementRepo.AppendTransfer(out, in); err != nil {
		return nil, err
	}
	return []models.Movement{*out, *in}, nil
}

func (s *movementServiceImpl) List(filter dto.MovementFilter, maxClearance *int) (*dto.MovementPage, error) {
	var where []string
	var args []interface{}

	if filter.ItemID != nil {
		where = append(where, "m.item_id = ?")
		args = append(args, *filter.ItemID)
	}
	if filter.Kind != "" {
		if !models.ValidMovementKind(filter.Kind) {
			return nil, apierror.BadRequest("invalid movement kind")
		}
		where = append(where, "m.kind = ?")
		args = append(args, filter.Kind)
	}
	if filter.Holder != "" {
		where = append(where, "m.holder = ?")
		args = append(args, filter.Holder)
	}
	if filter.ShelfID != nil {
		where = append(where, "m.shelf_id = ?")
		args = append(args, *filter.ShelfID)
	}
	if filter.DateFrom != "" {
		from, err := parseFilterDate(filter.DateFrom)
		if err != nil {
			return nil, apierror.BadRequest("invalid date_from: " + filter.DateFrom)
		}
		where = append(where, "m.timestamp >= ?")
		args = append(args, from)
	}
	if filter.DateTo != "" {
		to, err := parseFilterDate(filter.DateTo)
		if err != nil {
			return nil, apierror.BadRequest("invalid date_to: " + filter.DateTo)
		}
		where = append(where, "m.timestamp < ?")
		args = append(args, to)
	}
	if maxClearance != nil {
		where = append(where, "i.clearance_level <= ?")
		args = append(args, *maxClearance)
	}

	whereClause := "1=1"
	if len(where) > 0 {
		whereClause = strings.Join(where, " AND ")
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > movementMaxPageSize {
		filter.PageSize = movementMaxPageSize
	}

	total, err := s.movementRepo.CountSearch(whereClause, args)
	if err != nil {
		return nil, err
	}
	if maxPage := MaxPage(total, filter.PageSize); filter.Page > maxPage {
		filter.Page = maxPage
	}
	offset := (filter.Page - 1) * filter.PageSize

	rows, err := s.movementRepo.Search(whereClause, args, filter.PageSize, offset)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Movement{}
	}
	return &dto.MovementPage{
		Items:    rows,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}

func (s *movementServiceImpl) OutByHolder(holder string, itemID *uint, maxClearance *int) ([]dto.HolderOutstanding, error) {
	return s.movementRepo.OutstandingByHolder(holder, itemID, maxClearance)
}

func (s *movementServiceImpl) Overdue(holder string, maxClearance *int) ([]dto.OverdueRow, error) {
	return s.movementRepo.FindOverdue(holder, maxClearance)
}

// guardItem loads the item and applies the shared preconditions: it must
// exist, must not be archived, and must be within the actor's clearance.
func (s *movementServiceImpl) guardItem(itemID uint, actor *Claims) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, apierror.NotFound("item not found")
	}
	if item.IsDeleted == 1 {
		return nil, apierror.Conflict("cannot move an archived item")
	}
	if maxcl := actor.MaxClearance(); maxcl != nil && item.ClearanceLevel > *maxcl {
		return nil, apierror.Forbidden("clearance denied")
	}
	return item, nil
}

func (s *movementServiceImpl) guardShelf(shelfID uint) error {
	shelf, err := s.shelfRepo.FindByID(shelfID)
	if err != nil {
		return apierror.NotFound("shelf not found")
	}
	if shelf.IsDeleted == 1 {
		return apierror.Conflict("shelf is archived")
	}
	return nil
}

func actorID(actor *Claims) *uint {
	if actor == nil || actor.UserID == 0 {
		return nil
	}
	id := actor.UserID
	return &id
}

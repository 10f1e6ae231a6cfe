package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"Shelved/internal/repository"
)

var itemExportHeader = []string{
	"id", "sku", "name", "unit", "category", "tag", "note",
	"clearance_level", "quantity", "system_code", "shelf_label",
	"added_by", "is_deleted", "created_at", "updated_at",
}

var movementExportHeader = []string{
	"id", "item_id", "kind", "quantity", "shelf_id", "holder",
	"due_at", "note", "timestamp",
}

type ExportService interface {
	WriteItemsCSV(w io.Writer, includeDeleted bool) error
	WriteMovementsCSV(w io.Writer) error
}

type exportServiceImpl struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
}

func NewExportService(itemRepository repository.ItemRepository, movementRepository repository.MovementRepository) ExportService {
	return &exportServiceImpl{itemRepo: itemRepository, movementRepo: movementRepository}
}

func (s *exportServiceImpl) WriteItemsCSV(w io.Writer, includeDeleted bool) error {
	whereClause := "1=1"
	if !includeDeleted {
		whereClause = "i.is_deleted = 0"
	}
	rows, err := s.itemRepo.Search(whereClause, nil, "i.id ASC", exportBatchLimit, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(itemExportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.SKU,
			r.Name,
			r.Unit,
			r.Category,
			r.Tag,
			r.Note,
			strconv.Itoa(r.ClearanceLevel),
			strconv.Itoa(r.Quantity),
			derefString(r.SystemCode),
			derefString(r.ShelfLabel),
			r.AddedBy,
			strconv.Itoa(r.IsDeleted),
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportServiceImpl) WriteMovementsCSV(w io.Writer) error {
	rows, err := s.movementRepo.Search("1=1", nil, exportBatchLimit, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(movementExportHeader); err != nil {
		return err
	}
	for _, m := range rows {
		shelfID := ""
		if m.ShelfID != nil {
			shelfID = strconv.FormatUint(uint64(*m.ShelfID), 10)
		}
		dueAt := ""
		if m.DueAt != nil {
			dueAt = m.DueAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			strconv.FormatUint(uint64(m.ItemID), 10),
			m.Kind,
			strconv.Itoa(m.Quantity),
			shelfID,
			m.Holder,
			dueAt,
			m.Note,
			m.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// exportBatchLimit bounds a single export query. The catalogs this serves
// are thousands of rows, not millions.
const exportBatchLimit = 100000

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

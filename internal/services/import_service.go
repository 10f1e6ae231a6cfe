package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"Shelved/internal/apierror"
	"Shelved/internal/dto"
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

const importErrorCap = 10

type ImportService interface {
	// ImportItemsCSV upserts-by-id rows in the /api/items/export format.
	ImportItemsCSV(r io.Reader) (*dto.ImportSummary, error)
}

type importServiceImpl struct {
	itemRepo  repository.ItemRepository
	shelfRepo repository.ShelfRepository
}

func NewImportService(itemRepository repository.ItemRepository, shelfRepository repository.ShelfRepository) ImportService {
	return &importServiceImpl{itemRepo: itemRepository, shelfRepo: shelfRepository}
}

func (s *importServiceImpl) ImportItemsCSV(r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, apierror.BadRequest("file must be a CSV in the export format")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := columns["id"]; !ok {
		return nil, apierror.BadRequest("missing 'id' column")
	}

	summary := &dto.ImportSummary{Errors: []dto.ImportRowError{}}
	// Row 1 is the header.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Failed++
			addImportError(summary, rowNum, "malformed CSV row")
			continue
		}
		inserted, err := s.upsertRow(columns, record)
		if err != nil {
			summary.Failed++
			addImportError(summary, rowNum, err.Error())
			continue
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}
	return summary, nil
}

func addImportError(summary *dto.ImportSummary, row int, msg string) {
	if len(summary.Errors) < importErrorCap {
		summary.Errors = append(summary.Errors, dto.ImportRowError{Row: row, Error: msg})
	}
}

func (s *importServiceImpl) upsertRow(columns map[string]int, record []string) (bool, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	idRaw := field("id")
	if idRaw == "" {
		return false, fmt.Errorf("missing id")
	}
	id64, err := strconv.ParseUint(idRaw, 10, 32)
	if err != nil {
		return false, fmt.Errorf("invalid id %q", idRaw)
	}
	id := uint(id64)

	name := field("name")
	if name == "" {
		return false, fmt.Errorf("missing name")
	}

	clearance := 1
	if raw := field("clearance_level"); raw != "" {
		clearance, err = strconv.Atoi(raw)
		if err != nil || clearance < 1 || clearance > 4 {
			return false, fmt.Errorf("invalid clearance_level %q", raw)
		}
	}

	systemCode := field("system_code")
	shelfLabel := field("shelf_label")
	if systemCode == "" || shelfLabel == "" {
		return false, fmt.Errorf("missing physical location (system_code / shelf_label)")
	}
	shelf, err := s.shelfRepo.FindByLocation(systemCode, shelfLabel)
	if err != nil {
		return false, err
	}
	if shelf == nil {
		return false, fmt.Errorf("unknown location %s/%s", systemCode, shelfLabel)
	}

	existing, findErr := s.itemRepo.FindByID(id)
	if findErr != nil {
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return false, findErr
		}
		item := &models.Item{
			BaseModel:      models.BaseModel{ID: id},
			SKU:            optionalField(field("sku")),
			Name:           name,
			Unit:           defaultIfEmpty(field("unit"), "units"),
			Category:       field("category"),
			Tag:            field("tag"),
			Note:           field("note"),
			ClearanceLevel: clearance,
			ShelfID:        &shelf.ID,
		}
		return true, s.itemRepo.Create(item)
	}

	existing.SKU = optionalField(field("sku"))
	existing.Name = name
	existing.Unit = defaultIfEmpty(field("unit"), existing.Unit)
	existing.Category = field("category")
	existing.Tag = field("tag")
	existing.Note = field("note")
	existing.ClearanceLevel = clearance
	existing.ShelfID = &shelf.ID
	return false, s.itemRepo.Update(existing)
}

func defaultIfEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func optionalField(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

package repository

import (
	"errors"

	"Shelved/internal/dto"
	"Shelved/internal/models"

	"gorm.io/gorm"
)

// listCTE resolves each item's location and most recent ledger entry, plus
// the net outstanding issued quantity that decides available vs out.
const listCTE = `
WITH last_move AS (
  SELECT m.item_id, m.kind, m.holder, m.timestamp AS last_movement_ts
  FROM movements m
  JOIN (
    SELECT item_id, MAX(timestamp) AS ts FROM movements GROUP BY item_id
  ) t ON t.item_id = m.item_id AND t.ts = m.timestamp
),
outstanding AS (
  SELECT item_id, SUM(quantity) AS net
  FROM movements
  WHERE kind IN ('issue', 'return')
  GROUP BY item_id
)
`

const listColumns = `
  i.id, i.sku, i.name, i.unit, i.category, i.tag, i.note,
  i.clearance_level, i.quantity, i.height_mm, i.width_mm, i.depth_mm,
  i.added_by, i.is_deleted, i.created_at, i.updated_at, i.shelf_id,
  sys.code AS system_code, sh.label AS shelf_label,
  lm.kind AS movement_type, lm.holder AS currently_held_by, lm.last_movement_ts,
  COALESCE(o.net, 0) < 0 AS is_out
`

const listJoins = `
FROM items i
LEFT JOIN shelves sh ON sh.id = i.shelf_id
LEFT JOIN systems sys ON sys.id = sh.system_id
LEFT JOIN last_move lm ON lm.item_id = i.id
LEFT JOIN outstanding o ON o.item_id = i.id
`

type ItemRepository interface {
	GenericRepository[models.Item]
	FindBySKU(sku string) (*models.Item, error)
	Search(whereClause string, args []interface{}, order string, limit int, offset int) ([]dto.ItemListRow, error)
	CountSearch(whereClause string, args []interface{}) (int64, error)
	FindRow(id uint) (*dto.ItemListRow, error)
	CountsSummary(maxClearance *int) (dto.StatsSummary, error)
	BySystem(maxClearance *int) ([]dto.SystemBreakdown, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) FindBySKU(sku string) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("sku = ?", sku).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl[T]) Search(
	whereClause string,
	args []interface{},
	order string,
	limit int,
	offset int,
) ([]dto.ItemListRow, error) {
	var rows []dto.ItemListRow
	sql := listCTE + "SELECT" + listColumns + listJoins +
		"WHERE " + whereClause + " ORDER BY " + order + " LIMIT ? OFFSET ?"
	queryArgs := append(append([]interface{}{}, args...), limit, offset)
	if err := r.db.Raw(sql, queryArgs...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ItemRepositoryImpl[T]) CountSearch(whereClause string, args []interface{}) (int64, error) {
	var total int64
	sql := listCTE + "SELECT COUNT(*)" + listJoins + "WHERE " + whereClause
	if err := r.db.Raw(sql, args...).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ItemRepositoryImpl[T]) FindRow(id uint) (*dto.ItemListRow, error) {
	var row dto.ItemListRow
	sql := listCTE + "SELECT" + listColumns + listJoins + "WHERE i.id = ?"
	result := r.db.Raw(sql, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *ItemRepositoryImpl[T]) CountsSummary(maxClearance *int) (dto.StatsSummary, error) {
	var summary dto.StatsSummary
	sql := listCTE + `
SELECT
  COUNT(*) AS total_items,
  SUM(CASE WHEN i.is_deleted = 0 THEN 1 ELSE 0 END) AS active_items,
  SUM(CASE WHEN i.is_deleted = 1 THEN 1 ELSE 0 END) AS deleted_items,
  SUM(CASE WHEN i.is_deleted = 0 AND COALESCE(o.net, 0) >= 0 THEN 1 ELSE 0 END) AS available_items,
  SUM(CASE WHEN i.is_deleted = 0 AND COALESCE(o.net, 0) < 0 THEN 1 ELSE 0 END) AS checked_out_items
FROM items i
LEFT JOIN outstanding o ON o.item_id = i.id
WHERE (? IS NULL OR i.clearance_level <= ?)
`
	err := r.db.Raw(sql, maxClearance, maxClearance).Scan(&summary).Error
	return summary, err
}

func (r *ItemRepositoryImpl[T]) BySystem(maxClearance *int) ([]dto.SystemBreakdown, error) {
	var rows []dto.SystemBreakdown
	sql := `
SELECT sys.code AS system_code, COUNT(i.id) AS item_count, COALESCE(SUM(i.quantity), 0) AS total_quantity
FROM systems sys
JOIN shelves sh ON sh.system_id = sys.id
JOIN items i ON i.shelf_id = sh.id AND i.is_deleted = 0
WHERE sys.is_deleted = 0
  AND (? IS NULL OR i.clearance_level <= ?)
GROUP BY sys.code
ORDER BY sys.code
`
	err := r.db.Raw(sql, maxClearance, maxClearance).Scan(&rows).Error
	return rows, err
}

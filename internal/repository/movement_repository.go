package repository

import (
	"time"

	"Shelved/internal/dto"
	"Shelved/internal/models"

	"gorm.io/gorm"
)

type MovementRepository interface {
	// Append writes one ledger row and folds its signed quantity into the
	// item's cached quantity, in a single transaction.
	Append(m *models.Movement) error
	// AppendTransfer writes the two transfer rows atomically.
	AppendTransfer(out *models.Movement, in *models.Movement) error
	Search(whereClause string, args []interface{}, limit int, offset int) ([]models.Movement, error)
	CountSearch(whereClause string, args []interface{}) (int64, error)
	FindByItem(itemID uint, limit int) ([]models.Movement, error)
	FindRecent(limit int) ([]models.Movement, error)
	OutstandingByItem(itemID uint) (int, error)
	OutstandingByHolder(holder string, itemID *uint, maxClearance *int) ([]dto.HolderOutstanding, error)
	FindOverdue(holder string, maxClearance *int) ([]dto.OverdueRow, error)
	ClaimOverdue(now time.Time) ([]dto.OverdueRow, error)
}

type MovementRepositoryImpl struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) MovementRepository {
	return &MovementRepositoryImpl{db: db}
}

func (r *MovementRepositoryImpl) Append(m *models.Movement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("id = ?", m.ItemID).
			Update("quantity", gorm.Expr("quantity + ?", m.Quantity)).Error
	})
}

func (r *MovementRepositoryImpl) AppendTransfer(out *models.Movement, in *models.Movement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(out).Error; err != nil {
			return err
		}
		if err := tx.Create(in).Error; err != nil {
			return err
		}
		// Net quantity is zero across the two rows; bump updated_at so the
		// list reflects the move.
		return tx.Model(&models.Item{}).
			Where("id = ?", out.ItemID).
			Update("quantity", gorm.Expr("quantity + ?", out.Quantity+in.Quantity)).Error
	})
}

const movementJoins = `
FROM movements m
JOIN items i ON i.id = m.item_id
`

func (r *MovementRepositoryImpl) Search(
	whereClause string,
	args []interface{},
	limit int,
	offset int,
) ([]models.Movement, error) {
	var rows []models.Movement
	sql := `SELECT m.id, m.item_id, m.kind, m.quantity, m.shelf_id, m.holder,
  m.due_at, m.actor_user_id, m.note, m.notified_at, m.timestamp` +
		movementJoins + "WHERE " + whereClause +
		" ORDER BY m.timestamp DESC, m.id DESC LIMIT ? OFFSET ?"
	queryArgs := append(append([]interface{}{}, args...), limit, offset)
	if err := r.db.Raw(sql, queryArgs...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MovementRepositoryImpl) CountSearch(whereClause string, args []interface{}) (int64, error) {
	var total int64
	sql := "SELECT COUNT(*)" + movementJoins + "WHERE " + whereClause
	if err := r.db.Raw(sql, args...).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *MovementRepositoryImpl) FindByItem(itemID uint, limit int) ([]models.Movement, error) {
	var rows []models.Movement
	err := r.db.Where("item_id = ?", itemID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *MovementRepositoryImpl) FindRecent(limit int) ([]models.Movement, error) {
	var rows []models.Movement
	err := r.db.Order("timestamp DESC, id DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

// OutstandingByItem is the net issue/return balance; negative means quantity
// is currently out.
func (r *MovementRepositoryImpl) OutstandingByItem(itemID uint) (int, error) {
	var net int
	err := r.db.Raw(
		`SELECT COALESCE(SUM(quantity), 0) FROM movements WHERE item_id = ? AND kind IN ('issue', 'return')`,
		itemID,
	).Scan(&net).Error
	return net, err
}

func (r *MovementRepositoryImpl) OutstandingByHolder(
	holder string,
	itemID *uint,
	maxClearance *int,
) ([]dto.HolderOutstanding, error) {
	var rows []dto.HolderOutstanding
	sql := `
SELECT m.item_id, i.sku, i.name, m.holder, -SUM(m.quantity) AS qty_out
FROM movements m
JOIN items i ON i.id = m.item_id
WHERE m.kind IN ('issue', 'return')
  AND m.holder <> ''
  AND (? = '' OR m.holder = ?)
  AND (? IS NULL OR m.item_id = ?)
  AND (? IS NULL OR i.clearance_level <= ?)
GROUP BY m.item_id, i.sku, i.name, m.holder
HAVING SUM(m.quantity) < 0
ORDER BY i.name, m.holder
`
	err := r.db.Raw(sql, holder, holder, itemID, itemID, maxClearance, maxClearance).Scan(&rows).Error
	return rows, err
}

func (r *MovementRepositoryImpl) FindOverdue(holder string, maxClearance *int) ([]dto.OverdueRow, error) {
	var rows []dto.OverdueRow
	sql := `
SELECT m.id AS movement_id, m.item_id, i.sku, i.name, m.holder,
       -m.quantity AS qty_out, m.due_at, sys.code AS system_code, sh.label AS shelf_label
FROM movements m
JOIN items i ON i.id = m.item_id
LEFT JOIN shelves sh ON sh.id = m.shelf_id
LEFT JOIN systems sys ON sys.id = sh.system_id
WHERE m.kind = 'issue'
  AND m.due_at IS NOT NULL
  AND m.due_at < ?
  AND (? = '' OR m.holder = ?)
  AND (? IS NULL OR i.clearance_level <= ?)
  AND (SELECT COALESCE(SUM(b.quantity), 0)
         FROM movements b
        WHERE b.item_id = m.item_id
          AND b.holder = m.holder
          AND b.kind IN ('issue', 'return')) < 0
ORDER BY m.due_at
`
	err := r.db.Raw(sql, time.Now().UTC(), holder, holder, maxClearance, maxClearance).Scan(&rows).Error
	return rows, err
}

// ClaimOverdue marks every unnotified overdue issue that is still outstanding
// as notified and returns the claimed rows, so two notifier ticks cannot mail
// the same checkout twice. Fully returned checkouts are never claimed.
func (r *MovementRepositoryImpl) ClaimOverdue(now time.Time) ([]dto.OverdueRow, error) {
	var rows []dto.OverdueRow
	err := r.db.Transaction(func(tx *gorm.DB) error {
		sql := `
SELECT m.id AS movement_id, m.item_id, i.sku, i.name, m.holder,
       -m.quantity AS qty_out, m.due_at, sys.code AS system_code, sh.label AS shelf_label
FROM movements m
JOIN items i ON i.id = m.item_id
LEFT JOIN shelves sh ON sh.id = m.shelf_id
LEFT JOIN systems sys ON sys.id = sh.system_id
WHERE m.kind = 'issue'
  AND m.due_at IS NOT NULL
  AND m.due_at < ?
  AND m.notified_at IS NULL
  AND (SELECT COALESCE(SUM(b.quantity), 0)
         FROM movements b
        WHERE b.item_id = m.item_id
          AND b.holder = m.holder
          AND b.kind IN ('issue', 'return')) < 0
`
		if err := tx.Raw(sql, now).Scan(&rows).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		ids := make([]uint, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.MovementID)
		}
		return tx.Model(&models.Movement{}).
			Where("id IN ?", ids).
			Update("notified_at", now).Error
	})
	return rows, err
}

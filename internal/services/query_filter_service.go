package services

import (
	"strings"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ListQuery is the catalog list filter state. All fields combine with AND;
// the zero value lists the first page of active items, newest first.
type ListQuery struct {
	Q              string
	Status         string
	IncludeDeleted bool
	SystemCode     string
	ShelfLabel     string
	Sort           string
	Dir            string
	Page           int
	PageSize       int
}

// itemSortColumns whitelists sortable keys and maps them to SQL expressions
// in the list query's join namespace.
var itemSortColumns = map[string]string{
	"name":             "LOWER(i.name)",
	"created_at":       "i.created_at",
	"updated_at":       "i.updated_at",
	"quantity":         "i.quantity",
	"clearance_level":  "i.clearance_level",
	"system_code":      "LOWER(sys.code)",
	"shelf_label":      "LOWER(sh.label)",
	"last_movement_ts": "lm.last_movement_ts",
}

// DefaultDir is the direction a freshly selected sort column starts in:
// ascending for textual columns, descending for timestamps and counts.
func DefaultDir(sort string) string {
	switch sort {
	case "name", "system_code", "shelf_label", "clearance_level":
		return "asc"
	default:
		return "desc"
	}
}

// NormalizeListQuery canonicalizes raw filter state: unknown sort keys fall
// back to created_at, page/page_size are clamped, and status "deleted"
// forces include_deleted regardless of the header toggle.
func NormalizeListQuery(q ListQuery) ListQuery {
	q.Q = strings.TrimSpace(q.Q)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	switch q.Status {
	case "", "available", "out", "deleted":
	default:
		q.Status = ""
	}
	if q.Status == "deleted" {
		q.IncludeDeleted = true
	}
	if _, ok := itemSortColumns[q.Sort]; !ok {
		q.Sort = "created_at"
	}
	q.Dir = strings.ToLower(q.Dir)
	if q.Dir != "asc" && q.Dir != "desc" {
		q.Dir = DefaultDir(q.Sort)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// BuildItemFilter turns a normalized ListQuery into the WHERE clause, its
// positional args, and the ORDER BY expression for ItemRepository.Search.
func BuildItemFilter(q ListQuery, maxClearance *int) (string, []interface{}, string) {
	var where []string
	var args []interface{}

	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		where = append(where,
			"(LOWER(i.name) LIKE ? OR LOWER(COALESCE(i.sku, '')) LIKE ? OR LOWER(i.tag) LIKE ? OR LOWER(i.note) LIKE ? OR LOWER(COALESCE(lm.holder, '')) LIKE ?)")
		args = append(args, like, like, like, like, like)
	}
	if !q.IncludeDeleted {
		where = append(where, "i.is_deleted = 0")
	}
	switch q.Status {
	case "available":
		where = append(where, "COALESCE(o.net, 0) >= 0")
	case "out":
		where = append(where, "COALESCE(o.net, 0) < 0")
	case "deleted":
		where = append(where, "i.is_deleted = 1")
	}
	if q.SystemCode != "" {
		where = append(where, "sys.code = ?")
		args = append(args, q.SystemCode)
	}
	if q.ShelfLabel != "" {
		where = append(where, "sh.label = ?")
		args = append(args, q.ShelfLabel)
	}
	if maxClearance != nil {
		where = append(where, "i.clearance_level <= ?")
		args = append(args, *maxClearance)
	}

	whereClause := "1=1"
	if len(where) > 0 {
		whereClause = strings.Join(where, " AND ")
	}

	dir := "DESC"
	if q.Dir == "asc" {
		dir = "ASC"
	}
	order := itemSortColumns[q.Sort] + " " + dir + ", i.id DESC"
	return whereClause, args, order
}

// MaxPage is ceil(total/pageSize), never below 1. Pages beyond it are
// clamped rather than served empty, so a stale page number after filtering
// still lands on real rows.
func MaxPage(total int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

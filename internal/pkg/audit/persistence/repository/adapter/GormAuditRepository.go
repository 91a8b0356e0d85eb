package adapter

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	audit "github.com/Chizihn/glubon-admin/internal/pkg/audit/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/audit/persistence/repository/port"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/paging"
)

// sortable maps list sort fields to columns.
var sortable = map[string]string{
	"at":     "at",
	"actor":  "actor",
	"action": "action",
}

type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

var _ repository.AuditRepository = (*GormAuditRepository)(nil)

// Migrate creates the audit table when missing.
func (r *GormAuditRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&audit.Entry{}); err != nil {
		return fmt.Errorf("audit: migrate: %w", err)
	}
	return nil
}

func (r *GormAuditRepository) Record(ctx context.Context, e mutation.Entry) error {
	row := audit.FromMutation(e)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("audit: insert %s: %w", e.Action, err)
	}
	return nil
}

func (r *GormAuditRepository) FetchPage(ctx context.Context, params paging.Params) (paging.Page[audit.Entry], error) {
	params = params.Normalized()
	q := r.db.WithContext(ctx).Model(&audit.Entry{})
	for _, key := range []string{"actor", "action", "target"} {
		if v, ok := params.Filters[key].(string); ok && v != "" {
			q = q.Where(key+" = ?", v)
		}
	}
	if v, ok := params.Filters["success"].(bool); ok {
		q = q.Where("success = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return paging.Page[audit.Entry]{}, fmt.Errorf("audit: count: %w", err)
	}

	order := "at desc"
	if params.Sort != nil {
		if col, ok := sortable[params.Sort.Field]; ok {
			order = col + " asc"
			if params.Sort.Desc {
				order = col + " desc"
			}
		}
	}
	var rows []audit.Entry
	err := q.Order(order).Limit(params.Limit).Offset(params.Offset()).Find(&rows).Error
	if err != nil {
		return paging.Page[audit.Entry]{}, fmt.Errorf("audit: list: %w", err)
	}
	return paging.Normalize(paging.Page[audit.Entry]{Items: rows, TotalCount: int(total), CurrentPage: params.Page}, params), nil
}

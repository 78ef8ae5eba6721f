package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/junaidrashid-git/plantas-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pricingColumns is the minimum a priced checkout needs.
var pricingColumns = []string{
	"id", "title", "slug", "code", "price",
	"price_electrical", "price_hydraulic", "price_sanitary", "price_structural",
}

// Projects reads authoritative project rows.
type Projects struct {
	db       *gorm.DB
	log      *zap.Logger
	attempts int
	wait     time.Duration
}

func NewProjects(db *gorm.DB, log *zap.Logger) *Projects {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projects{db: db, log: log, attempts: 2, wait: 200 * time.Millisecond}
}

// FindByIDs loads the projects whose id is in ids with a single query.
//
// When claims is non-empty the read runs inside a transaction that first
// publishes them as request.jwt.claims, so row level security policies on the
// projects table see the caller. Ids with no matching row are simply absent
// from the result.
func (s *Projects) FindByIDs(ctx context.Context, ids []string, claims map[string]any) ([]models.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rawClaims string
	if len(claims) > 0 {
		b, err := json.Marshal(claims)
		if err != nil {
			return nil, fmt.Errorf("encode claims: %w", err)
		}
		rawClaims = string(b)
	}

	var rows []models.Project
	err := retry(ctx, s.log, "projects.find_by_ids", s.attempts, s.wait, func() error {
		rows = rows[:0]
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if rawClaims != "" {
				if err := tx.Exec("SELECT set_config('request.jwt.claims', ?, true)", rawClaims).Error; err != nil {
					return err
				}
			}
			return tx.Select(pricingColumns).Where("id IN ?", ids).Find(&rows).Error
		})
	})
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	return rows, nil
}

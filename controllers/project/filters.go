package projectcontroller

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

var sortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"area_m2":    true,
	"title":      true,
}

// ListParams are the catalog filters accepted on GET /projects.
type ListParams struct {
	Search    string
	StyleSlug string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	MinArea   *float64
	MaxArea   *float64
	Featured  *bool
	SortBy    string
	Order     string
	Page      int
	PageSize  int

	// IncludeUnpublished is set by admin listings only.
	IncludeUnpublished bool
}

// ParseListParams reads filters from a query string. Unknown sort columns
// fall back to created_at; malformed numbers are an error.
func ParseListParams(q url.Values) (ListParams, error) {
	p := ListParams{
		Search:    strings.TrimSpace(q.Get("search")),
		StyleSlug: strings.TrimSpace(q.Get("style")),
		SortBy:    q.Get("sort_by"),
		Order:     strings.ToLower(q.Get("order")),
		Page:      1,
		PageSize:  defaultPageSize,
	}
	if !sortColumns[p.SortBy] {
		p.SortBy = "created_at"
	}
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = "desc"
	}

	var err error
	if p.MinPrice, err = optFloat(q, "min_price"); err != nil {
		return p, err
	}
	if p.MaxPrice, err = optFloat(q, "max_price"); err != nil {
		return p, err
	}
	if p.MinArea, err = optFloat(q, "min_area"); err != nil {
		return p, err
	}
	if p.MaxArea, err = optFloat(q, "max_area"); err != nil {
		return p, err
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, errors.New("invalid bedrooms")
		}
		p.Bedrooms = &n
	}
	if v := q.Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, errors.New("invalid featured")
		}
		p.Featured = &b
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, errors.New("invalid page")
		}
		p.Page = n
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, errors.New("invalid page_size")
		}
		if n > maxPageSize {
			n = maxPageSize
		}
		p.PageSize = n
	}
	return p, nil
}

func optFloat(q url.Values, key string) (*float64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &f, nil
}

// Apply adds the filters to a projects query. Paging and ordering are
// applied separately so the same query can be counted.
func (p ListParams) Apply(query *gorm.DB) *gorm.DB {
	query = query.Model(&models.Project{})
	if !p.IncludeUnpublished {
		query = query.Where("projects.published = ?", true)
	}
	if p.Search != "" {
		like := "%" + p.Search + "%"
		query = query.Where("projects.title ILIKE ? OR projects.code ILIKE ? OR projects.description ILIKE ?", like, like, like)
	}
	if p.StyleSlug != "" {
		query = query.Joins("JOIN styles ON styles.id = projects.style_id").Where("styles.slug = ?", p.StyleSlug)
	}
	if p.MinPrice != nil {
		query = query.Where("projects.price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		query = query.Where("projects.price <= ?", *p.MaxPrice)
	}
	if p.Bedrooms != nil {
		query = query.Where("projects.bedrooms >= ?", *p.Bedrooms)
	}
	if p.MinArea != nil {
		query = query.Where("projects.area_m2 >= ?", *p.MinArea)
	}
	if p.MaxArea != nil {
		query = query.Where("projects.area_m2 <= ?", *p.MaxArea)
	}
	if p.Featured != nil {
		query = query.Where("projects.featured = ?", *p.Featured)
	}
	return query
}

// OrderClause is safe to interpolate: both parts are whitelisted.
func (p ListParams) OrderClause() string {
	return fmt.Sprintf("projects.%s %s", p.SortBy, p.Order)
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

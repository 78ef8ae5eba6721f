package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddonKind is one of the complementary sub-projects sold with a house project.
type AddonKind string

const (
	AddonElectrical AddonKind = "electrical"
	AddonHydraulic  AddonKind = "hydraulic"
	AddonSanitary   AddonKind = "sanitary"
	AddonStructural AddonKind = "structural"
)

// AddonKinds lists every add-on in display order.
var AddonKinds = []AddonKind{AddonElectrical, AddonHydraulic, AddonSanitary, AddonStructural}

// Label is the customer-facing name of the add-on.
func (k AddonKind) Label() string {
	switch k {
	case AddonElectrical:
		return "Projeto Elétrico"
	case AddonHydraulic:
		return "Projeto Hidráulico"
	case AddonSanitary:
		return "Projeto Sanitário"
	case AddonStructural:
		return "Projeto Estrutural"
	default:
		return string(k)
	}
}

// ParseAddonKind maps a client-supplied add-on id to a known kind.
func ParseAddonKind(s string) (AddonKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range AddonKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Project is a house blueprint for sale. Prices are in BRL.
type Project struct {
	ID              string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`
	Code            string         `gorm:"uniqueIndex" json:"code"`
	Description     string         `json:"description"`
	Price           float64        `gorm:"not null" json:"price"`
	PriceElectrical *float64       `json:"price_electrical"`
	PriceHydraulic  *float64       `json:"price_hydraulic"`
	PriceSanitary   *float64       `json:"price_sanitary"`
	PriceStructural *float64       `json:"price_structural"`
	AreaM2          float64        `json:"area_m2"`
	Bedrooms        int            `json:"bedrooms"`
	Bathrooms       int            `json:"bathrooms"`
	Suites          int            `json:"suites"`
	GarageSpots     int            `json:"garage_spots"`
	LotWidth        float64        `json:"lot_width"`
	LotDepth        float64        `json:"lot_depth"`
	StyleID         *uint          `gorm:"index" json:"style_id"`
	Style           *Style         `gorm:"foreignKey:StyleID" json:"style,omitempty"`
	CoverImage      string         `json:"cover_image"`
	Images          string         `json:"images"` // comma separated public URLs
	Published       bool           `gorm:"index;default:false" json:"published"`
	Featured        bool           `gorm:"default:false" json:"featured"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a uuid when the caller did not pick an id.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AddonPrice returns the configured price for an add-on, or nil when the
// project does not offer it.
func (p *Project) AddonPrice(kind AddonKind) *float64 {
	switch kind {
	case AddonElectrical:
		return p.PriceElectrical
	case AddonHydraulic:
		return p.PriceHydraulic
	case AddonSanitary:
		return p.PriceSanitary
	case AddonStructural:
		return p.PriceStructural
	}
	return nil
}

// SetAddonPrice stores an add-on price; nil clears it.
func (p *Project) SetAddonPrice(kind AddonKind, price *float64) {
	switch kind {
	case AddonElectrical:
		p.PriceElectrical = price
	case AddonHydraulic:
		p.PriceHydraulic = price
	case AddonSanitary:
		p.PriceSanitary = price
	case AddonStructural:
		p.PriceStructural = price
	}
}

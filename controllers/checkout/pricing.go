package checkoutControllers

import (
	"fmt"
	"math"

	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/junaidrashid-git/plantas-api/payment"
)

// distinctIDs returns the item ids in first-seen order.
func distinctIDs(items []CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	return ids
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// BuildLineItems prices items against the authoritative projects, in input
// order. Ids with no matching project are returned in missing and produce no
// line items. Add-ons that are unknown or not offered are skipped.
func BuildLineItems(items []CartItem, projects []models.Project) (lines []payment.LineItem, missing []string) {
	byID := make(map[string]*models.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}

	lines = make([]payment.LineItem, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ID]
		if !ok {
			missing = append(missing, item.ID)
			continue
		}

		lines = append(lines, payment.LineItem{
			Name:        p.Title,
			Description: describe(p),
			UnitAmount:  toMinorUnits(p.Price),
			Quantity:    1,
			Metadata:    payment.LineItemMetadata{ProductID: p.ID, Kind: payment.KindProduct},
		})

		// The selection is a set of kinds, whatever the client's spelling.
		seen := make(map[models.AddonKind]struct{}, len(item.Addons))
		for _, raw := range item.Addons {
			kind, ok := models.ParseAddonKind(raw)
			if !ok {
				continue
			}
			if _, dup := seen[kind]; dup {
				continue
			}
			seen[kind] = struct{}{}
			price := p.AddonPrice(kind)
			if price == nil {
				continue
			}
			amount := toMinorUnits(*price)
			if amount <= 0 {
				continue
			}
			lines = append(lines, payment.LineItem{
				Name:        fmt.Sprintf("%s - %s", kind.Label(), p.Title),
				Description: describe(p),
				UnitAmount:  amount,
				Quantity:    1,
				Metadata: payment.LineItemMetadata{
					ProductID: p.ID,
					Kind:      payment.KindAddon,
					AddonType: string(kind),
				},
			})
		}
	}
	return lines, missing
}

func describe(p *models.Project) string {
	if p.Code == "" {
		return ""
	}
	return "Código: " + p.Code
}

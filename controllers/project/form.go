package projectcontroller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/junaidrashid-git/plantas-api/models"
)

// formValue looks up a form field; ok reports whether it was sent at all.
type formValue func(key string) (string, bool)

// applyProjectForm copies the sent fields onto p. On create, title and
// price are required. An add-on price or style_id sent empty is cleared.
func applyProjectForm(p *models.Project, get formValue, create bool) error {
	// Title and code are never cleared; description and images may be.
	str := func(key string, dst *string, clearable bool) {
		if v, ok := get(key); ok && (clearable || strings.TrimSpace(v) != "") {
			*dst = strings.TrimSpace(v)
		}
	}
	str("title", &p.Title, false)
	str("code", &p.Code, false)
	str("description", &p.Description, true)
	str("images", &p.Images, true)
	if v, ok := get("slug"); ok && strings.TrimSpace(v) != "" {
		p.Slug = models.Slugify(v)
	}

	if create {
		if p.Title == "" {
			return errors.New("title is required")
		}
		if v, _ := get("price"); v == "" {
			return errors.New("price is required")
		}
	}
	if p.Slug == "" {
		p.Slug = models.Slugify(p.Title)
	}
	if p.Code == "" {
		p.Code = defaultCode(p.Slug)
	}

	if v, ok := get("price"); ok && v != "" {
		f, err := parsePrice("price", v)
		if err != nil {
			return err
		}
		p.Price = f
	}

	for _, kind := range models.AddonKinds {
		key := "price_" + string(kind)
		v, ok := get(key)
		if !ok {
			continue
		}
		if strings.TrimSpace(v) == "" {
			p.SetAddonPrice(kind, nil)
			continue
		}
		f, err := parsePrice(key, v)
		if err != nil {
			return err
		}
		p.SetAddonPrice(kind, &f)
	}

	floats := map[string]*float64{"area_m2": &p.AreaM2, "lot_width": &p.LotWidth, "lot_depth": &p.LotDepth}
	for key, dst := range floats {
		if v, ok := get(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid %s", key)
			}
			*dst = f
		}
	}

	ints := map[string]*int{"bedrooms": &p.Bedrooms, "bathrooms": &p.Bathrooms, "suites": &p.Suites, "garage_spots": &p.GarageSpots}
	for key, dst := range ints {
		if v, ok := get(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid %s", key)
			}
			*dst = n
		}
	}

	if v, ok := get("style_id"); ok {
		if v == "" {
			p.StyleID = nil
		} else {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return errors.New("invalid style_id")
			}
			sid := uint(id)
			p.StyleID = &sid
		}
	}

	bools := map[string]*bool{"published": &p.Published, "featured": &p.Featured}
	for key, dst := range bools {
		if v, ok := get(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s", key)
			}
			*dst = b
		}
	}
	return nil
}

func parsePrice(key, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return f, nil
}

// defaultCode derives a unique code from the slug when none is given.
func defaultCode(slug string) string {
	code := strings.ToUpper(slug)
	if len(code) > 32 {
		code = strings.TrimRight(code[:32], "-")
	}
	return code
}

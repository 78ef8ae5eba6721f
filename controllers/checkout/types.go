package checkoutControllers

import (
	"net/url"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// CartItem is one client supplied cart entry. Any price the client sends is
// not part of this type and never read.
type CartItem struct {
	ID     string   `json:"id"`
	Addons []string `json:"addons"`
	Code   string   `json:"code,omitempty"`
}

// Request is the body of POST /checkout/session.
type Request struct {
	Items         []CartItem `json:"items"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
	ReturnURL     string     `json:"returnUrl"`
	LeadID        string     `json:"leadId,omitempty"`
}

// Validate checks the shape of the request. It does not touch the store.
func (r *Request) Validate() error {
	verr := &ValidationError{}
	if len(r.Items) == 0 {
		verr.add("items", "at least one item is required")
	}
	for i, item := range r.Items {
		if !idPattern.MatchString(item.ID) {
			verr.add("items", "item %d has an invalid id %q", i, item.ID)
		}
	}
	if r.ReturnURL != "" {
		if _, err := parseReturnURL(r.ReturnURL); err != nil {
			verr.add("returnUrl", "%v", err)
		}
	}
	if r.CustomerEmail != "" && !strings.Contains(r.CustomerEmail, "@") {
		verr.add("customerEmail", "invalid email")
	}
	if r.LeadID != "" && !idPattern.MatchString(r.LeadID) {
		verr.add("leadId", "invalid lead id")
	}
	return verr.orNil()
}

type urlError string

func (e urlError) Error() string { return string(e) }

func parseReturnURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, urlError("malformed url")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, urlError("must be an absolute http(s) url")
	}
	return u, nil
}

// withMarker returns base with key=true added to its query.
func withMarker(base *url.URL, key string) string {
	u := *base
	q := u.Query()
	q.Set(key, "true")
	u.RawQuery = q.Encode()
	return u.String()
}

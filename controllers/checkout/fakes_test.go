package checkoutControllers

import (
	"context"

	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/junaidrashid-git/plantas-api/payment"
)

type MockCatalog struct {
	FindByIDsFunc func(ctx context.Context, ids []string, claims map[string]any) ([]models.Project, error)
	calls         int
	lastIDs       []string
	lastClaims    map[string]any
}

func (m *MockCatalog) FindByIDs(ctx context.Context, ids []string, claims map[string]any) ([]models.Project, error) {
	m.calls++
	m.lastIDs = ids
	m.lastClaims = claims
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids, claims)
	}
	return nil, nil
}

// catalogOf serves a fixed set of projects, filtering by the requested ids.
func catalogOf(projects ...models.Project) *MockCatalog {
	return &MockCatalog{
		FindByIDsFunc: func(_ context.Context, ids []string, _ map[string]any) ([]models.Project, error) {
			want := make(map[string]bool, len(ids))
			for _, id := range ids {
				want[id] = true
			}
			var out []models.Project
			for _, p := range projects {
				if want[p.ID] {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
}

type MockProcessor struct {
	CreateSessionFunc func(ctx context.Context, req *payment.SessionRequest) (*payment.Session, error)
	requests          []*payment.SessionRequest
}

func (m *MockProcessor) CreateSession(ctx context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	m.requests = append(m.requests, req)
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req)
	}
	return &payment.Session{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil
}

func (m *MockProcessor) last() *payment.SessionRequest {
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

func price(v float64) *float64 { return &v }

func projectP1() models.Project {
	return models.Project{
		ID:              "p1",
		Title:           "Casa Térrea 3 Quartos",
		Slug:            "casa-terrea-3-quartos",
		Code:            "CT-301",
		Price:           650,
		PriceElectrical: price(180),
	}
}

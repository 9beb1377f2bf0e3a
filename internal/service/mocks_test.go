package service_test

import (
	"fmt"
	"sort"
	"sync"
	"time"

	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/model"
)

// MockPlanRepo stores plans in memory
type MockPlanRepo struct {
	mu        sync.Mutex
	plans     map[string]*model.Plan
	order     []string
	approvals []model.Approval
	nextID    int
}

func NewMockPlanRepo() *MockPlanRepo {
	return &MockPlanRepo{plans: map[string]*model.Plan{}}
}

func (m *MockPlanRepo) Create(p *model.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if p.ID == "" {
		p.ID = fmt.Sprintf("plan-%03d", m.nextID)
	}
	p.CreatedAt = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	cp := *p
	m.plans[p.ID] = &cp
	m.order = append(m.order, p.ID)
	return nil
}

func (m *MockPlanRepo) GetByID(id string) (*model.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[id]
	if !ok {
		return nil, appErrors.NewPlanNotFound(id)
	}
	cp := *p
	return &cp, nil
}

func (m *MockPlanRepo) ListPlans(offset, limit int) ([]*model.Plan, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// newest first
	ids := append([]string(nil), m.order...)
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	total := len(ids)
	if offset >= total {
		return []*model.Plan{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := []*model.Plan{}
	for _, id := range ids[offset:end] {
		out = append(out, m.plans[id])
	}
	return out, total, nil
}

func (m *MockPlanRepo) UpdateExport(id, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[id]
	if !ok {
		return appErrors.NewPlanNotFound(id)
	}
	p.ExportText = text
	return nil
}

func (m *MockPlanRepo) AddApproval(a *model.Approval) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approvals = append(m.approvals, *a)
	return nil
}

func (m *MockPlanRepo) ListApprovals(planID string) ([]model.Approval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Approval{}
	for _, a := range m.approvals {
		if a.PlanID == planID {
			out = append(out, a)
		}
	}
	return out, nil
}

// MockQueue records what was published
type MockQueue struct {
	mu        sync.Mutex
	topics    []string
	published []any
}

func (q *MockQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.topics = append(q.topics, topic)
	q.published = append(q.published, payload)
	return nil
}

func (q *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

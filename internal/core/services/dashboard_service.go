package services

import (
	"context"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"

	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the admin overview
type DashboardService struct {
	productRepo repositories.ProductRepository
	staffRepo   repositories.StaffRepository
	analytics   *AnalyticsService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repositories.ProductRepository,
	staffRepo repositories.StaffRepository,
	analytics *AnalyticsService,
) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		staffRepo:   staffRepo,
		analytics:   analytics,
	}
}

// DashboardOverview represents the admin dashboard payload
type DashboardOverview struct {
	Summary     *InventorySummary    `json:"summary"`
	StaffCount  int                  `json:"staff_count"`
	ActiveStaff int                  `json:"active_staff"`
	Staff       []domain.StaffMember `json:"staff"`
}

// Overview fetches products and staff concurrently, then folds them
// into the analytics summary.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	var (
		products []domain.Product
		staff    []domain.StaffMember
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		staff, err = s.staffRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if staff == nil {
		staff = []domain.StaffMember{}
	}

	overview := &DashboardOverview{
		Summary:    s.analytics.Summarize(products),
		StaffCount: len(staff),
		Staff:      staff,
	}
	for _, member := range staff {
		if member.Status == domain.StaffStatusActive {
			overview.ActiveStaff++
		}
	}

	return overview, nil
}

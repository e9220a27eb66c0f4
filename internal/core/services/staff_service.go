package services

import (
	"context"
	"log"
	"strings"
	"time"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"
)

// StaffService handles the atelier staff roster
type StaffService struct {
	staffRepo repositories.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repositories.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// HireInput represents input for adding a staff member
type HireInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// List returns the roster. A failed read falls back to an empty roster
// so the admin view still renders.
func (s *StaffService) List(ctx context.Context) []domain.StaffMember {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Staff read failed, serving empty roster: %v", err)
		return []domain.StaffMember{}
	}
	if members == nil {
		members = []domain.StaffMember{}
	}
	return members
}

// Hire validates and stores a new staff member, stamping the hire date
func (s *StaffService) Hire(ctx context.Context, input *HireInput) (*domain.StaffMember, error) {
	// 1. Validate input
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if !domain.IsValidStaffRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}

	// 2. Store with today's date and active status
	member := domain.StaffMember{
		Name:     name,
		Email:    email,
		Role:     input.Role,
		JoinedAt: time.Now().Format("2006-01-02"),
		Status:   domain.StaffStatusActive,
	}
	if err := s.staffRepo.Create(ctx, &member); err != nil {
		return nil, err
	}

	log.Printf("✅ Staff hired: %s (%s)", member.Name, member.Role)
	return &member, nil
}

// Dismiss removes a staff member from the roster
func (s *StaffService) Dismiss(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}

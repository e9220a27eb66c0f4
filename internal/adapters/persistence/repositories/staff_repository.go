package repositories

import (
	"context"

	"mycloth-atelier/internal/adapters/persistence/models"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"

	"gorm.io/gorm"
)

// staffRepository implements StaffRepository over MySQL
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

// List returns the staff roster in hiring order
func (r *staffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	var rows []models.StaffMember
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]domain.StaffMember, 0, len(rows))
	for i := range rows {
		members = append(members, rows[i].ToDomain())
	}
	return members, nil
}

// Create inserts a staff member, assigning a server id when none is given
func (r *staffRepository) Create(ctx context.Context, member *domain.StaffMember) error {
	if member.ID == "" {
		member.ID = ids.NewRecordID()
	}
	return r.db.WithContext(ctx).Create(models.StaffFromDomain(*member)).Error
}

// Delete soft deletes a staff member. Deleting an absent id is a
// no-op.
func (r *staffRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StaffMember{}).Error
}

package localstore

import (
	"context"
	"encoding/json"

	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/pkg/ids"
)

// staffStore implements StaffRepository over bbolt
type staffStore struct {
	store *Store
}

// NewStaffStore creates a staff repository backed by the local store
func NewStaffStore(store *Store) repositories.StaffRepository {
	return &staffStore{store: store}
}

// List returns the staff roster in hiring order
func (s *staffStore) List(ctx context.Context) ([]domain.StaffMember, error) {
	var members []domain.StaffMember
	if err := s.store.readList(bucketCollections, keyStaff, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Create appends a staff member, assigning a random id when none is given
func (s *staffStore) Create(ctx context.Context, member *domain.StaffMember) error {
	if member.ID == "" {
		member.ID = ids.NewLocalID()
	}
	return s.store.update(bucketCollections, keyStaff, func(raw []byte) ([]byte, error) {
		var members []domain.StaffMember
		if raw != nil {
			if err := json.Unmarshal(raw, &members); err != nil {
				return nil, err
			}
		}
		members = append(members, *member)
		return json.Marshal(members)
	})
}

// Delete removes the staff member with the given id. Deleting an
// absent id is a no-op.
func (s *staffStore) Delete(ctx context.Context, id string) error {
	return s.store.update(bucketCollections, keyStaff, func(raw []byte) ([]byte, error) {
		var members []domain.StaffMember
		if raw != nil {
			if err := json.Unmarshal(raw, &members); err != nil {
				return nil, err
			}
		}
		for i := range members {
			if members[i].ID == id {
				members = append(members[:i], members[i+1:]...)
				break
			}
		}
		return json.Marshal(members)
	})
}

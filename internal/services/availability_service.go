package services

import (
	"context"
	"sort"
	"time"

	"github.com/lekithkishore/MINDLY/internal/models"
	"github.com/lekithkishore/MINDLY/pkg/utils"
)

type availabilityStore interface {
	Upsert(ctx context.Context, counsellorID, dateKey, timeStr string, at time.Time) error
	SetActive(ctx context.Context, counsellorID, dateKey, timeStr string, active bool, at time.Time) error
	ListByDay(ctx context.Context, counsellorID, dateKey string) ([]models.AvailabilitySlot, error)
}

type AvailabilityService struct {
	slots availabilityStore
}

func NewAvailabilityService(slots availabilityStore) *AvailabilityService {
	return &AvailabilityService{slots: slots}
}

// UpsertSlot creates or refreshes a slot as available. Idempotent.
func (s *AvailabilityService) UpsertSlot(ctx context.Context, counsellorID, dateKey, timeStr string) error {
	if counsellorID == "" || dateKey == "" || timeStr == "" {
		return ErrInvalidInput
	}
	return s.slots.Upsert(ctx, counsellorID, dateKey, timeStr, time.Now().UTC())
}

// ToggleActive flips a slot's active flag, creating it unbooked if absent.
func (s *AvailabilityService) ToggleActive(ctx context.Context, counsellorID, dateKey, timeStr string, active bool) error {
	if counsellorID == "" || dateKey == "" || timeStr == "" {
		return ErrInvalidInput
	}
	return s.slots.SetActive(ctx, counsellorID, dateKey, timeStr, active, time.Now().UTC())
}

// ListAvailability returns the day's slots with normalized display times,
// sorted lexicographically. That ordering is only correct for zero-padded
// 24-hour times ("09:30" < "14:00"); the student app writes them that way.
func (s *AvailabilityService) ListAvailability(ctx context.Context, counsellorID, dateKey string) ([]models.AvailabilitySlot, error) {
	if counsellorID == "" || dateKey == "" {
		return nil, ErrInvalidInput
	}

	slots, err := s.slots.ListByDay(ctx, counsellorID, dateKey)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		t := utils.NormalizeSlotTime(slots[i].Time)
		if t == "" {
			// Older documents only carried the time in the slot key.
			t = utils.NormalizeSlotTime(slots[i].SlotKey)
		}
		slots[i].Time = t
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})
	return slots, nil
}

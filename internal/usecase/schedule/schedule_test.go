package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

const testBarberID = uint(7)

// fakeScheduleRepo reproduz o índice único (barbeiro, data) do banco.
type fakeScheduleRepo struct {
	items  []models.BarberSchedule
	nextID uint
}

func (r *fakeScheduleRepo) GetByDate(_ context.Context, barberID uint, date time.Time) (*models.BarberSchedule, error) {
	for i := range r.items {
		if r.items[i].BarberID == barberID && timezone.SameDay(r.items[i].Date, date) {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) GetByID(_ context.Context, id uint) (*models.BarberSchedule, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) ListRange(_ context.Context, barberID uint, start, end *time.Time) ([]models.BarberSchedule, error) {
	var out []models.BarberSchedule
	for i := range r.items {
		s := r.items[i]
		if s.BarberID != barberID {
			continue
		}
		if start != nil && s.Date.Before(*start) {
			continue
		}
		if end != nil && s.Date.After(*end) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeScheduleRepo) Create(ctx context.Context, s *models.BarberSchedule) error {
	if existing, _ := r.GetByDate(ctx, s.BarberID, s.Date); existing != nil {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	s.ID = r.nextID
	r.items = append(r.items, *s)
	return nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s *models.BarberSchedule) error {
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = *s
			return nil
		}
	}
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id uint) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ Repository = (*fakeScheduleRepo)(nil)

func newScheduleUC(repo *fakeScheduleRepo, now time.Time) *Service {
	uc := NewService(repo, nil, nil)
	uc.now = func() time.Time { return now }
	return uc
}

var scheduleNow = time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

func TestScheduleCreate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	sched, err := uc.Create(context.Background(), testBarberID, CreateInput{
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	assert.NotZero(t, sched.ID)
	assert.True(t, sched.Active)
	assert.Equal(t, "09:00", sched.StartTime)
	assert.Equal(t, "2026-09-15", timezone.FormatDate(sched.Date))
}

func TestScheduleCreateDuplicateDate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	in := CreateInput{Date: "2026-09-15", StartTime: "09:00", EndTime: "17:00"}

	_, err := uc.Create(context.Background(), testBarberID, in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), testBarberID, in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_exists"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestScheduleCreateValidations(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	cases := []struct {
		name string
		in   CreateInput
		code string
	}{
		{"data inválida", CreateInput{Date: "15/09/2026", StartTime: "09:00", EndTime: "17:00"}, "invalid_date"},
		{"hora inicial inválida", CreateInput{Date: "2026-09-15", StartTime: "9h", EndTime: "17:00"}, "invalid_start_time"},
		{"hora final inválida", CreateInput{Date: "2026-09-15", StartTime: "09:00", EndTime: "24:00"}, "invalid_end_time"},
		{"fim antes do início", CreateInput{Date: "2026-09-15", StartTime: "17:00", EndTime: "09:00"}, "invalid_time_range"},
		{"fim igual ao início", CreateInput{Date: "2026-09-15", StartTime: "09:00", EndTime: "09:00"}, "invalid_time_range"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), testBarberID, tc.in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code))
		})
	}
}

func TestScheduleCreatePastTimeToday(t *testing.T) {
	repo := &fakeScheduleRepo{}
	// agora: 14h do próprio dia
	uc := newScheduleUC(repo, time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC))

	_, err := uc.Create(context.Background(), testBarberID, CreateInput{
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "past_time"))

	// começando agora em diante, passa
	_, err = uc.Create(context.Background(), testBarberID, CreateInput{
		Date:      "2026-09-15",
		StartTime: "14:00",
		EndTime:   "20:00",
	})
	require.NoError(t, err)
}

func TestScheduleUpdate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	sched, err := uc.Create(context.Background(), testBarberID, CreateInput{
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	newEnd := "18:00"
	updated, err := uc.Update(context.Background(), sched.ID, testBarberID, UpdateInput{EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, "09:00", updated.StartTime)
	assert.Equal(t, "18:00", updated.EndTime)

	// intervalo resultante inválido é rejeitado
	badEnd := "08:00"
	_, err = uc.Update(context.Background(), sched.ID, testBarberID, UpdateInput{EndTime: &badEnd})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))
}

func TestScheduleUpdateOwnership(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	sched, err := uc.Create(context.Background(), testBarberID, CreateInput{
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	active := false
	_, err = uc.Update(context.Background(), sched.ID, uint(999), UpdateInput{Active: &active})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = uc.Update(context.Background(), uint(404), testBarberID, UpdateInput{Active: &active})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestScheduleDelete(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	sched, err := uc.Create(context.Background(), testBarberID, CreateInput{
		Date:      "2026-09-15",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), sched.ID, testBarberID))
	assert.Empty(t, repo.items)

	err = uc.Delete(context.Background(), sched.ID, testBarberID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestScheduleListRange(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newScheduleUC(repo, scheduleNow)

	for _, d := range []string{"2026-09-15", "2026-09-16", "2026-09-20"} {
		_, err := uc.Create(context.Background(), testBarberID, CreateInput{
			Date:      d,
			StartTime: "09:00",
			EndTime:   "17:00",
		})
		require.NoError(t, err)
	}

	// intervalo inclusivo nas duas pontas
	scheds, err := uc.ListRange(context.Background(), testBarberID, "2026-09-15", "2026-09-16")
	require.NoError(t, err)
	assert.Len(t, scheds, 2)

	scheds, err = uc.ListRange(context.Background(), testBarberID, "", "")
	require.NoError(t, err)
	assert.Len(t, scheds, 3)

	_, err = uc.ListRange(context.Background(), testBarberID, "15-09-2026", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_start_date"))
}

package get_week_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

type fakeSessionRepo struct {
	sessions      []*domain.Session
	listErr       error
	lastWeekStart time.Time
}

func (f *fakeSessionRepo) ListByCoachAndWeek(ctx context.Context, coachID int64, weekStart time.Time) ([]*domain.Session, error) {
	f.lastWeekStart = weekStart
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sessions, nil
}

type fakeRosterClient struct {
	coach    *rosterservice.Coach
	coachErr error
}

func (f *fakeRosterClient) GetCoach(ctx context.Context, coachID int64) (*rosterservice.Coach, error) {
	if f.coachErr != nil {
		return nil, f.coachErr
	}
	return f.coach, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeSessionRepo, roster *fakeRosterClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, roster, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCaseExecute_AnchorNormalizedToMonday(t *testing.T) {
	repo := &fakeSessionRepo{}
	roster := &fakeRosterClient{coach: &rosterservice.Coach{ID: 1, DisplayName: "Anna K.", Active: true}}
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, roster, now)

	// Якорь - суббота, неделя должна начаться с понедельника
	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:    1,
		WeekAnchor: time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	wantMonday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, resp.WeekStart.Equal(wantMonday))
	assert.True(t, repo.lastWeekStart.Equal(wantMonday))
	assert.Equal(t, "Anna K.", resp.CoachName)
	require.Len(t, resp.Days, 7)
}

func TestUseCaseExecute_BookedSlotUnavailable(t *testing.T) {
	wednesday := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{
		sessions: []*domain.Session{{
			CoachID:     1,
			SessionDate: wednesday,
			HourOfDay:   types.HourOfDay(17),
			Status:      domain.StatusScheduled,
		}},
	}
	roster := &fakeRosterClient{coach: &rosterservice.Coach{ID: 1, Active: true}}
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, roster, now)

	resp, err := uc.Execute(context.Background(), &Request{CoachID: 1, WeekAnchor: wednesday})

	require.NoError(t, err)
	day := resp.Days[2]
	assert.True(t, day.Date.Equal(wednesday))
	assert.False(t, day.Slots[17-8].Available)
	assert.True(t, day.Slots[16-8].Available)
}

func TestUseCaseExecute_CoachErrors(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	anchor := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		roster := &fakeRosterClient{coachErr: rosterservice.ErrCoachNotFound}
		uc := newTestUseCase(&fakeSessionRepo{}, roster, now)

		_, err := uc.Execute(context.Background(), &Request{CoachID: 1, WeekAnchor: anchor})
		assert.ErrorIs(t, err, ErrCoachNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		roster := &fakeRosterClient{coach: &rosterservice.Coach{ID: 1, Active: false}}
		uc := newTestUseCase(&fakeSessionRepo{}, roster, now)

		_, err := uc.Execute(context.Background(), &Request{CoachID: 1, WeekAnchor: anchor})
		assert.ErrorIs(t, err, ErrCoachInactive)
	})
}

func TestUseCaseExecute_InvalidInput(t *testing.T) {
	roster := &fakeRosterClient{coach: &rosterservice.Coach{ID: 1, Active: true}}
	uc := newTestUseCase(&fakeSessionRepo{}, roster, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CoachID: 0, WeekAnchor: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CoachID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

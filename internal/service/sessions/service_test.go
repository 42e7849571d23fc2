package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	sessionRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/session"
	"github.com/younesAM01/StayFit-BookingService/internal/service/sessions/models"
	"github.com/younesAM01/StayFit-BookingService/pkg/ptr"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// --- fakes ---

type fakeSessionRepo struct {
	session       *domain.Session
	getErr        error
	clientResults []*domain.Session
	coachResults  []*domain.Session

	updatedStatus *domain.SessionStatus
	cancelled     bool
	cancelReason  string
	deleted       bool
	lastFilter    *domain.CoachSessionsFilter
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s := *f.session
	return &s, nil
}

func (f *fakeSessionRepo) GetByClientID(ctx context.Context, clientID int64, status *domain.SessionStatus) ([]*domain.Session, error) {
	return f.clientResults, nil
}

func (f *fakeSessionRepo) GetByCoachWithFilter(ctx context.Context, filter domain.CoachSessionsFilter) ([]*domain.Session, error) {
	f.lastFilter = &filter
	return f.coachResults, nil
}

func (f *fakeSessionRepo) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeSessionRepo) Cancel(ctx context.Context, id int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = true
	return nil
}

type fakePackRepo struct {
	restored   []int64
	restoreErr error
}

func (f *fakePackRepo) Restore(ctx context.Context, id int64) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restored = append(f.restored, id)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- fixtures ---

func paidSession() *domain.Session {
	return &domain.Session{
		ID:           100,
		CoachID:      1,
		ClientID:     10,
		ClientPackID: ptr.Ptr(int64(5)),
		SessionDate:  time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		HourOfDay:    types.HourOfDay(17),
		Status:       domain.StatusScheduled,
	}
}

func newTestService(sessions *fakeSessionRepo, packs *fakePackRepo) *Service {
	return NewService(sessions, packs, fakeTxManager{}, nopLogger{})
}

// --- tests ---

func TestComplete_Success(t *testing.T) {
	repo := &fakeSessionRepo{session: paidSession()}
	packs := &fakePackRepo{}
	svc := newTestService(repo, packs)

	err := svc.Complete(context.Background(), 100)

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
	// Завершение занятие не трогает: оно было списано при бронировании
	assert.Empty(t, packs.restored)
}

func TestComplete_InvalidStatus(t *testing.T) {
	for _, status := range []domain.SessionStatus{domain.StatusPending, domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			session := paidSession()
			session.Status = status
			repo := &fakeSessionRepo{session: session}
			svc := newTestService(repo, &fakePackRepo{})

			err := svc.Complete(context.Background(), 100)

			assert.ErrorIs(t, err, ErrCannotComplete)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestComplete_NotFound(t *testing.T) {
	repo := &fakeSessionRepo{getErr: sessionRepo.ErrSessionNotFound}
	svc := newTestService(repo, &fakePackRepo{})

	err := svc.Complete(context.Background(), 100)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancel_RestoresCredit(t *testing.T) {
	repo := &fakeSessionRepo{session: paidSession()}
	packs := &fakePackRepo{}
	svc := newTestService(repo, packs)

	err := svc.Cancel(context.Background(), 100, &models.CancelSessionRequest{
		UserID:             10,
		CancellationReason: "клиент заболел",
	})

	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "клиент заболел", repo.cancelReason)
	// Занятие вернулось в пакет
	assert.Equal(t, []int64{5}, packs.restored)
}

func TestCancel_FreeSessionSkipsRestore(t *testing.T) {
	session := paidSession()
	session.IsFree = true
	repo := &fakeSessionRepo{session: session}
	packs := &fakePackRepo{}
	svc := newTestService(repo, packs)

	err := svc.Cancel(context.Background(), 100, &models.CancelSessionRequest{UserID: 10})

	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Empty(t, packs.restored)
}

func TestCancel_NoPackSkipsRestore(t *testing.T) {
	session := paidSession()
	session.ClientPackID = nil
	repo := &fakeSessionRepo{session: session}
	packs := &fakePackRepo{}
	svc := newTestService(repo, packs)

	err := svc.Cancel(context.Background(), 100, &models.CancelSessionRequest{UserID: 10})

	require.NoError(t, err)
	assert.Empty(t, packs.restored)
}

func TestCancel_InvalidStatus(t *testing.T) {
	for _, status := range []domain.SessionStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			session := paidSession()
			session.Status = status
			repo := &fakeSessionRepo{session: session}
			packs := &fakePackRepo{}
			svc := newTestService(repo, packs)

			err := svc.Cancel(context.Background(), 100, &models.CancelSessionRequest{UserID: 10})

			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.False(t, repo.cancelled)
			assert.Empty(t, packs.restored)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeSessionRepo{session: paidSession()}
	svc := newTestService(repo, &fakePackRepo{})

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	err := svc.Cancel(context.Background(), 100, &models.CancelSessionRequest{
		UserID:             10,
		CancellationReason: string(long),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.cancelled)
}

func TestDelete_RestoresCreditBeforeDelete(t *testing.T) {
	repo := &fakeSessionRepo{session: paidSession()}
	packs := &fakePackRepo{}
	svc := newTestService(repo, packs)

	err := svc.Delete(context.Background(), 100)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
	assert.Equal(t, []int64{5}, packs.restored)
}

func TestDelete_CancelledSessionSkipsRestore(t *testing.T) {
	// У отменённой сессии занятие уже возвращено при отмене
	session := paidSession()
	session.Status = domain.StatusCancelled
	repo := &fakeSessionRepo{session: session}
	packs := &fakePackRepo{}
	svc := newTestService(repo, packs)

	err := svc.Delete(context.Background(), 100)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
	assert.Empty(t, packs.restored)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeSessionRepo{getErr: sessionRepo.ErrSessionNotFound}
	svc := newTestService(repo, &fakePackRepo{})

	err := svc.Delete(context.Background(), 100)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetClientSessions_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{}, &fakePackRepo{})

	_, err := svc.GetClientSessions(context.Background(), &models.GetClientSessionsRequest{
		ClientID: 10,
		Status:   ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCoachSessions_FilterPassthrough(t *testing.T) {
	repo := &fakeSessionRepo{coachResults: []*domain.Session{paidSession()}}
	svc := newTestService(repo, &fakePackRepo{})

	start := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetCoachSessions(context.Background(), &models.GetCoachSessionsRequest{
		CoachID:         1,
		StartDate:       &start,
		EndDate:         &end,
		Status:          ptr.Ptr("scheduled"),
		IncludeInactive: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(1), repo.lastFilter.CoachID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusScheduled, *repo.lastFilter.Status)
	assert.True(t, repo.lastFilter.IncludeInactive)
}

package book_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	packRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/clientpack"
	sessionRepo "github.com/younesAM01/StayFit-BookingService/internal/infra/storage/session"
	"github.com/younesAM01/StayFit-BookingService/internal/integrations/rosterservice"
	"github.com/younesAM01/StayFit-BookingService/pkg/ptr"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

// --- fakes ---

type fakeSessionRepo struct {
	sessions  []*domain.Session
	created   *domain.Session
	createErr error
	listErr   error
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *s
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeSessionRepo) ListByCoachAndWeek(ctx context.Context, coachID int64, weekStart time.Time) ([]*domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sessions, nil
}

type fakePackRepo struct {
	pack       *domain.ClientPack
	getErr     error
	consumeErr error
	consumed   []int64
}

func (f *fakePackRepo) GetByID(ctx context.Context, id int64) (*domain.ClientPack, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.pack, nil
}

func (f *fakePackRepo) Consume(ctx context.Context, id int64) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}
	f.consumed = append(f.consumed, id)
	return nil
}

type fakeRosterClient struct {
	coach     *rosterservice.Coach
	coachErr  error
	client    *rosterservice.ClientAccount
	clientErr error
}

func (f *fakeRosterClient) GetCoach(ctx context.Context, coachID int64) (*rosterservice.Coach, error) {
	if f.coachErr != nil {
		return nil, f.coachErr
	}
	return f.coach, nil
}

func (f *fakeRosterClient) GetClient(ctx context.Context, clientID int64) (*rosterservice.ClientAccount, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return f.client, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

// --- fixtures ---

var (
	// Среда 13:15, бронируем на субботу 17:00
	testNow  = time.Date(2026, time.September, 9, 13, 15, 0, 0, time.UTC)
	testDate = time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
)

func eligiblePack() *domain.ClientPack {
	return &domain.ClientPack{
		ID:                5,
		ClientID:          10,
		TotalSessions:     10,
		RemainingSessions: 4,
		IsActive:          true,
		PurchaseState:     domain.PurchaseCompleted,
		PurchaseDate:      testNow.AddDate(0, -1, 0),
		ExpiresAt:         testNow.AddDate(0, 2, 0),
	}
}

func validRequest() *Request {
	return &Request{
		CoachID:      1,
		ClientID:     10,
		ClientPackID: ptr.Ptr(int64(5)),
		Date:         testDate,
		Hour:         types.HourOfDay(17),
	}
}

func newTestUseCase(sessions *fakeSessionRepo, packs *fakePackRepo, roster *fakeRosterClient, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(sessions, packs, roster, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func activeRoster() *fakeRosterClient {
	return &fakeRosterClient{
		coach:  &rosterservice.Coach{ID: 1, DisplayName: "Anna K.", Active: true},
		client: &rosterservice.ClientAccount{ID: 10, DisplayName: "Pavel S."},
	}
}

// --- tests ---

func TestExecute_Success(t *testing.T) {
	sessions := &fakeSessionRepo{}
	packs := &fakePackRepo{pack: eligiblePack()}
	tx := &fakeTxManager{}
	uc := newTestUseCase(sessions, packs, activeRoster(), tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, types.HourOfDay(17), resp.Hour)
	assert.Equal(t, domain.DefaultSessionDurationMinutes, resp.DurationMinutes)
	require.NotNil(t, resp.CoachName)
	assert.Equal(t, "Anna K.", *resp.CoachName)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Pavel S.", *resp.ClientName)

	// Занятие списано ровно один раз, внутри транзакции
	assert.Equal(t, []int64{5}, packs.consumed)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_HourNormalization(t *testing.T) {
	// "5PM" и "17:00" нормализованы на границе в один канонический час -
	// usecase их уже не различает
	sessions := &fakeSessionRepo{}
	packs := &fakePackRepo{pack: eligiblePack()}
	uc := newTestUseCase(sessions, packs, activeRoster(), &fakeTxManager{})

	req := validRequest()
	req.Hour = types.MustParseHourOfDay("5PM")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.MustParseHourOfDay("17:00"), resp.Hour)
}

func TestExecute_SlotOccupied(t *testing.T) {
	sessions := &fakeSessionRepo{
		sessions: []*domain.Session{{
			ID:          50,
			CoachID:     1,
			SessionDate: testDate,
			HourOfDay:   types.HourOfDay(17),
			Status:      domain.StatusScheduled,
		}},
	}
	packs := &fakePackRepo{pack: eligiblePack()}
	uc := newTestUseCase(sessions, packs, activeRoster(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	// До списания дело не дошло
	assert.Empty(t, packs.consumed)
}

func TestExecute_CancelledSessionDoesNotBlockSlot(t *testing.T) {
	sessions := &fakeSessionRepo{
		sessions: []*domain.Session{{
			ID:          50,
			CoachID:     1,
			SessionDate: testDate,
			HourOfDay:   types.HourOfDay(17),
			Status:      domain.StatusCancelled,
		}},
	}
	packs := &fakePackRepo{pack: eligiblePack()}
	uc := newTestUseCase(sessions, packs, activeRoster(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	// Прикладная проверка слот пропустила, но уникальный индекс отклонил вставку
	sessions := &fakeSessionRepo{createErr: sessionRepo.ErrSlotTaken}
	packs := &fakePackRepo{pack: eligiblePack()}
	uc := newTestUseCase(sessions, packs, activeRoster(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_PackEligibility(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *domain.ClientPack)
		wantErr error
	}{
		{name: "unpaid", mutate: func(p *domain.ClientPack) { p.PurchaseState = domain.PurchasePending }, wantErr: ErrPackWrongState},
		{name: "inactive", mutate: func(p *domain.ClientPack) { p.IsActive = false }, wantErr: ErrPackInactive},
		{name: "expired", mutate: func(p *domain.ClientPack) { p.ExpiresAt = testNow.AddDate(0, 0, -1) }, wantErr: ErrPackExpired},
		{name: "exhausted", mutate: func(p *domain.ClientPack) { p.RemainingSessions = 0 }, wantErr: ErrPackExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := eligiblePack()
			tt.mutate(pack)
			packs := &fakePackRepo{pack: pack}
			uc := newTestUseCase(&fakeSessionRepo{}, packs, activeRoster(), &fakeTxManager{})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, packs.consumed)
		})
	}
}

func TestExecute_PackNotOwned(t *testing.T) {
	pack := eligiblePack()
	pack.ClientID = 99
	packs := &fakePackRepo{pack: pack}
	uc := newTestUseCase(&fakeSessionRepo{}, packs, activeRoster(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPackNotOwned)
}

func TestExecute_PackNotFound(t *testing.T) {
	packs := &fakePackRepo{getErr: packRepo.ErrPackNotFound}
	uc := newTestUseCase(&fakeSessionRepo{}, packs, activeRoster(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestExecute_ConcurrentExhaustion(t *testing.T) {
	// Проверка пригодности прошла, но атомарное списание
	// обнаружило исчерпание (конкурент успел первым)
	packs := &fakePackRepo{pack: eligiblePack(), consumeErr: packRepo.ErrNoSessionsLeft}
	uc := newTestUseCase(&fakeSessionRepo{}, packs, activeRoster(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPackExhausted)
}

func TestExecute_FreeSessionSkipsConsume(t *testing.T) {
	sessions := &fakeSessionRepo{}
	// Исчерпанный пакет не мешает бесплатной сессии
	pack := eligiblePack()
	pack.RemainingSessions = 0
	packs := &fakePackRepo{pack: pack}
	uc := newTestUseCase(sessions, packs, activeRoster(), &fakeTxManager{})

	req := validRequest()
	req.IsFree = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.IsFree)
	assert.Empty(t, packs.consumed)
}

func TestExecute_FreeSessionWithoutPack(t *testing.T) {
	uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{}, activeRoster(), &fakeTxManager{})

	req := validRequest()
	req.IsFree = true
	req.ClientPackID = nil

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.ClientPackID)
}

func TestExecute_PaidSessionRequiresPack(t *testing.T) {
	uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{}, activeRoster(), &fakeTxManager{})

	req := validRequest()
	req.ClientPackID = nil

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CoachChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		roster := activeRoster()
		roster.coachErr = rosterservice.ErrCoachNotFound
		uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, roster, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCoachNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		roster := activeRoster()
		roster.coach.Active = false
		uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, roster, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCoachInactive)
	})
}

func TestExecute_ClientNotFound(t *testing.T) {
	roster := activeRoster()
	roster.clientErr = rosterservice.ErrClientNotFound
	uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, roster, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_SlotTimeChecks(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, activeRoster(), &fakeTxManager{})

		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("within cutoff", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, activeRoster(), &fakeTxManager{})

		// Сегодня 13:15, слот на 14:00 - меньше часа до начала
		req := validRequest()
		req.Date = time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
		req.Hour = types.HourOfDay(14)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("beyond cutoff today", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, activeRoster(), &fakeTxManager{})

		req := validRequest()
		req.Date = time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
		req.Hour = types.HourOfDay(16)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("hour outside grid", func(t *testing.T) {
		uc := newTestUseCase(&fakeSessionRepo{}, &fakePackRepo{pack: eligiblePack()}, activeRoster(), &fakeTxManager{})

		req := validRequest()
		req.Hour = types.HourOfDay(7)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidHour)
	})
}

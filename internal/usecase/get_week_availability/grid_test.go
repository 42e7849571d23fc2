package get_week_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younesAM01/StayFit-BookingService/internal/domain"
	"github.com/younesAM01/StayFit-BookingService/pkg/types"
)

var (
	// Понедельник 7 сентября 2026
	testWeekStart = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	// Далёкое будущее: отсечка по времени ни один слот не трогает
	farPast = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func testSession(date time.Time, hour int, status domain.SessionStatus) *domain.Session {
	return &domain.Session{
		CoachID:     1,
		ClientID:    10,
		SessionDate: date,
		HourOfDay:   types.HourOfDay(hour),
		Status:      status,
	}
}

func TestComputeWeekAvailability_EmptyWeek(t *testing.T) {
	availability := computeWeekAvailability(testWeekStart, nil, farPast)

	// 7 дней по 16 слотов, все доступны
	require.Len(t, availability, 7*16)
	for key, available := range availability {
		assert.True(t, available, "slot %s", key)
	}
}

func TestComputeWeekAvailability_ActiveSessionBlocksSlot(t *testing.T) {
	wednesday := testWeekStart.AddDate(0, 0, 2)
	sessions := []*domain.Session{
		testSession(wednesday, 17, domain.StatusScheduled),
		testSession(wednesday, 18, domain.StatusPending),
		testSession(wednesday, 19, domain.StatusCompleted),
	}

	availability := computeWeekAvailability(testWeekStart, sessions, farPast)

	assert.False(t, availability[domain.SlotKey(wednesday, 17)])
	assert.False(t, availability[domain.SlotKey(wednesday, 18)])
	assert.False(t, availability[domain.SlotKey(wednesday, 19)])
	assert.True(t, availability[domain.SlotKey(wednesday, 20)])
}

func TestComputeWeekAvailability_CancelledSessionFreesSlot(t *testing.T) {
	wednesday := testWeekStart.AddDate(0, 0, 2)
	sessions := []*domain.Session{
		testSession(wednesday, 17, domain.StatusCancelled),
	}

	availability := computeWeekAvailability(testWeekStart, sessions, farPast)

	assert.True(t, availability[domain.SlotKey(wednesday, 17)])
}

func TestComputeWeekAvailability_CancelledThenRebooked(t *testing.T) {
	// Слот отменённой сессии занят новой - доступность определяет активная
	wednesday := testWeekStart.AddDate(0, 0, 2)
	sessions := []*domain.Session{
		testSession(wednesday, 17, domain.StatusCancelled),
		testSession(wednesday, 17, domain.StatusScheduled),
	}

	availability := computeWeekAvailability(testWeekStart, sessions, farPast)

	assert.False(t, availability[domain.SlotKey(wednesday, 17)])
}

func TestComputeWeekAvailability_OutOfGridSession(t *testing.T) {
	// Сессия с часом вне сетки не может скрыть ни один слот
	wednesday := testWeekStart.AddDate(0, 0, 2)
	sessions := []*domain.Session{
		testSession(wednesday, 7, domain.StatusScheduled),
		testSession(wednesday, 24, domain.StatusScheduled),
	}

	availability := computeWeekAvailability(testWeekStart, sessions, farPast)

	for key, available := range availability {
		assert.True(t, available, "slot %s", key)
	}
}

func TestComputeWeekAvailability_BookingCutoff(t *testing.T) {
	// Среда 13:15: слоты до 14:00 включительно недоступны, с 15:00 доступны
	now := time.Date(2026, time.September, 9, 13, 15, 0, 0, time.UTC)
	wednesday := testWeekStart.AddDate(0, 0, 2)

	availability := computeWeekAvailability(testWeekStart, nil, now)

	assert.False(t, availability[domain.SlotKey(wednesday, 13)])
	assert.False(t, availability[domain.SlotKey(wednesday, 14)])
	assert.True(t, availability[domain.SlotKey(wednesday, 15)])
	assert.True(t, availability[domain.SlotKey(wednesday, 16)])

	// Понедельник и вторник прошли целиком
	monday := testWeekStart
	tuesday := testWeekStart.AddDate(0, 0, 1)
	for _, hour := range domain.HoursOfDay() {
		assert.False(t, availability[domain.SlotKey(monday, hour)], "monday %02d", hour)
		assert.False(t, availability[domain.SlotKey(tuesday, hour)], "tuesday %02d", hour)
	}

	// Четверг полностью доступен
	thursday := testWeekStart.AddDate(0, 0, 3)
	for _, hour := range domain.HoursOfDay() {
		assert.True(t, availability[domain.SlotKey(thursday, hour)], "thursday %02d", hour)
	}
}

func TestComputeWeekAvailability_Deterministic(t *testing.T) {
	now := time.Date(2026, time.September, 9, 13, 15, 0, 0, time.UTC)
	wednesday := testWeekStart.AddDate(0, 0, 2)
	sessions := []*domain.Session{
		testSession(wednesday, 17, domain.StatusScheduled),
	}

	first := computeWeekAvailability(testWeekStart, sessions, now)
	second := computeWeekAvailability(testWeekStart, sessions, now)

	assert.Equal(t, first, second)
}

func TestBuildDays(t *testing.T) {
	wednesday := testWeekStart.AddDate(0, 0, 2)
	sessions := []*domain.Session{
		testSession(wednesday, 17, domain.StatusScheduled),
	}
	availability := computeWeekAvailability(testWeekStart, sessions, farPast)

	days := buildDays(testWeekStart, availability)

	require.Len(t, days, 7)
	for i, day := range days {
		assert.True(t, day.Date.Equal(testWeekStart.AddDate(0, 0, i)))
		require.Len(t, day.Slots, 16)
	}

	// Слоты идут по возрастанию часов 08:00..23:00
	assert.Equal(t, types.HourOfDay(8), days[0].Slots[0].Hour)
	assert.Equal(t, types.HourOfDay(23), days[0].Slots[15].Hour)

	// Занятая среда 17:00
	assert.False(t, days[2].Slots[17-8].Available)
	assert.True(t, days[2].Slots[18-8].Available)
}

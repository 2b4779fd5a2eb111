package holiday

import (
	"context"
	"sync"
	"testing"

	domain "github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	mu       sync.Mutex
	holidays map[string]domain.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]domain.Holiday)}
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h domain.Holiday) (domain.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.holidays[h.Date]; ok {
		return domain.Holiday{}, domain.ErrHolidayExists
	}
	f.holidays[h.Date] = h
	return h, nil
}

func (f *fakeHolidayRepo) Get(ctx context.Context, date string) (*domain.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.holidays[date]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHolidayRepo) ListBetween(ctx context.Context, startDate, endDate string) ([]domain.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Holiday
	for _, h := range f.holidays {
		if h.Date >= startDate && h.Date <= endDate {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.holidays[date]; !ok {
		return domain.ErrHolidayNotFound
	}
	delete(f.holidays, date)
	return nil
}

type fakeSettingsService struct{}

func (f *fakeSettingsService) Get(ctx context.Context) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

func (f *fakeSettingsService) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}

func (f *fakeSettingsService) Resolved(ctx context.Context) (settings.PortalSettings, error) {
	return settings.Defaults(), nil
}

func TestSeedSundays(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, &fakeSettingsService{})

	result, err := svc.SeedSundays(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, 52, result.Sundays)
	assert.Equal(t, 52, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Len(t, repo.holidays, 52)
}

func TestSeedSundaysIsIdempotent(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, &fakeSettingsService{})

	_, err := svc.SeedSundays(context.Background(), 2024)
	require.NoError(t, err)

	second, err := svc.SeedSundays(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 52, second.Skipped)
	assert.Len(t, repo.holidays, 52)
}

func TestSeedSundaysFillsGaps(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, &fakeSettingsService{})

	// Pre-existing holiday on a Sunday must be kept, not duplicated.
	reason := "New year celebration"
	_, err := repo.Create(context.Background(), domain.Holiday{Date: "2024-01-07", Reason: &reason})
	require.NoError(t, err)

	result, err := svc.SeedSundays(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, 51, result.Created)
	assert.Equal(t, 1, result.Skipped)

	kept, err := repo.Get(context.Background(), "2024-01-07")
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, &reason, kept.Reason)
}

func TestAddAndGet(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, &fakeSettingsService{})
	ctx := context.Background()

	created, err := svc.Add(ctx, domain.AddHolidayRequest{Date: "2024-08-15", Reason: "Independence Day"})
	require.NoError(t, err)
	require.NotNil(t, created.Reason)
	assert.Equal(t, "Independence Day", *created.Reason)

	got, err := svc.Get(ctx, "2024-08-15")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetMissing(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo(), &fakeSettingsService{})

	_, err := svc.Get(context.Background(), "2024-08-15")
	assert.ErrorIs(t, err, domain.ErrHolidayNotFound)
}

func TestAddDuplicateFails(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo(), &fakeSettingsService{})
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddHolidayRequest{Date: "2024-08-15"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, domain.AddHolidayRequest{Date: "2024-08-15"})
	assert.ErrorIs(t, err, domain.ErrHolidayExists)
}

func TestListForMonth(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, &fakeSettingsService{})
	ctx := context.Background()

	// Window for key 2024-02 with default start day 6 is [02-06, 03-05].
	for _, date := range []string{"2024-02-05", "2024-02-14", "2024-03-03", "2024-03-06"} {
		_, err := repo.Create(ctx, domain.Holiday{Date: date})
		require.NoError(t, err)
	}

	holidays, err := svc.ListForMonth(ctx, "2024-02")
	require.NoError(t, err)
	assert.Len(t, holidays, 2)
}

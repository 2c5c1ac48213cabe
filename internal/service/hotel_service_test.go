package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
)

type fakeHotelRepo struct {
	mu     sync.Mutex
	hotels map[string]*domain.Hotel
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{hotels: make(map[string]*domain.Hotel)}
}

func (f *fakeHotelRepo) Create(_ context.Context, hotel *domain.Hotel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	hotel.ID = uuid.NewString()
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = hotel.CreatedAt
	clone := *hotel
	f.hotels[hotel.ID] = &clone
	return nil
}

func (f *fakeHotelRepo) Update(_ context.Context, id string, update repository.HotelUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	hotel, ok := f.hotels[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if update.Name != nil {
		hotel.Name = *update.Name
	}
	if update.Star != nil {
		hotel.Star = *update.Star
	}
	if update.Price != nil {
		hotel.Price = *update.Price
	}
	if update.City != nil {
		hotel.City = *update.City
	}
	hotel.UpdatedAt = time.Now()
	return nil
}

func (f *fakeHotelRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.hotels[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.hotels, id)
	return nil
}

func (f *fakeHotelRepo) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hotel, ok := f.hotels[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *hotel
	return &clone, nil
}

func (f *fakeHotelRepo) List(_ context.Context, filter repository.HotelFilter) ([]domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Hotel, 0, len(f.hotels))
	for _, hotel := range f.hotels {
		if filter.City != nil && hotel.City != *filter.City {
			continue
		}
		if filter.Star != nil && hotel.Star != *filter.Star {
			continue
		}
		out = append(out, *hotel)
	}
	return out, nil
}

var _ repository.HotelRepository = (*fakeHotelRepo)(nil)

func validHotelInput() HotelCreateInput {
	return HotelCreateInput{
		Name:       "Harbour View",
		Star:       4,
		Address:    "1 Harbour Rd",
		City:       "Hong Kong",
		Country:    "China",
		Price:      180,
		Facilities: []string{"pool"},
	}
}

func TestHotelCreateAndGet(t *testing.T) {
	svc := NewHotelService(newFakeHotelRepo(), nil)
	ctx := context.Background()

	hotel, err := svc.Create(ctx, validHotelInput())
	require.NoError(t, err)
	require.NotEmpty(t, hotel.ID)

	got, err := svc.Get(ctx, hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbour View", got.Name)
	assert.Equal(t, 4, got.Star)
}

func TestHotelCreateValidation(t *testing.T) {
	svc := NewHotelService(newFakeHotelRepo(), nil)
	ctx := context.Background()

	missingName := validHotelInput()
	missingName.Name = ""
	_, err := svc.Create(ctx, missingName)
	requireStatus(t, err, 400)

	badStar := validHotelInput()
	badStar.Star = 6
	_, err = svc.Create(ctx, badStar)
	requireStatus(t, err, 400)

	zeroStar := validHotelInput()
	zeroStar.Star = 0
	_, err = svc.Create(ctx, zeroStar)
	requireStatus(t, err, 400)
}

func TestHotelGetErrors(t *testing.T) {
	svc := NewHotelService(newFakeHotelRepo(), nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "not-a-uuid")
	requireStatus(t, err, 400)

	_, err = svc.Get(ctx, uuid.NewString())
	requireStatus(t, err, 404)
}

func TestHotelListFilters(t *testing.T) {
	repo := newFakeHotelRepo()
	svc := NewHotelService(repo, nil)
	ctx := context.Background()

	first := validHotelInput()
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := validHotelInput()
	second.Name = "City Inn"
	second.City = "Taipei"
	second.Star = 3
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	city := "Taipei"
	hotels, err := svc.List(ctx, repository.HotelFilter{City: &city})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "City Inn", hotels[0].Name)

	star := 4
	hotels, err = svc.List(ctx, repository.HotelFilter{Star: &star})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Harbour View", hotels[0].Name)

	hotels, err = svc.List(ctx, repository.HotelFilter{})
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}

func TestHotelUpdatePartial(t *testing.T) {
	svc := NewHotelService(newFakeHotelRepo(), nil)
	ctx := context.Background()

	hotel, err := svc.Create(ctx, validHotelInput())
	require.NoError(t, err)

	price := 220.0
	require.NoError(t, svc.Update(ctx, hotel.ID, repository.HotelUpdate{Price: &price}))

	got, err := svc.Get(ctx, hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, 220.0, got.Price)
	// Untouched fields survive the partial update.
	assert.Equal(t, "Harbour View", got.Name)

	badStar := 9
	err = svc.Update(ctx, hotel.ID, repository.HotelUpdate{Star: &badStar})
	requireStatus(t, err, 400)

	err = svc.Update(ctx, uuid.NewString(), repository.HotelUpdate{Price: &price})
	requireStatus(t, err, 404)
}

func TestHotelDelete(t *testing.T) {
	svc := NewHotelService(newFakeHotelRepo(), nil)
	ctx := context.Background()

	hotel, err := svc.Create(ctx, validHotelInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, hotel.ID))

	_, err = svc.Get(ctx, hotel.ID)
	requireStatus(t, err, 404)

	err = svc.Delete(ctx, hotel.ID)
	requireStatus(t, err, 404)
}

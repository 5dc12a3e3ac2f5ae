package properties

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	propertyRepoErrs "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
	"github.com/m04kA/VRM-BookingService/internal/service/properties/models"
	"github.com/m04kA/VRM-BookingService/pkg/ptr"
	"github.com/m04kA/VRM-BookingService/pkg/types"
)

type fakePropertyRepo struct {
	property *domain.Property
	getErr   error

	created   *domain.Property
	updated   *domain.Property
	deleteErr error
	deletedID int64
}

func (f *fakePropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	stored := *p
	stored.ID = 10
	f.created = &stored
	return &stored, nil
}

func (f *fakePropertyRepo) GetByID(context.Context, int64) (*domain.Property, error) {
	return f.property, f.getErr
}

func (f *fakePropertyRepo) GetByHostID(context.Context, int64) ([]*domain.Property, error) {
	return []*domain.Property{f.property}, nil
}

func (f *fakePropertyRepo) List(context.Context, domain.PropertyFilter) ([]*domain.Property, error) {
	return []*domain.Property{f.property}, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *domain.Property) error {
	f.updated = p
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateInput() models.CreatePropertyInput {
	return models.CreatePropertyInput{
		HostID:        1,
		Title:         "Cozy loft",
		Location:      "Lisbon, Portugal",
		PropertyType:  "apartment",
		PricePerNight: 120,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
	}
}

func TestService_Create(t *testing.T) {
	repo := &fakePropertyRepo{}
	svc := NewService(repo, nopLogger{})

	in := validCreateInput()
	checkIn := types.TimeString("15:00")
	in.HouseRules = models.HouseRulesInput{
		CheckInTime: &checkIn,
		PetsAllowed: ptr.Ptr(true),
	}

	created, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, types.TimeString("15:00"), created.HouseRules.CheckInTime)
	assert.True(t, created.HouseRules.PetsAllowed)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	svc := NewService(&fakePropertyRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(in *models.CreatePropertyInput)
	}{
		{"missing title", func(in *models.CreatePropertyInput) { in.Title = "" }},
		{"missing location", func(in *models.CreatePropertyInput) { in.Location = "" }},
		{"non-positive price", func(in *models.CreatePropertyInput) { in.PricePerNight = 0 }},
		{"non-positive max guests", func(in *models.CreatePropertyInput) { in.MaxGuests = 0 }},
		{"bad check-in time", func(in *models.CreatePropertyInput) {
			bad := types.TimeString("25:99")
			in.HouseRules.CheckInTime = &bad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	repo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		HostID:        1,
		Title:         "Old title",
		Location:      "Lisbon",
		PricePerNight: 100,
		MaxGuests:     4,
	}}
	svc := NewService(repo, nopLogger{})

	updated, err := svc.Update(context.Background(), 10, 1, models.UpdatePropertyInput{
		Title:         ptr.Ptr("New title"),
		PricePerNight: ptr.Ptr(150.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, float64(150), updated.PricePerNight)
	// Незаполненные поля не трогаем
	assert.Equal(t, "Lisbon", updated.Location)
	assert.Equal(t, 4, updated.MaxGuests)
}

func TestService_Update_AccessDenied(t *testing.T) {
	repo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 10, 999, models.UpdatePropertyInput{
		Title: ptr.Ptr("New title"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestService_Delete(t *testing.T) {
	repo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 10, 1))
	assert.Equal(t, int64(10), repo.deletedID)
}

func TestService_Delete_WithBookings(t *testing.T) {
	repo := &fakePropertyRepo{
		property:  &domain.Property{ID: 10, HostID: 1},
		deleteErr: propertyRepoErrs.ErrPropertyHasBookings,
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrPropertyHasBookings)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakePropertyRepo{getErr: propertyRepoErrs.ErrPropertyNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 10, 1)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_Search_InvalidPriceRange(t *testing.T) {
	svc := NewService(&fakePropertyRepo{}, nopLogger{})

	_, err := svc.Search(context.Background(), domain.PropertyFilter{
		PriceMin: ptr.Ptr(200.0),
		PriceMax: ptr.Ptr(100.0),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

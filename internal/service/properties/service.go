package properties

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
	"github.com/m04kA/VRM-BookingService/internal/service/properties/models"
)

// Service сервис управления объявлениями
type Service struct {
	repo   PropertyRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(repo PropertyRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create создает новое объявление
func (s *Service) Create(ctx context.Context, in models.CreatePropertyInput) (*domain.Property, error) {
	s.logger.Info("Create: creating property for host=%d, title=%q", in.HostID, in.Title)

	if err := validateCreate(in); err != nil {
		s.logger.Warn("Create: validation failed for host=%d: %v", in.HostID, err)
		return nil, err
	}

	p := &domain.Property{
		HostID:        in.HostID,
		Title:         in.Title,
		Location:      in.Location,
		Description:   in.Description,
		PropertyType:  in.PropertyType,
		PricePerNight: in.PricePerNight,
		MaxGuests:     in.MaxGuests,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		InstantBook:   in.InstantBook,
		Amenities:     in.Amenities,
		Images:        in.Images,
	}
	applyHouseRules(&p.HouseRules, in.HouseRules)

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error("Create: failed to create property for host=%d: %v", in.HostID, err)
		return nil, fmt.Errorf("%w: Create - failed to create property: %v", ErrInternal, err)
	}

	s.logger.Info("Create: property created id=%d, host=%d", created.ID, created.HostID)
	return created, nil
}

// GetByID возвращает объявление по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	s.logger.Info("GetByID: fetching property id=%d", id)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetByID: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetByID: failed to get property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get property: %v", ErrInternal, err)
	}

	return p, nil
}

// GetByHostID возвращает все объявления хоста
func (s *Service) GetByHostID(ctx context.Context, hostID int64) ([]*domain.Property, error) {
	s.logger.Info("GetByHostID: fetching properties for host=%d", hostID)

	list, err := s.repo.GetByHostID(ctx, hostID)
	if err != nil {
		s.logger.Error("GetByHostID: failed to get properties for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: GetByHostID - failed to get properties: %v", ErrInternal, err)
	}

	return list, nil
}

// Search возвращает объявления, удовлетворяющие всем заданным критериям
func (s *Service) Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	s.logger.Info("Search: searching properties")

	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return nil, fmt.Errorf("%w: price_min must not exceed price_max", ErrInvalidInput)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Search: failed to list properties: %v", err)
		return nil, fmt.Errorf("%w: Search - failed to list properties: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d properties", len(list))
	return list, nil
}

// Update частично обновляет объявление
// Обновлять объявление может только его хост
func (s *Service) Update(ctx context.Context, id, hostID int64, in models.UpdatePropertyInput) (*domain.Property, error) {
	s.logger.Info("Update: updating property id=%d by host=%d", id, hostID)

	if err := validateUpdate(in); err != nil {
		s.logger.Warn("Update: validation failed for property=%d: %v", id, err)
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: failed to get property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to get property: %v", ErrInternal, err)
	}

	if p.HostID != hostID {
		s.logger.Warn("Update: host=%d is not the owner of property=%d", hostID, id)
		return nil, ErrAccessDenied
	}

	applyUpdate(p, in)

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: failed to update property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to update property: %v", ErrInternal, err)
	}

	s.logger.Info("Update: property id=%d updated", id)
	return p, nil
}

// Delete удаляет объявление
// Удалять объявление может только его хост; объявление с бронированиями
// удалить нельзя
func (s *Service) Delete(ctx context.Context, id, hostID int64) error {
	s.logger.Info("Delete: deleting property id=%d by host=%d", id, hostID)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Delete: property id=%d not found", id)
			return ErrPropertyNotFound
		}
		s.logger.Error("Delete: failed to get property id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to get property: %v", ErrInternal, err)
	}

	if p.HostID != hostID {
		s.logger.Warn("Delete: host=%d is not the owner of property=%d", hostID, id)
		return ErrAccessDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, propertyRepo.ErrPropertyNotFound):
			return ErrPropertyNotFound
		case errors.Is(err, propertyRepo.ErrPropertyHasBookings):
			s.logger.Warn("Delete: property id=%d has bookings", id)
			return ErrPropertyHasBookings
		default:
			s.logger.Error("Delete: failed to delete property id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - failed to delete property: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: property id=%d deleted", id)
	return nil
}

// applyHouseRules переносит заполненные правила проживания в доменную модель
func applyHouseRules(dst *domain.HouseRules, in models.HouseRulesInput) {
	if in.CheckInTime != nil {
		dst.CheckInTime = *in.CheckInTime
	}
	if in.CheckOutTime != nil {
		dst.CheckOutTime = *in.CheckOutTime
	}
	if in.SmokingAllowed != nil {
		dst.SmokingAllowed = *in.SmokingAllowed
	}
	if in.PetsAllowed != nil {
		dst.PetsAllowed = *in.PetsAllowed
	}
	if in.PartiesAllowed != nil {
		dst.PartiesAllowed = *in.PartiesAllowed
	}
	if in.QuietHours != nil {
		dst.QuietHours = *in.QuietHours
	}
}

// applyUpdate применяет заполненные поля обновления к объявлению
func applyUpdate(p *domain.Property, in models.UpdatePropertyInput) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.PropertyType != nil {
		p.PropertyType = *in.PropertyType
	}
	if in.PricePerNight != nil {
		p.PricePerNight = *in.PricePerNight
	}
	if in.MaxGuests != nil {
		p.MaxGuests = *in.MaxGuests
	}
	if in.Bedrooms != nil {
		p.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = *in.Bathrooms
	}
	if in.InstantBook != nil {
		p.InstantBook = *in.InstantBook
	}
	if in.Amenities != nil {
		p.Amenities = in.Amenities
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.HouseRules != nil {
		applyHouseRules(&p.HouseRules, *in.HouseRules)
	}
}

package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// Service сервис вишлистов гостей
type Service struct {
	wishlistRepo WishlistRepository
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса вишлистов
func NewService(wishlistRepo WishlistRepository, propertyRepo PropertyRepository, logger Logger) *Service {
	return &Service{
		wishlistRepo: wishlistRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Add добавляет объявление в вишлист гостя
// Объявление должно существовать; повторное добавление идемпотентно
func (s *Service) Add(ctx context.Context, guestID, propertyID int64) error {
	s.logger.Info("Add: guest=%d adds property=%d to wishlist", guestID, propertyID)

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Add: property=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("Add: failed to get property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: Add - failed to get property: %v", ErrInternal, err)
	}

	if err := s.wishlistRepo.Add(ctx, guestID, propertyID); err != nil {
		s.logger.Error("Add: failed to add property=%d for guest=%d: %v", propertyID, guestID, err)
		return fmt.Errorf("%w: Add - storage error: %v", ErrInternal, err)
	}

	return nil
}

// Remove удаляет объявление из вишлиста гостя
// Удаление отсутствующего объявления не является ошибкой
func (s *Service) Remove(ctx context.Context, guestID, propertyID int64) error {
	s.logger.Info("Remove: guest=%d removes property=%d from wishlist", guestID, propertyID)

	if err := s.wishlistRepo.Remove(ctx, guestID, propertyID); err != nil {
		s.logger.Error("Remove: failed to remove property=%d for guest=%d: %v", propertyID, guestID, err)
		return fmt.Errorf("%w: Remove - storage error: %v", ErrInternal, err)
	}

	return nil
}

// List возвращает объявления из вишлиста гостя
// Объявления, удалённые после добавления в вишлист, пропускаются
func (s *Service) List(ctx context.Context, guestID int64) ([]*domain.Property, error) {
	s.logger.Info("List: fetching wishlist for guest=%d", guestID)

	ids, err := s.wishlistRepo.List(ctx, guestID)
	if err != nil {
		s.logger.Error("List: failed to list wishlist for guest=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: List - storage error: %v", ErrInternal, err)
	}

	properties := make([]*domain.Property, 0, len(ids))
	for _, id := range ids {
		property, err := s.propertyRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				continue
			}
			s.logger.Error("List: failed to get property=%d: %v", id, err)
			return nil, fmt.Errorf("%w: List - failed to get property: %v", ErrInternal, err)
		}
		properties = append(properties, property)
	}

	return properties, nil
}

// Contains проверяет наличие объявления в вишлисте гостя
func (s *Service) Contains(ctx context.Context, guestID, propertyID int64) (bool, error) {
	ok, err := s.wishlistRepo.Contains(ctx, guestID, propertyID)
	if err != nil {
		s.logger.Error("Contains: failed to check property=%d for guest=%d: %v", propertyID, guestID, err)
		return false, fmt.Errorf("%w: Contains - storage error: %v", ErrInternal, err)
	}
	return ok, nil
}

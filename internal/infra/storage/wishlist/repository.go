package wishlist

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// Ключ вишлиста одного гостя: множество ID объявлений
const keyPattern = "wishlist:%d"

// Repository хранилище вишлистов поверх Redis
// Вишлист - простое множество без связей и инвариантов, реляционное
// хранилище ему не нужно
type Repository struct {
	client *redis.Client
}

// NewRepository создает новый экземпляр хранилища вишлистов
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

func key(guestID int64) string {
	return fmt.Sprintf(keyPattern, guestID)
}

// Add добавляет объявление в вишлист гостя
func (r *Repository) Add(ctx context.Context, guestID, propertyID int64) error {
	if err := r.client.SAdd(ctx, key(guestID), propertyID).Err(); err != nil {
		return fmt.Errorf("%w: Add - sadd: %v", ErrStorage, err)
	}
	return nil
}

// Remove удаляет объявление из вишлиста гостя
func (r *Repository) Remove(ctx context.Context, guestID, propertyID int64) error {
	if err := r.client.SRem(ctx, key(guestID), propertyID).Err(); err != nil {
		return fmt.Errorf("%w: Remove - srem: %v", ErrStorage, err)
	}
	return nil
}

// List возвращает ID объявлений в вишлисте гостя (по возрастанию)
func (r *Repository) List(ctx context.Context, guestID int64) ([]int64, error) {
	members, err := r.client.SMembers(ctx, key(guestID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List - smembers: %v", ErrStorage, err)
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			// Чужеродное значение в множестве пропускаем
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// Contains проверяет наличие объявления в вишлисте гостя
func (r *Repository) Contains(ctx context.Context, guestID, propertyID int64) (bool, error) {
	ok, err := r.client.SIsMember(ctx, key(guestID), propertyID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Contains - sismember: %v", ErrStorage, err)
	}
	return ok, nil
}

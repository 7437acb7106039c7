package cart

import (
	"context"
	"fmt"
	"strconv"

	"threadline-be/internal/user"

	"github.com/redis/go-redis/v9"
)

// Store holds per-session carts as product id → quantity mappings. A session
// cart lives exactly as long as the session token; expiry destroys it.
type Store interface {
	IncrItem(ctx context.Context, userID, productID uint, qty int) (int64, error)
	RemoveItem(ctx context.Context, userID, productID uint) error
	Items(ctx context.Context, userID uint) (map[uint]int, error)
	Clear(ctx context.Context, userID uint) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

// IncrItem accumulates quantity for a product and refreshes the session TTL.
func (s *redisStore) IncrItem(ctx context.Context, userID, productID uint, qty int) (int64, error) {
	key := cartKey(userID)

	newQty, err := s.rdb.HIncrBy(ctx, key, strconv.FormatUint(uint64(productID), 10), int64(qty)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}

	if err := s.rdb.Expire(ctx, key, user.TokenValidity).Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}

	return newQty, nil
}

func (s *redisStore) RemoveItem(ctx context.Context, userID, productID uint) error {
	// HDel on a missing field (or key) is a no-op, which is the contract.
	err := s.rdb.HDel(ctx, cartKey(userID), strconv.FormatUint(uint64(productID), 10)).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}
	return nil
}

func (s *redisStore) Items(ctx context.Context, userID uint) (map[uint]int, error) {
	raw, err := s.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedReadCart, err)
	}

	items := make(map[uint]int, len(raw))
	for field, value := range raw {
		productID, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad product id %q", ErrFailedReadCart, field)
		}
		qty, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: bad quantity %q", ErrFailedReadCart, value)
		}
		items[uint(productID)] = qty
	}

	return items, nil
}

func (s *redisStore) Clear(ctx context.Context, userID uint) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	balanceCachePrefix = "wallet:balance:"
	balanceCacheTTL    = 5 * time.Minute
)

// GetCachedBalance reads the cached balance for a user. Any cache error
// is treated as a miss; the caller falls back to the database.
func (r *WalletRepo) GetCachedBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, bool) {
	if r.redisClient == nil {
		return decimal.Zero, false
	}

	val, err := r.redisClient.Get(ctx, balanceCacheKey(userID))
	if err != nil {
		return decimal.Zero, false
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false
	}

	return balance, true
}

// SetCachedBalance stores the balance for a user with a short TTL
func (r *WalletRepo) SetCachedBalance(ctx context.Context, userID uuid.UUID, balance decimal.Decimal) {
	if r.redisClient == nil {
		return
	}

	if err := r.redisClient.Set(ctx, balanceCacheKey(userID), balance.StringFixed(2), balanceCacheTTL); err != nil {
		logger.Warn("Failed to cache wallet balance",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

// InvalidateBalance drops the cached balance after a mutation commits
func (r *WalletRepo) InvalidateBalance(ctx context.Context, userID uuid.UUID) {
	if r.redisClient == nil {
		return
	}

	if err := r.redisClient.Delete(ctx, balanceCacheKey(userID)); err != nil {
		logger.Warn("Failed to invalidate wallet balance cache",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}

func balanceCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", balanceCachePrefix, userID)
}

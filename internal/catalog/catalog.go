package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	domain "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/booking"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

const cacheTTL = 5 * time.Minute

// Catalog resolves barbers, display names and services from the relational
// store, with a cache-aside redis layer in front. The barber lookup sits on
// every booking's hot path; names and tenancy change rarely, so a short TTL
// bounds staleness without explicit invalidation. A nil redis client means
// straight database reads.
type Catalog struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) *Catalog {
	return &Catalog{db: db, rdb: rdb}
}

func (cat *Catalog) cacheGet(ctx context.Context, key string, dest any) bool {
	if cat.rdb == nil {
		return false
	}
	raw, err := cat.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (cat *Catalog) cacheSet(ctx context.Context, key string, val any) {
	if cat.rdb == nil {
		return
	}
	if raw, err := json.Marshal(val); err == nil {
		cat.rdb.Set(ctx, key, raw, cacheTTL)
	}
}

func (cat *Catalog) Barber(
	ctx context.Context,
	barberID uint,
) (*domain.BarberProfile, error) {

	key := fmt.Sprintf("catalog:barber:%d", barberID)

	var profile domain.BarberProfile
	if cat.cacheGet(ctx, key, &profile) {
		return &profile, nil
	}

	var user models.User
	err := cat.db.WithContext(ctx).
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
		}
		return nil, err
	}

	profile = domain.BarberProfile{
		ID:           user.ID,
		Name:         user.Name,
		BarbershopID: user.BarbershopID,
	}
	cat.cacheSet(ctx, key, profile)
	return &profile, nil
}

func (cat *Catalog) DisplayName(
	ctx context.Context,
	userID uint,
) (string, error) {

	key := fmt.Sprintf("catalog:name:%d", userID)

	var name string
	if cat.cacheGet(ctx, key, &name) {
		return name, nil
	}

	var user models.User
	if err := cat.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return "", err
	}

	cat.cacheSet(ctx, key, user.Name)
	return user.Name, nil
}

func (cat *Catalog) Service(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	err := cat.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &service, nil
}

// Compile-time check
var _ domain.Catalog = (*Catalog)(nil)

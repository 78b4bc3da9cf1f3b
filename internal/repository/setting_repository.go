package repository

import (
	"context"
	"edu_resources_backend/internal/model"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const settingsCacheKey = "edu_res:settings"
const settingsCacheTTL = 5 * time.Minute

// SettingRepository reads the key/value settings rows through a Redis
// read-through cache. The cache entry is dropped on every write, so changes
// are visible on the next request. Redis is optional: with a nil client
// every read goes to the database.
type SettingRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewSettingRepository(db *gorm.DB, rdb *redis.Client) *SettingRepository {
	return &SettingRepository{DB: db, Redis: rdb}
}

func (r *SettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	if r.Redis != nil {
		if cached, err := r.Redis.Get(ctx, settingsCacheKey).Result(); err == nil {
			values := map[string]string{}
			if jsonErr := json.Unmarshal([]byte(cached), &values); jsonErr == nil {
				return values, nil
			}
		}
	}

	var rows []model.Setting
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	if r.Redis != nil {
		if payload, err := json.Marshal(values); err == nil {
			r.Redis.Set(ctx, settingsCacheKey, payload, settingsCacheTTL)
		}
	}

	return values, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	setting := model.Setting{Key: key, Value: value}
	if err := r.DB.Save(&setting).Error; err != nil {
		return err
	}

	if r.Redis != nil {
		r.Redis.Del(ctx, settingsCacheKey)
	}
	return nil
}

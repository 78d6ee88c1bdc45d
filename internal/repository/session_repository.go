package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campground-server/config"
	"campground-server/internal/model"
	"campground-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// SessionRepository хранит записи о выданных refresh-токенах в Redis.
// Ключ содержит uuid пользователя и jti, TTL ключа совпадает со сроком жизни
// токена: просроченная запись исчезает сама и никогда не вернется как живая
type SessionRepository struct {
	client *config.RedisClient
}

func NewSessionRepository(rdb *config.RedisClient) *SessionRepository {
	return &SessionRepository{rdb}
}

func (r *SessionRepository) Create(ctx context.Context, record *model.RefreshToken) error {
	ttl := time.Until(record.ExpireAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh токен %s уже просрочен", record.JTI)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return util.LogError("ошибка сериализации записи refresh токена", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(record.UserUUID, record.JTI), data, ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}

	return nil
}

// FindByUserAndJTI возвращает nil без ошибки, если записи нет или она истекла
func (r *SessionRepository) FindByUserAndJTI(ctx context.Context, userUUID, jti string) (*model.RefreshToken, error) {
	val, err := r.client.Client.Get(ctx, r.key(userUUID, jti)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("ошибка получения записи из Redis", err)
	}

	var record model.RefreshToken
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, util.LogError("ошибка десериализации записи refresh токена", err)
	}
	return &record, nil
}

// DeleteByUserAndJTI удаляет одну запись. Возвращает, была ли запись на месте:
// при гонке двух ротаций одного токена DEL выполнится ровно у одной из них,
// вторая получит false и обязана трактовать это как повторное использование
func (r *SessionRepository) DeleteByUserAndJTI(ctx context.Context, userUUID, jti string) (bool, error) {
	deleted, err := r.client.Client.Del(ctx, r.key(userUUID, jti)).Result()
	if err != nil {
		return false, util.LogError("ошибка удаления записи из Redis", err)
	}
	return deleted > 0, nil
}

// DeleteAllForUser снимает все сессии пользователя разом.
// Используется при обнаружении повторного использования refresh токена
func (r *SessionRepository) DeleteAllForUser(ctx context.Context, userUUID string) (int64, error) {
	var removed int64

	iter := r.client.Client.Scan(ctx, 0, r.key(userUUID, "*"), 0).Iterator()
	for iter.Next(ctx) {
		deleted, err := r.client.Client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return removed, util.LogError("ошибка удаления записи из Redis", err)
		}
		removed += deleted
	}
	if err := iter.Err(); err != nil {
		return removed, util.LogError("ошибка обхода ключей в Redis", err)
	}

	return removed, nil
}

func (r *SessionRepository) key(userUUID, jti string) string {
	return fmt.Sprintf("refresh:%s:%s", userUUID, jti)
}

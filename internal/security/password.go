package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры argon2id: 64 MiB памяти, 3 итерации, ключ 32 байта
const (
	argonMemory      uint32 = 64 * 1024
	argonTime        uint32 = 3
	argonParallelism uint8  = 1
	argonSaltLength  uint32 = 16
	argonKeyLength   uint32 = 32
)

// dummyPasswordHash : заранее посчитанный хэш для проверки пароля
// несуществующего пользователя. Логин с неизвестным email должен занимать
// столько же времени, сколько логин с неверным паролем
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=1$AAECAwQFBgcICQoLDA0ODw==$CzBVep/E6Q4zWH2ix+wRNluApcrvFDleg6jN8hc8YYY="

// HashPassword хэширует пароль argon2id со случайной солью.
// Результат кодируется в PHC формате: $argon2id$v=19$m=...,t=...,p=...$соль$хэш
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("ошибка генерации соли: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonParallelism, argonKeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonParallelism,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(hash),
	), nil
}

// CheckPassword сравнивает пароль с сохраненным хэшем.
// Несовпадение не является ошибкой: ошибка возвращается только на битом хэше
func CheckPassword(password string, encodedHash string) (bool, error) {
	memory, time, parallelism, salt, hash, err := parseEncodedHash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}

// DummyCheckPassword прогоняет полноценную проверку argon2id против фиктивного
// хэша. Результат намеренно отбрасывается
func DummyCheckPassword(password string) {
	_, _ = CheckPassword(password, dummyPasswordHash)
}

func parseEncodedHash(encodedHash string) (memory uint32, time uint32, parallelism uint8, salt []byte, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("некорректный формат хэша")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("некорректная версия argon2: %w", err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("неподдерживаемая версия argon2: %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("некорректные параметры хэша: %w", err)
	}

	salt, err = base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("некорректная соль: %w", err)
	}

	hash, err = base64.StdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("некорректный хэш: %w", err)
	}

	return memory, time, parallelism, salt, hash, nil
}

package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"campground-server/internal/apperror"
	"campground-server/internal/model"
	"campground-server/internal/ports"
	"campground-server/internal/repository"

	"github.com/google/uuid"
)

type AuthenticationService struct {
	sessionRepository ports.SessionRepositoryInterface
	jwtService        ports.JWTServiceInterface
	userRepository    ports.UserRepository
	passwordHasher    ports.PasswordHasherInterface
}

func NewAuthenticationService(
	sessionRepository ports.SessionRepositoryInterface,
	jwtService ports.JWTServiceInterface,
	userRepository ports.UserRepository,
	passwordHasher ports.PasswordHasherInterface,
) *AuthenticationService {
	return &AuthenticationService{
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
		userRepository:    userRepository,
		passwordHasher:    passwordHasher,
	}
}

// Signup регистрирует нового пользователя и сразу открывает сессию
func (s *AuthenticationService) Signup(ctx context.Context, email, password, firstName, lastName string) (*model.TokensPair, *model.User, error) {
	email = normalizeEmail(email)

	existing, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, apperror.Internal("ошибка поиска пользователя", err)
	}
	if existing != nil {
		return nil, nil, apperror.Conflict("пользователь с таким email уже существует")
	}

	hash, err := s.passwordHasher.Hash(password)
	if err != nil {
		return nil, nil, apperror.Internal("не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		// проверка выше не защищает от гонки двух одновременных регистраций,
		// последнее слово за constraint в БД
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, nil, apperror.Conflict("пользователь с таким email уже существует")
		}
		return nil, nil, apperror.Internal("ошибка создания пользователя", err)
	}

	tokens, err := s.issueTokens(ctx, created.UUID)
	if err != nil {
		return nil, nil, err
	}

	return tokens, created, nil
}

// Login проверяет пароль и открывает сессию.
// Для неизвестного email выполняется фиктивная проверка пароля, чтобы по
// времени ответа нельзя было отличить "нет пользователя" от "неверный пароль"
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, *model.User, error) {
	email = normalizeEmail(email)

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, apperror.Internal("ошибка поиска пользователя", err)
	}

	if user == nil {
		s.passwordHasher.DummyCheck(password)
		return nil, nil, apperror.Unauthorized("неверный email или пароль")
	}

	match, err := s.passwordHasher.Check(password, user.PasswordHash)
	if err != nil {
		return nil, nil, apperror.Internal("ошибка проверки пароля", err)
	}
	if !match {
		return nil, nil, apperror.Unauthorized("неверный email или пароль")
	}

	tokens, err := s.issueTokens(ctx, user.UUID)
	if err != nil {
		return nil, nil, err
	}

	return tokens, user, nil
}

// Logout завершает сессию. Операция идемпотентна: отсутствующий, битый или
// просроченный refresh токен не является ошибкой, цель уже достигнута
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		log.Printf("logout с невалидным refresh токеном: %v", err)
		return nil
	}

	record, err := s.sessionRepository.FindByUserAndJTI(ctx, claims.Subject, claims.ID)
	if err != nil {
		return apperror.Internal("ошибка поиска записи refresh токена", err)
	}
	if record == nil {
		return nil
	}

	if _, err := s.sessionRepository.DeleteByUserAndJTI(ctx, claims.Subject, claims.ID); err != nil {
		return apperror.Internal("ошибка удаления записи refresh токена", err)
	}

	return nil
}

// Refresh выполняет ротацию refresh токена.
// Старая запись удаляется ДО выдачи новой: отсутствие записи при удалении --
// единственный и однозначный признак повторного использования токена.
// В этом случае у пользователя снимаются все сессии целиком
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("нужен refresh токен")
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("невалидный refresh токен")
	}

	userUUID := claims.Subject
	jti := claims.ID

	deleted, err := s.sessionRepository.DeleteByUserAndJTI(ctx, userUUID, jti)
	if err != nil {
		return nil, apperror.Internal("ошибка удаления записи refresh токена", err)
	}

	if !deleted {
		// криптографически валидный токен без записи в хранилище: он уже был
		// использован либо отозван. Легитимную гонку отличить от кражи нельзя,
		// обе разрешаются отзывом всех сессий пользователя
		user, findErr := s.userRepository.FindByUUID(ctx, userUUID)
		if findErr != nil {
			return nil, apperror.Internal("ошибка поиска пользователя", findErr)
		}
		if user != nil {
			removed, revokeErr := s.sessionRepository.DeleteAllForUser(ctx, userUUID)
			if revokeErr != nil {
				return nil, apperror.Internal("не удалось отозвать сессии пользователя", revokeErr)
			}
			log.Printf("повторное использование refresh токена %s, отозвано сессий: %d", jti, removed)
		}
		return nil, apperror.Unauthorized("невалидный refresh токен, войдите заново")
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, apperror.Internal("ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("пользователь не найден")
	}

	return s.issueTokens(ctx, userUUID)
}

// GetSession возвращает профиль владельца access токена.
// Существование пользователя перепроверяется в хранилище на каждый вызов
func (s *AuthenticationService) GetSession(ctx context.Context, userUUID string) (*model.User, error) {
	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, apperror.Internal("ошибка поиска пользователя", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("пользователь не найден")
	}

	return user, nil
}

// issueTokens выдает пару токенов и сохраняет запись о refresh токене
func (s *AuthenticationService) issueTokens(ctx context.Context, userUUID string) (*model.TokensPair, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(userUUID)
	if err != nil {
		return nil, apperror.Internal("ошибка генерации access токена", err)
	}

	refreshToken, record, err := s.jwtService.GenerateRefreshToken(userUUID)
	if err != nil {
		return nil, apperror.Internal("ошибка генерации refresh токена", err)
	}

	if err := s.sessionRepository.Create(ctx, record); err != nil {
		return nil, apperror.Internal("ошибка сохранения записи refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

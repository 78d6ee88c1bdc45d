package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"campground-server/config"
	"campground-server/internal/apperror"
	"campground-server/internal/model"
	"campground-server/internal/model/requestresponse"
	"campground-server/internal/ports"
	"campground-server/internal/security"
	"campground-server/internal/util"
)

const refreshTokenCookie = "refreshToken"

const refreshTokenMaxAge = 7 * 24 * 60 * 60

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookieConfig *config.CookieConfig
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	cookieConfig *config.CookieConfig,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		cookieConfig,
	}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description Создает пользователя, открывает сессию и возвращает access токен. Refresh токен уходит в httpOnly куку
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignupRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AuthResponse "Успешная регистрация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/signup [post]
func (h *AuthenticationHandler) Signup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		util.HandleError(w, "email, password, firstName и lastName обязательны", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 8 {
		util.HandleError(w, "пароль должен содержать минимум 8 символов", http.StatusBadRequest)
		return
	}

	tokens, user, err := h.AuthenticationService.Signup(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.setRefreshCookie(w, tokens.RefreshToken)
	writeAuthResponse(w, tokens, user)
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Проверяет email и пароль, возвращает access токен. Refresh токен уходит в httpOnly куку
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AuthResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		util.HandleError(w, "email и password обязательны", http.StatusBadRequest)
		return
	}

	tokens, user, err := h.AuthenticationService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.setRefreshCookie(w, tokens.RefreshToken)
	writeAuthResponse(w, tokens, user)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет запись о refresh токене и чистит куку. Отсутствие или невалидность куки не считается ошибкой
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.LogoutResponse "Сессия завершена"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	refreshToken := h.refreshTokenFromCookie(r)
	h.clearRefreshCookie(w)

	if err := h.AuthenticationService.Logout(ctx, refreshToken); err != nil {
		h.renderError(w, err)
		return
	}

	resp := requestresponse.LogoutResponse{}
	resp.Response.Message = "выполнен выход из аккаунта"

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Refresh godoc
// @Summary Ротация refresh токена
// @Description Обменивает refresh токен из куки на новую пару токенов. Старый токен одноразовый: его повторное использование отзывает все сессии пользователя
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.AuthResponse "Новый access токен"
// @Failure 401 {object} requestresponse.ErrorResponse "Токен отсутствует, невалиден или уже использован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	refreshToken := h.refreshTokenFromCookie(r)

	tokens, err := h.AuthenticationService.Refresh(ctx, refreshToken)
	if err != nil {
		h.clearRefreshCookie(w)
		h.renderError(w, err)
		return
	}

	h.setRefreshCookie(w, tokens.RefreshToken)
	writeAuthResponse(w, tokens, nil)
}

// GetSession godoc
// @Summary Текущая сессия
// @Description Возвращает профиль владельца access токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SessionResponse "Профиль пользователя"
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован или пользователь удален"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Security ApiKeyAuth
// @Router /api/auth/session [get]
func (h *AuthenticationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	user, err := h.AuthenticationService.GetSession(ctx, claims.Subject)
	if err != nil {
		h.renderError(w, err)
		return
	}

	resp := requestresponse.SessionResponse{}
	resp.Response.User = requestresponse.UserData{
		UUID:     user.UUID,
		Email:    user.Email,
		FullName: user.FullName(),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *AuthenticationHandler) refreshTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *AuthenticationHandler) setRefreshCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   refreshTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieConfig.Secure,
	})
}

func (h *AuthenticationHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieConfig.Secure,
	})
}

// renderError переводит ошибку сервиса в HTTP ответ.
// Операционные ошибки уходят клиенту как есть, внутренние логируются
// полностью, а наружу отдается общее сообщение
func (h *AuthenticationHandler) renderError(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	if !appErr.Operational() {
		log.Println(err)
		util.HandleError(w, "внутренняя ошибка сервера", appErr.Code)
		return
	}
	util.HandleError(w, appErr.Message, appErr.Code)
}

func writeAuthResponse(w http.ResponseWriter, tokens *model.TokensPair, user *model.User) {
	resp := requestresponse.AuthResponse{}
	resp.Response.AccessToken = tokens.AccessToken
	if user != nil {
		resp.Response.User = &requestresponse.UserData{
			UUID:     user.UUID,
			Email:    user.Email,
			FullName: user.FullName(),
		}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

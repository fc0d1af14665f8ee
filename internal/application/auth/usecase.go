package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bikeshop-api/internal/application/dto"
	"github.com/jhoicas/bikeshop-api/internal/application/ports"
	"github.com/jhoicas/bikeshop-api/internal/domain"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
	"github.com/jhoicas/bikeshop-api/internal/domain/validation"
	"github.com/jhoicas/bikeshop-api/pkg/jwt"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

// TokenTTL vigencia del token emitido en el login.
const TokenTTL = time.Hour

// Mensajes de éxito.
const (
	MsgRegistered = "User registered successfully"
	MsgLoggedIn   = "Login successful"
)

const (
	defaultHashCost      = 10
	defaultNotifyTimeout = 5 * time.Second
	welcomeSubject       = "Welcome to our Shop!"

	// bcrypt solo usa los primeros 72 bytes; x/crypto rechaza entradas más largas.
	maxBcryptBytes = 72
)

// Config parámetros del caso de uso de cuentas.
type Config struct {
	JWTSecret     string
	JWTIssuer     string
	HashCost      int           // 0 = 10
	NotifyTimeout time.Duration // 0 = 5s
}

// AccountUseCase casos de uso de cuentas: registro y login.
// No guarda estado entre llamadas; es seguro para uso concurrente.
type AccountUseCase struct {
	users    repository.UserRepository
	notifier ports.Notifier
	cfg      Config
	log      *logger.Logger
}

// NewAccountUseCase construye el caso de uso de cuentas.
func NewAccountUseCase(users repository.UserRepository, notifier ports.Notifier, cfg Config, log *logger.Logger) *AccountUseCase {
	if cfg.HashCost == 0 {
		cfg.HashCost = defaultHashCost
	}
	if cfg.NotifyTimeout == 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AccountUseCase{users: users, notifier: notifier, cfg: cfg, log: log.Named("auth")}
}

// RegisterUser valida, verifica unicidad del email, hashea con bcrypt y persiste.
// El mensaje de bienvenida es best-effort: su fallo no afecta el resultado.
func (uc *AccountUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.MessageResponse, error) {
	if violations := validation.ValidateCredentials(in.Name, in.Email, in.Password); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Msg("buscar usuario por email")
		return nil, domain.NewPersistenceError(domain.MsgRegisterUser, err)
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(in.Password), uc.cfg.HashCost)
	if err != nil {
		return nil, domain.NewPersistenceError(domain.MsgRegisterUser, fmt.Errorf("hash password: %w", err))
	}
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		uc.log.Error().Err(err).Msg("persistir usuario")
		return nil, domain.NewPersistenceError(domain.MsgRegisterUser, err)
	}

	uc.sendWelcome(user)

	return &dto.MessageResponse{Message: MsgRegistered}, nil
}

// sendWelcome envía el mensaje de bienvenida con un timeout propio, independiente
// del contexto de la petición. El error se registra y se descarta.
func (uc *AccountUseCase) sendWelcome(user *entity.User) {
	if uc.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.NotifyTimeout)
	defer cancel()

	body := fmt.Sprintf("Hello %s,\n\nThank you for registering at our shop!", user.Name)
	if err := uc.notifier.Send(ctx, user.Email, welcomeSubject, body); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("mensaje de bienvenida no enviado")
		return
	}
	uc.log.Debug().Str("user_id", user.ID).Msg("mensaje de bienvenida enviado")
}

// LoginUser verifica email/password y genera un JWT con userId y email, válido por TokenTTL.
func (uc *AccountUseCase) LoginUser(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Msg("buscar usuario por email")
		return nil, domain.NewPersistenceError(domain.MsgLoginUser, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), bcryptInput(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Email, uc.cfg.JWTIssuer, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Message: MsgLoggedIn, Token: token}, nil
}

// bcryptInput recorta el password a los bytes que bcrypt considera.
func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxBcryptBytes {
		b = b[:maxBcryptBytes]
	}
	return b
}

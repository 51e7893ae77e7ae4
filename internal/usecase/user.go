package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

// ErrMaxRetriesExceeded is returned when no free namespace was generated in time.
var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating namespace")

type userRepository interface {
	Save(ctx context.Context, email, passwordHash, name, namespace string) (*entity.User, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.User, error)
	RetrieveByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateNamespace(ctx context.Context, id int64, namespace string) (*entity.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(encodedHash, password string) (bool, error)
}

type tokenIssuer interface {
	Issue(userID int64) (token string, expiresAt time.Time, err error)
}

// UserUseCase registers accounts, issues access tokens and allocates the
// namespace that qualifies every slug of a user.
type UserUseCase struct {
	userRepo     userRepository
	hasher       passwordHasher
	tokens       tokenIssuer
	newNamespace func() (string, error)
}

func NewUserUseCase(userRepo userRepository, hasher passwordHasher, tokens tokenIssuer) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		newNamespace: generateNamespace,
	}
}

// Register creates an account with a freshly allocated namespace.
func (uc *UserUseCase) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	const op = "usecase.UserUseCase.Register"

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	email = normalizeEmail(email)

	for i := 0; i < maxRetries; i++ {
		ns, err := uc.newNamespace()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		user, err := uc.userRepo.Save(ctx, email, hash, name, ns)
		if err != nil {
			if errors.Is(err, entity.ErrNamespaceExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to register user: %w", op, err)
		}

		return user, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// Login verifies the credentials and issues an access token. Accounts created
// before namespaces existed get one on their first login.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	const op = "usecase.UserUseCase.Login"

	user, err := uc.userRepo.RetrieveByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return "", time.Time{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
		}

		return "", time.Time{}, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	ok, err := uc.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: failed to verify password: %w", op, err)
	}
	if !ok {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
	}

	if _, err := uc.ensureNamespace(ctx, user); err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: failed to issue token: %w", op, err)
	}

	return token, expiresAt, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	const op = "usecase.UserUseCase.GetUser"

	user, err := uc.userRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}

// AssignNamespace stores a new namespace on a user exactly once. A user that
// already has one gets entity.ErrNamespaceAssigned.
func (uc *UserUseCase) AssignNamespace(ctx context.Context, userID int64) (*entity.User, error) {
	const op = "usecase.UserUseCase.AssignNamespace"

	for i := 0; i < maxRetries; i++ {
		ns, err := uc.newNamespace()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		user, err := uc.userRepo.UpdateNamespace(ctx, userID, ns)
		if err != nil {
			if errors.Is(err, entity.ErrNamespaceExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to assign namespace: %w", op, err)
		}

		return user, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// EnsureNamespace returns the user's namespace, assigning one if needed.
func (uc *UserUseCase) EnsureNamespace(ctx context.Context, userID int64) (string, error) {
	const op = "usecase.UserUseCase.EnsureNamespace"

	user, err := uc.userRepo.RetrieveByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	ns, err := uc.ensureNamespace(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return ns, nil
}

func (uc *UserUseCase) ensureNamespace(ctx context.Context, user *entity.User) (string, error) {
	if user.HasNamespace() {
		return *user.Namespace, nil
	}

	updated, err := uc.AssignNamespace(ctx, user.ID)
	if err == nil {
		return *updated.Namespace, nil
	}
	if !errors.Is(err, entity.ErrNamespaceAssigned) {
		return "", err
	}

	// A concurrent request won the assignment; use its namespace.
	current, err := uc.userRepo.RetrieveByID(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to reload user: %w", err)
	}
	if !current.HasNamespace() {
		return "", entity.ErrNamespaceAssigned
	}

	return *current.Namespace, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

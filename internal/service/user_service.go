package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/service/tokens"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

const JWTTokenExpire = 24 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	venueService   *VenueService
	hasher         PasswordHasher
	clock          servingwindow.Clock
	jwtTokenSecret []byte
}

func NewUserService(
	u uow.UOW,
	venueService *VenueService,
	hasher PasswordHasher,
	clock servingwindow.Clock,
	jwtTokenSecret []byte,
) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		venueService:   venueService,
		hasher:         hasher,
		clock:          clock,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register создает юзера в базе данных. После успешного создания генерирует jwt token.
// Возвращает 3 значения: созданный юзер, токен и ошибку. Дубликат email — domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	passwordHash, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var userErr, tokenErr error
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Email:        args.Email,
			PasswordHash: passwordHash,
			FirstName:    args.FirstName,
			LastName:     args.LastName,
			Role:         domain.RoleUser,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			return nil, "", txErr
		}
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

// Login сверяет пароль и выдает jwt token с ролью внутри. Неверная пара email/пароль —
// domain.ErrPasswordMissMatch (без уточнения, существует ли email). Действующий бан —
// domain.ErrUserBanned; истекший бан входу не мешает.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindByEmail(ctx, email)
	if userErr != nil {
		if errors.Is(userErr, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrPasswordMissMatch
		}
		return nil, "", fmt.Errorf("logging in: %w", userErr)
	}
	if !s.hasher.ComparePassword(password, user.PasswordHash) {
		return nil, "", domain.ErrPasswordMissMatch
	}
	if user.BannedUntil != nil && user.BannedUntil.After(s.clock.Now()) {
		return nil, "", domain.ErrUserBanned
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in: %w", tokenErr)
	}
	return user, token, nil
}

type BanUserArgs struct {
	UserID      int64
	BannedUntil time.Time
	Reason      string
}

// Ban выставляет юзеру срок бана. Активные токены не отзываются: бан перепроверяется на входе.
func (s *UserService) Ban(ctx context.Context, args BanUserArgs) error {
	err := s.userRepo.UpdateBan(ctx, repoargs.UpdateBan{
		UserID:      args.UserID,
		BannedUntil: &args.BannedUntil,
		Reason:      &args.Reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
		return fmt.Errorf("banning user %d: %w", args.UserID, err)
	}
	return nil
}

// Unban снимает бан досрочно.
func (s *UserService) Unban(ctx context.Context, userID int64) error {
	err := s.userRepo.UpdateBan(ctx, repoargs.UpdateBan{UserID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
		return fmt.Errorf("unbanning user %d: %w", userID, err)
	}
	return nil
}

// Delete удаляет аккаунт. Если юзер управляет заведением, в той же транзакции заведение
// ставится на паузу (с отменой и рефандом открытых заказов) и отвязывается от менеджера —
// заказы не остаются висеть за удаленным оператором.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	txErr := s.uow.DoWithRetry(ctx, func(c context.Context, tx uow.TX) error {
		if detachErr := s.venueService.DetachManager(c, tx, userID); detachErr != nil {
			return detachErr
		}
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return userRepo.Delete(c, userID) //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			return txErr
		}
		return fmt.Errorf("deleting user %d: %w", userID, txErr)
	}
	return nil
}

// Get возвращает юзера по id.
func (s *UserService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/service/mocks"
	"github.com/clicks-pr/clicks-core/internal/service/tokens"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
	uowmocks "github.com/clicks-pr/clicks-core/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var userTestNow = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockUserRepo  *mocks.MockUserRepository
	mockVenueRepo *mocks.MockVenueRepository
	mockHasher    *mocks.MockPasswordHasher
	userService   *UserService
	jwtSecret     []byte
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockVenueRepo = mocks.NewMockVenueRepository(s.mockCtrl)
	s.mockHasher = mocks.NewMockPasswordHasher(s.mockCtrl)
	s.jwtSecret = []byte("test-secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.VenueRepoName)).
		Return(s.mockVenueRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.VenueRepoName)).Return(s.mockVenueRepo, nil).AnyTimes()

	clock := servingwindow.FixedClock{T: userTestNow}
	venueService, venueServErr := NewVenueService(s.mockUOW, clock)
	s.Require().NoError(venueServErr)

	userService, servErr := NewUserService(s.mockUOW, venueService, s.mockHasher, clock, s.jwtSecret)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) expectTx() {
	run := func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
		return fn(ctx, s.mockTX)
	}
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	s.mockUOW.EXPECT().DoWithRetry(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
}

func (s *UserServiceTestSuite) TestRegister() {
	created := &domain.User{ID: 7, Email: "jose@example.com", Role: domain.RoleUser}

	s.expectTx()
	s.mockHasher.EXPECT().HashPassword("secret123").Return("$2a$10$hash", nil)
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{
			Email:        "jose@example.com",
			PasswordHash: "$2a$10$hash",
			FirstName:    "Jose",
			LastName:     "Rivera",
			Role:         domain.RoleUser,
		}).Return(created, nil)

	user, token, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Email:     "jose@example.com",
		Password:  "secret123",
		FirstName: "Jose",
		LastName:  "Rivera",
	})

	s.Require().NoError(err)
	s.Equal(created, user)

	// токен валиден и несет id с ролью
	parsed, parseErr := tokens.ValidateUserJWT(token, s.jwtSecret)
	s.Require().NoError(parseErr)
	claims := parsed.Claims.(*tokens.UserClaims)
	s.Equal(int64(7), claims.ID)
	s.Equal(domain.RoleUser, claims.Role)
}

func (s *UserServiceTestSuite) TestRegisterDuplicateEmail() {
	s.expectTx()
	s.mockHasher.EXPECT().HashPassword(gomock.Any()).Return("$2a$10$hash", nil)
	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Email:    "jose@example.com",
		Password: "secret123",
	})

	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *UserServiceTestSuite) TestLogin() {
	user := &domain.User{ID: 7, Email: "jose@example.com", PasswordHash: "$2a$10$hash", Role: domain.RoleVenue}

	s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	s.mockHasher.EXPECT().ComparePassword("secret123", user.PasswordHash).Return(true)

	got, token, err := s.userService.Login(s.T().Context(), user.Email, "secret123")

	s.Require().NoError(err)
	s.Equal(user, got)
	s.NotEmpty(token)
}

func (s *UserServiceTestSuite) TestLoginErrors() {
	hash := "$2a$10$hash"
	activeBan := userTestNow.Add(24 * time.Hour)
	expiredBan := userTestNow.Add(-24 * time.Hour)

	cases := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "unknown email",
			setup: func() {
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "jose@example.com").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrPasswordMissMatch,
		},
		{
			name: "wrong password",
			setup: func() {
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "jose@example.com").
					Return(&domain.User{ID: 7, PasswordHash: hash}, nil)
				s.mockHasher.EXPECT().ComparePassword(gomock.Any(), hash).Return(false)
			},
			wantErr: domain.ErrPasswordMissMatch,
		},
		{
			name: "active ban",
			setup: func() {
				s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "jose@example.com").
					Return(&domain.User{ID: 7, PasswordHash: hash, BannedUntil: &activeBan}, nil)
				s.mockHasher.EXPECT().ComparePassword(gomock.Any(), hash).Return(true)
			},
			wantErr: domain.ErrUserBanned,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			t.setup()

			_, _, err := s.userService.Login(s.T().Context(), "jose@example.com", "whatever")

			s.Require().ErrorIs(err, t.wantErr)
		})
	}

	// истекший бан входу не мешает
	s.Run("expired ban", func() {
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "jose@example.com").
			Return(&domain.User{ID: 7, PasswordHash: hash, BannedUntil: &expiredBan}, nil)
		s.mockHasher.EXPECT().ComparePassword(gomock.Any(), hash).Return(true)

		_, _, err := s.userService.Login(s.T().Context(), "jose@example.com", "whatever")

		s.Require().NoError(err)
	})
}

func (s *UserServiceTestSuite) TestBanAndUnban() {
	until := userTestNow.Add(72 * time.Hour)
	reason := "fraud"

	s.mockUserRepo.EXPECT().
		UpdateBan(gomock.Any(), repoargs.UpdateBan{UserID: 7, BannedUntil: &until, Reason: &reason}).
		Return(nil)
	s.mockUserRepo.EXPECT().
		UpdateBan(gomock.Any(), repoargs.UpdateBan{UserID: 7}).
		Return(nil)

	s.Require().NoError(s.userService.Ban(s.T().Context(), BanUserArgs{
		UserID:      7,
		BannedUntil: until,
		Reason:      reason,
	}))
	s.Require().NoError(s.userService.Unban(s.T().Context(), 7))
}

// Удаление менеджера заведения: сначала пауза с отменой заказов, затем отвязка, затем удаление.
func (s *UserServiceTestSuite) TestDeleteVenueManager() {
	var managerID int64 = 40
	venue := &domain.Venue{ID: 3, Name: "La Placita", IsEnabled: true}

	s.expectTx()
	s.mockVenueRepo.EXPECT().GetByManagerID(gomock.Any(), managerID).Return(venue, nil)

	mockOrderRepo := mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).Return(mockOrderRepo, nil)
	mockOrderRepo.EXPECT().ListActiveByVenueForUpdate(gomock.Any(), venue.ID).Return(nil, nil)

	gomock.InOrder(
		s.mockVenueRepo.EXPECT().SetEnabled(gomock.Any(), venue.ID, false, gomock.Any()).Return(nil),
		s.mockVenueRepo.EXPECT().DetachManager(gomock.Any(), venue.ID).Return(nil),
		s.mockUserRepo.EXPECT().Delete(gomock.Any(), managerID).Return(nil),
	)

	s.Require().NoError(s.userService.Delete(s.T().Context(), managerID))
}

func (s *UserServiceTestSuite) TestDeleteRegularUser() {
	s.expectTx()
	s.mockVenueRepo.EXPECT().GetByManagerID(gomock.Any(), int64(7)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	s.Require().NoError(s.userService.Delete(s.T().Context(), 7))
}

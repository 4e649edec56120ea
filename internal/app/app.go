package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/clicks-pr/clicks-core/internal/config"
	"github.com/clicks-pr/clicks-core/internal/logger"
	"github.com/clicks-pr/clicks-core/internal/repository/pgrepo"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/internal/service"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/internal/transport/api"
	"github.com/clicks-pr/clicks-core/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.WithComponent(a.Logger, "app")

	log.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	location, locErr := a.Config.Location()
	if locErr != nil {
		return fmt.Errorf("app run: %s", locErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Clock:                servingwindow.SystemClock{},
		Location:             location,
		DailySendLimitCents:  a.Config.DailySendLimitCents,
		JWTSecret:            []byte(a.Config.JWTSecret),
		BillingWebhookSecret: []byte(a.Config.BillingWebhookSecret),
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		CheckInService:      services.CheckInService,
		OrderService:        services.OrderService,
		WalletService:       services.WalletService,
		VenueService:        services.VenueService,
		MenuService:         services.MenuService,
		MunicipalityService: services.MunicipalityService,
		BillingService:      services.BillingService,
		JWTSecretKey:        []byte(a.Config.JWTSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		log.Info("Shutdown signal received")
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:         func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.MunicipalityRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewMunicipalityRepository(dbtx) },
		repoargs.VenueRepoName:        func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewVenueRepository(dbtx) },
		repoargs.MenuItemRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewMenuItemRepository(dbtx) },
		repoargs.CheckInRepoName:      func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCheckInRepository(dbtx) },
		repoargs.OrderRepoName:        func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOrderRepository(dbtx) },
		repoargs.WalletRepoName:       func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWalletRepository(dbtx) },
		repoargs.SubscriptionRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewSubscriptionRepository(dbtx) },
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

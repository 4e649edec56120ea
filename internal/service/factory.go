package service

import (
	"fmt"
	"time"

	"github.com/clicks-pr/clicks-core/internal/service/psswd"
	"github.com/clicks-pr/clicks-core/internal/servingwindow"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type AppServices struct {
	UserService         *UserService
	CheckInService      *CheckInService
	OrderService        *OrderService
	WalletService       *WalletService
	VenueService        *VenueService
	MenuService         *MenuService
	MunicipalityService *MunicipalityService
	BillingService      *BillingService
}

type FactoryArgs struct {
	Clock                servingwindow.Clock
	Location             *time.Location
	DailySendLimitCents  int64
	JWTSecret            []byte
	BillingWebhookSecret []byte
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	venueService, venueServiceErr := NewVenueService(unitOfWork, args.Clock)
	if venueServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", venueServiceErr.Error())
	}

	userService, userServiceErr := NewUserService(
		unitOfWork, venueService, psswd.BcryptHasher{}, args.Clock, args.JWTSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(
		unitOfWork, args.Clock, args.Location, args.DailySendLimitCents)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(
		unitOfWork, args.Clock, args.Location, args.DailySendLimitCents)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	muniService, muniServiceErr := NewMunicipalityService(unitOfWork)
	if muniServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", muniServiceErr.Error())
	}

	return &AppServices{
		UserService:         userService,
		CheckInService:      NewCheckInService(unitOfWork, args.Clock),
		OrderService:        orderService,
		WalletService:       walletService,
		VenueService:        venueService,
		MenuService:         NewMenuService(unitOfWork),
		MunicipalityService: muniService,
		BillingService:      NewBillingService(unitOfWork, args.Clock, args.BillingWebhookSecret),
	}, nil
}

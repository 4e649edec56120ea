package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	RegisterRoute      = "/user/register"
	LoginRoute         = "/user/login"
	CheckInRoute       = "/checkin"
	OrdersRoute        = "/orders"
	WalletRoute        = "/wallet"
	WalletTopUpRoute   = "/wallet/topup"
	WalletTransfer     = "/wallet/transfer"
	VenueMenuRoute     = "/venues/:id/menu"
	VenueOrdersRoute   = "/v/orders"
	VenueOrderRoute    = "/v/orders/:id"
	VenuePauseRoute    = "/v/pause"
	ManagerMenuRoute   = "/v/menu"
	ManagerMenuItem    = "/v/menu/:id"
	AdminMunisRoute    = "/admin/municipalities"
	AdminMuniRoute     = "/admin/municipalities/:id"
	AdminUserRoute     = "/admin/users/:id"
	BillingWebhookPath = "/webhooks/billing"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	CheckInService      CheckInServicer
	OrderService        OrderServicer
	WalletService       WalletServicer
	VenueService        VenueServicer
	MenuService         MenuServicer
	MunicipalityService MunicipalityServicer
	BillingService      BillingServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	checkInHandler := NewCheckInHandler(args.CheckInService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	walletHandler := NewWalletHandler(args.WalletService)
	venueHandler := NewVenueHandler(args.OrderService, args.VenueService, args.MenuService)
	adminHandler := NewAdminHandler(args.UserService, args.MunicipalityService)
	webhookHandler := NewWebhookHandler(args.BillingService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// вебхук авторизуется подписью, а не jwt
	api.POST(BillingWebhookPath, webhookHandler.Billing)

	// публичное меню заведения
	api.GET(VenueMenuRoute, venueHandler.Menu)

	// роуты гостя
	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.POST(CheckInRoute, checkInHandler.Create)
	user.GET(CheckInRoute, checkInHandler.Show)
	user.DELETE(CheckInRoute, checkInHandler.Delete)
	user.POST(OrdersRoute, ordersHandler.Create)
	user.GET(OrdersRoute, ordersHandler.Index)
	user.GET(WalletRoute, walletHandler.Index)
	user.POST(WalletTopUpRoute, walletHandler.TopUp)
	user.POST(WalletTransfer, walletHandler.Transfer)

	// роуты оператора заведения
	venue := api.Group("", middlewares.AuthRequired(args.JWTSecretKey, domain.RoleVenue))
	venue.GET(VenueOrdersRoute, venueHandler.Orders)
	venue.PATCH(VenueOrderRoute, venueHandler.UpdateOrderStatus)
	venue.POST(VenuePauseRoute, venueHandler.TogglePause)
	venue.GET(ManagerMenuRoute, venueHandler.OwnMenu)
	venue.POST(ManagerMenuRoute, venueHandler.CreateMenuItem)
	venue.PATCH(ManagerMenuItem, venueHandler.UpdateMenuItem)
	venue.DELETE(ManagerMenuItem, venueHandler.DeleteMenuItem)

	// административные роуты
	admin := api.Group("", middlewares.AuthRequired(args.JWTSecretKey, domain.RoleAdmin))
	admin.GET(AdminMunisRoute, adminHandler.Municipalities)
	admin.PATCH(AdminMuniRoute, adminHandler.UpdateMunicipalityWindow)
	admin.PATCH(AdminUserRoute, adminHandler.UpdateUserBan)
	admin.DELETE(AdminUserRoute, adminHandler.DeleteUser)

	return r, nil
}

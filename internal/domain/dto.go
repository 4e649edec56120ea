package domain

type OrderStatusType string

const (
	OrderStatusPlaced    OrderStatusType = "PLACED"
	OrderStatusAccepted  OrderStatusType = "ACCEPTED"
	OrderStatusPreparing OrderStatusType = "PREPARING"
	OrderStatusReady     OrderStatusType = "READY"
	OrderStatusCompleted OrderStatusType = "COMPLETED"
	OrderStatusPickedUp  OrderStatusType = "PICKED_UP"
	OrderStatusCancelled OrderStatusType = "CANCELLED"
)

// orderTransitions — единственное место, где описаны допустимые переходы статусов заказа.
// Никаких разрозненных проверок по хендлерам.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusPlaced:    {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusPickedUp},
}

// ActiveOrderStatuses — нетерминальные статусы. Именно такие заказы отменяются при паузе заведения.
var ActiveOrderStatuses = []OrderStatusType{
	OrderStatusPlaced,
	OrderStatusAccepted,
	OrderStatusPreparing,
	OrderStatusReady,
}

// CanTransitionTo сообщает, допустим ли переход из статуса s в to для оператора заведения.
func (s OrderStatusType) CanTransitionTo(to OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanCancelAdministratively — отмена административным потоком (пауза заведения, отвязка менеджера).
// В отличие от операторской таблицы, позволяет отменить и заказ в статусе READY.
func (s OrderStatusType) CanCancelAdministratively() bool {
	return !s.IsTerminal()
}

// IsTerminal возвращает true для статусов, из которых нет переходов.
func (s OrderStatusType) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusAccepted, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusPickedUp, OrderStatusCancelled:
		return true
	}
	return false
}

type WalletTxnType string

const (
	WalletTxnTopup       WalletTxnType = "TOPUP"
	WalletTxnTransferOut WalletTxnType = "TRANSFER_OUT"
	WalletTxnTransferIn  WalletTxnType = "TRANSFER_IN"
	WalletTxnRefund      WalletTxnType = "REFUND"
	WalletTxnAdjustment  WalletTxnType = "ADJUSTMENT"
)

// IsCredit возвращает true для типов, увеличивающих баланс кошелька.
func (t WalletTxnType) IsCredit() bool {
	switch t {
	case WalletTxnTopup, WalletTxnTransferIn, WalletTxnRefund, WalletTxnAdjustment:
		return true
	default:
		return false
	}
}

type UserRoleType string

const (
	RoleUser  UserRoleType = "USER"
	RoleVenue UserRoleType = "VENUE"
	RoleAdmin UserRoleType = "ADMIN"
)

type VenuePlanType string

const (
	PlanFree VenuePlanType = "FREE"
	PlanPro  VenuePlanType = "PRO"
)

type SubscriptionPaymentStatusType string

const (
	SubscriptionPaymentPaid   SubscriptionPaymentStatusType = "PAID"
	SubscriptionPaymentFailed SubscriptionPaymentStatusType = "FAILED"
)

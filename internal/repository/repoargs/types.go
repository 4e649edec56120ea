package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	MunicipalityRepoName RepositoryName = "municipality"
	VenueRepoName        RepositoryName = "venue"
	MenuItemRepoName     RepositoryName = "menu_item"
	CheckInRepoName      RepositoryName = "check_in"
	OrderRepoName        RepositoryName = "order"
	WalletRepoName       RepositoryName = "wallet"
	SubscriptionRepoName RepositoryName = "subscription_payment"
)

package common

// Storage keys shared by the components that persist state.
const (
	UsersKey       = "techmarket_users"
	CurrentUserKey = "techmarket_currentUser"

	CatalogSearchKey  = "techmarket_catalog_search"
	CatalogFiltersKey = "techmarket_catalog_filters"
)

// Demo account seeded on first start when enabled in config.
const (
	DemoEmail    = "test@test.com"
	DemoPassword = "test12345"
	DemoName     = "Test User"
)

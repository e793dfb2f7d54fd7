// Package cli is the interactive terminal front end of the TechMarket
// storefront.
//
// App is the single application state: it owns the session manager, the
// catalog, the cart, newsletter subscriptions and the notifier. Terminal
// commands are parsed into typed events (see events.go) and App.Handle runs
// the matching handler to completion before the next command is read.
//
// Commands
//
//	help                     show available commands
//	register | login         account management
//	logout | whoami
//	list                     show visible products
//	search <text>            filter by text (empty to reset)
//	filter key=value ...     category, brand, ram, storage (comma lists), min, max
//	clear                    reset filters
//	facets                   show available filter values
//	cart                     show cart and totals
//	add <id> | dec <id> | remove <id>
//	promo <code>
//	subscribe | contact
//	exit | quit
package cli

package cli

import (
	"github.com/dmitrijs2005/techmarket/internal/catalog"
	"github.com/dmitrijs2005/techmarket/internal/session"
)

// Event is a user action produced by the terminal front end.
type Event interface {
	eventName() string
}

type LoginSubmitted struct {
	Email    string
	Password []byte
}

type RegisterSubmitted struct {
	Form session.Registration
}

type LogoutRequested struct{}

type SearchChanged struct {
	Query string
}

// FilterChanged replaces the whole criteria; it is rebuilt from the form on
// every submission.
type FilterChanged struct {
	Criteria catalog.Criteria
}

type FiltersCleared struct{}

type CartOp int

const (
	CartAdd CartOp = iota
	CartDecrement
	CartRemove
	CartClear
)

type CartChanged struct {
	Op        CartOp
	ProductID string
}

type PromoSubmitted struct {
	Code string
}

type SubscribeSubmitted struct {
	Name  string
	Email string
}

type ContactSubmitted struct {
	Name    string
	Email   string
	Message string
}

func (LoginSubmitted) eventName() string     { return "login" }
func (RegisterSubmitted) eventName() string  { return "register" }
func (LogoutRequested) eventName() string    { return "logout" }
func (SearchChanged) eventName() string      { return "search" }
func (FilterChanged) eventName() string      { return "filter" }
func (FiltersCleared) eventName() string     { return "filters_cleared" }
func (CartChanged) eventName() string        { return "cart" }
func (PromoSubmitted) eventName() string     { return "promo" }
func (SubscribeSubmitted) eventName() string { return "subscribe" }
func (ContactSubmitted) eventName() string   { return "contact" }

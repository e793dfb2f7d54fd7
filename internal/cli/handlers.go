package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/techmarket/internal/cart"
	"github.com/dmitrijs2005/techmarket/internal/common"
	"github.com/dmitrijs2005/techmarket/internal/notify"
	"github.com/dmitrijs2005/techmarket/internal/session"
	"github.com/dmitrijs2005/techmarket/internal/validation"
)

// Handle runs the handler for ev. The returned error is informational: the
// user has already been notified.
func (a *App) Handle(ctx context.Context, ev Event) error {
	a.logger.Debug(ctx, "event", "name", ev.eventName())

	switch e := ev.(type) {
	case LoginSubmitted:
		return a.handleLogin(ctx, e)
	case RegisterSubmitted:
		return a.handleRegister(ctx, e)
	case LogoutRequested:
		return a.handleLogout(ctx)
	case SearchChanged:
		a.printResult(a.catalog.SetSearch(ctx, e.Query))
		return nil
	case FilterChanged:
		res := a.catalog.SetCriteria(ctx, e.Criteria)
		a.notifier.Notify(notify.Success, "Filters applied successfully!")
		a.printResult(res)
		return nil
	case FiltersCleared:
		res := a.catalog.ClearFilters(ctx)
		a.notifier.Notify(notify.Info, "All filters cleared!")
		a.printResult(res)
		return nil
	case CartChanged:
		return a.handleCart(e)
	case PromoSubmitted:
		return a.handlePromo(e)
	case SubscribeSubmitted:
		return a.handleSubscribe(ctx, e)
	case ContactSubmitted:
		return a.handleContact(ctx, e)
	default:
		return fmt.Errorf("unhandled event %T", ev)
	}
}

func (a *App) handleLogin(ctx context.Context, e LoginSubmitted) error {
	defer common.WipeByteArray(e.Password)

	rec, err := a.session.Login(ctx, e.Email, e.Password)
	if err != nil {
		a.lastEmail = strings.TrimSpace(e.Email)
		a.notifier.Notify(notify.Error, "Invalid email or password.")
		return err
	}
	a.lastEmail = ""
	a.notifier.Notify(notify.Success, fmt.Sprintf("Welcome back, %s!", rec.FirstName()))
	return nil
}

func (a *App) handleRegister(ctx context.Context, e RegisterSubmitted) error {
	defer common.WipeByteArray(e.Form.Password)

	rec, err := a.session.Register(ctx, e.Form)
	if err == nil {
		a.lastForm = session.Registration{}
	} else {
		a.lastForm = e.Form
		a.lastForm.Password = nil
	}

	var verrs validation.Errors
	switch {
	case err == nil:
		a.notifier.Notify(notify.Success, fmt.Sprintf("Account created. Welcome, %s!", rec.FirstName()))
	case errors.As(err, &verrs):
		a.printFieldErrors(verrs)
		a.notifier.Notify(notify.Error, "Please fix the errors above and try again.")
	case errors.Is(err, common.ErrAlreadyRegistered):
		a.notifier.Notify(notify.Error, "An account with this email already exists.")
	default:
		a.logger.Error(ctx, "registration failed", "error", err)
		a.notifier.Notify(notify.Error, "Could not create your account. Please try again.")
	}
	return err
}

func (a *App) handleLogout(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		a.notifier.Notify(notify.Info, "You are not logged in.")
		return nil
	}
	a.session.Logout(ctx)
	a.notifier.Notify(notify.Info, "You have been logged out.")
	return nil
}

func (a *App) handleCart(e CartChanged) error {
	if e.Op == CartClear {
		a.cart.Clear()
		a.notifier.Notify(notify.Success, "Cart cleared successfully")
		return nil
	}

	p, err := a.catalog.Find(e.ProductID)
	if err != nil {
		a.notifier.Notify(notify.Error, fmt.Sprintf("No product with id %q.", e.ProductID))
		return err
	}

	switch e.Op {
	case CartAdd:
		if _, err := a.cart.Add(p); err != nil {
			a.notifier.Notify(notify.Warning, fmt.Sprintf("Maximum quantity is %d.", cart.MaxQuantity))
			return err
		}
		a.notifier.Notify(notify.Success, p.Title+" added to cart!")
	case CartDecrement:
		qty, err := a.cart.Decrement(p.ID)
		if err != nil {
			a.notifier.Notify(notify.Error, p.Title+" is not in your cart.")
			return err
		}
		if qty == 0 {
			a.notifier.Notify(notify.Info, p.Title+" removed from cart")
		} else {
			a.notifier.Notify(notify.Success, "Quantity updated")
		}
	case CartRemove:
		if _, err := a.cart.Remove(p.ID); err != nil {
			a.notifier.Notify(notify.Error, p.Title+" is not in your cart.")
			return err
		}
		a.notifier.Notify(notify.Info, p.Title+" removed from cart")
	}
	return nil
}

func (a *App) handlePromo(e PromoSubmitted) error {
	rate, err := a.cart.ApplyPromo(e.Code)
	if err != nil {
		a.notifier.Notify(notify.Error, "Invalid promo code")
		return err
	}
	a.notifier.Notify(notify.Success, fmt.Sprintf("Promo code applied! %.0f%% discount", rate*100))
	return nil
}

func (a *App) handleSubscribe(ctx context.Context, e SubscribeSubmitted) error {
	if err := validation.Subscription(e.Name, e.Email); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			a.printFieldErrors(verrs)
		}
		a.notifier.Notify(notify.Error, "Please fix the errors above and try again.")
		return err
	}

	email := strings.ToLower(strings.TrimSpace(e.Email))
	for _, s := range a.subscribers {
		if s.Email == email {
			a.notifier.Notify(notify.Info, "You are already subscribed.")
			return nil
		}
	}
	a.subscribers = append(a.subscribers, Subscriber{Name: strings.TrimSpace(e.Name), Email: email})
	a.logger.Info(ctx, "newsletter subscription", "email", email)
	a.notifier.Notify(notify.Success, "Subscribed! Thanks, you'll receive updates.")
	return nil
}

func (a *App) handleContact(ctx context.Context, e ContactSubmitted) error {
	if err := validation.Contact(e.Name, e.Email, e.Message); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			a.printFieldErrors(verrs)
		}
		a.notifier.Notify(notify.Error, "Please fix the errors above and try again.")
		return err
	}
	a.logger.Info(ctx, "contact message received", "email", strings.TrimSpace(e.Email))
	a.notifier.Notify(notify.Success, "Success! Your message has been sent successfully.")
	return nil
}

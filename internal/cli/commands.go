package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/techmarket/internal/notify"
)

// Login prompts for credentials. After a failed attempt the previous email
// is offered as the default.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email"
	if a.lastEmail != "" {
		prompt = fmt.Sprintf("Enter email [%s]", a.lastEmail)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.lastEmail
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	return a.Handle(ctx, LoginSubmitted{Email: email, Password: password})
}

// Register prompts for the registration form. Fields kept from a rejected
// attempt are offered as defaults; the password is always asked again.
func (a *App) Register(ctx context.Context) error {
	form := a.lastForm
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &form.FirstName},
		{"Last name", &form.LastName},
		{"Email", &form.Email},
		{"Phone (optional)", &form.Phone},
	}
	for _, f := range fields {
		prompt := f.prompt
		if *f.dst != "" {
			prompt = fmt.Sprintf("%s [%s]", f.prompt, *f.dst)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	password, err := getPassword(a.reader, "Choose a password", a.out)
	if err != nil {
		return err
	}
	form.Password = password
	return a.Handle(ctx, RegisterSubmitted{Form: form})
}

func (a *App) Logout(ctx context.Context) error {
	return a.Handle(ctx, LogoutRequested{})
}

func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.session.CurrentUser(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", u.Phone)
	}
	fmt.Fprintf(a.out, "Member since %s\n", u.CreatedAt.Format("2006-01-02"))
	return nil
}

func (a *App) List(ctx context.Context) error {
	if q := a.catalog.SearchText(); q != "" {
		fmt.Fprintf(a.out, "Search: %q\n", q)
	}
	a.printResult(a.catalog.View())
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	return a.Handle(ctx, SearchChanged{Query: strings.Join(args, " ")})
}

func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: filter category=laptop,phone brand=apple ram=16 storage=512 min=100 max=1500")
		return nil
	}
	c, err := parseFilterArgs(args)
	if err != nil {
		a.notifier.Notify(notify.Error, err.Error())
		return err
	}
	return a.Handle(ctx, FilterChanged{Criteria: c})
}

func (a *App) Clear(ctx context.Context) error {
	return a.Handle(ctx, FiltersCleared{})
}

func (a *App) Facets(ctx context.Context) error {
	a.printFacets(a.catalog.Facets())
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	a.printCart()
	return nil
}

func (a *App) cartCommand(ctx context.Context, op CartOp, usage string, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return nil
	}
	return a.Handle(ctx, CartChanged{Op: op, ProductID: args[0]})
}

func (a *App) Add(ctx context.Context, args []string) error {
	return a.cartCommand(ctx, CartAdd, "add <product-id>", args)
}

func (a *App) Decrement(ctx context.Context, args []string) error {
	return a.cartCommand(ctx, CartDecrement, "dec <product-id>", args)
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "all" {
		return a.Handle(ctx, CartChanged{Op: CartClear})
	}
	return a.cartCommand(ctx, CartRemove, "remove <product-id> | remove all", args)
}

func (a *App) Promo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: promo <code>")
		return nil
	}
	return a.Handle(ctx, PromoSubmitted{Code: args[0]})
}

func (a *App) Subscribe(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	return a.Handle(ctx, SubscribeSubmitted{Name: name, Email: email})
}

func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	return a.Handle(ctx, ContactSubmitted{Name: name, Email: email, Message: message})
}

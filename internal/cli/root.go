package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus(ctx context.Context) string {
	who := "guest"
	if u, ok := a.session.CurrentUser(ctx); ok {
		who = u.FirstName()
	}
	if n := a.cart.Summary().Items; n > 0 {
		return fmt.Sprintf("(%s, cart: %d)", who, n)
	}
	return fmt.Sprintf("(%s)", who)
}

// Root prints the greeting and runs the command loop on the app's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to TechMarket! (type 'help' for commands)")
	if u, ok := a.session.CurrentUser(ctx); ok {
		fmt.Fprintf(a.out, "Logged in as %s <%s>\n", u.Name, u.Email)
	}
	fmt.Fprintln(a.out, a.catalog.View().Text())

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

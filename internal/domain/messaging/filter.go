package messaging

import (
	"strings"

	"github.com/agency/backend/internal/domain/client"
	"github.com/google/uuid"
)

// RecipientPredicate decides whether a client belongs to a bulk send
type RecipientPredicate func(c *client.Client) bool

// SelectedSet keeps only clients whose id is in the given set
func SelectedSet(ids []uuid.UUID) RecipientPredicate {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(c *client.Client) bool {
		_, ok := set[c.ID]
		return ok
	}
}

// PaymentDayIs keeps clients whose payment is due on the given day
func PaymentDayIs(day int) RecipientPredicate {
	return func(c *client.Client) bool {
		return c.PaymentDay == day
	}
}

// NameContains keeps clients whose name contains the query, case-insensitive
func NameContains(query string) RecipientPredicate {
	q := strings.ToLower(query)
	return func(c *client.Client) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	}
}

// HasUnpaidPackage keeps clients with at least one unpaid package
func HasUnpaidPackage() RecipientPredicate {
	return func(c *client.Client) bool {
		return c.HasUnpaidPackage()
	}
}

// FilterRecipients applies every predicate with AND composition. With no
// predicates every client passes.
func FilterRecipients(clients []client.Client, predicates ...RecipientPredicate) []client.Client {
	out := make([]client.Client, 0, len(clients))
	for i := range clients {
		keep := true
		for _, p := range predicates {
			if !p(&clients[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, clients[i])
		}
	}
	return out
}

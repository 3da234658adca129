package configurator

import (
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/order"
)

type hydration struct {
	draft   order.Draft
	url     URLState
	notices []Notice
}

// hydrate resolves the initial selection once the catalog is available.
// Precedence: URL serviceId beats the stored draft, the stored draft
// beats the catalog default.
func hydrate(cat catalog.Repository, u URLState, stored *order.Draft, activeLocale string) hydration {
	out := hydration{url: u}
	if out.url.Locale == "" {
		out.url = out.url.WithLocale(activeLocale)
	}

	if u.HasServiceID {
		if svc, ok := cat.ServiceByID(u.ServiceID); ok {
			out.draft = order.Draft{
				CategoryID: svc.CategoryID,
				ServiceID:  svc.ID,
			}
			if stored != nil {
				out.draft.Link = stored.Link
				out.draft.Quantity = stored.Quantity
			}
			return out
		}
		out.notices = append(out.notices, Notice{
			Kind:    NoticeInvalidService,
			Message: "this service is not available",
		})
		out.url = out.url.WithoutServiceID()
	}

	if stored != nil && stored.ServiceID != 0 {
		if svc, ok := cat.ServiceByID(stored.ServiceID); ok && svc.CategoryID == stored.CategoryID {
			out.draft = *stored
			return out
		}
	}

	categories := cat.Categories()
	if len(categories) == 0 {
		return out
	}
	out.draft = order.Draft{CategoryID: categories[0].ID}
	if services := cat.ServicesFor(categories[0].ID); len(services) > 0 {
		out.draft.ServiceID = services[0].ID
	}
	return out
}

// repairSelection enforces the category/service invariant after a
// category change: a service outside the new category is cleared together
// with the quantity, a lone remaining candidate is adopted, and the URL
// follows the surviving selection.
func repairSelection(cat catalog.Repository, draft order.Draft, u URLState) (order.Draft, URLState) {
	filtered := cat.ServicesFor(draft.CategoryID)
	if len(filtered) == 0 {
		draft.ServiceID = 0
		draft.Quantity = 0
		return draft, u.WithoutServiceID()
	}

	if draft.ServiceID != 0 {
		for _, svc := range filtered {
			if svc.ID == draft.ServiceID {
				return draft, u
			}
		}
		draft.ServiceID = 0
		draft.Quantity = 0
		u = u.WithoutServiceID()
	}

	if len(filtered) == 1 {
		draft.ServiceID = filtered[0].ID
		u = u.WithServiceID(filtered[0].ID)
	}
	return draft, u
}

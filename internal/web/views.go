package web

import (
	"fmt"
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/configurator"

	"github.com/gosimple/slug"
)

type noticeView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type draftView struct {
	CategoryID int64  `json:"category_id"`
	ServiceID  int64  `json:"service_id"`
	Link       string `json:"link"`
	Quantity   int    `json:"quantity"`
}

type pricingView struct {
	Total   string `json:"total"`
	ETA     string `json:"eta"`
	Urgency string `json:"urgency"`
}

type errorsView struct {
	Quantity string `json:"quantity,omitempty"`
	Link     string `json:"link,omitempty"`
}

type stateView struct {
	Phase         string       `json:"phase"`
	Draft         draftView    `json:"draft"`
	QuantityInput string       `json:"quantity_input"`
	Pricing       pricingView  `json:"pricing"`
	Errors        errorsView   `json:"errors"`
	URL           string       `json:"url"`
	Notices       []noticeView `json:"notices"`
}

func newStateView(state configurator.State, notices []configurator.Notice) stateView {
	view := stateView{
		Phase: state.Phase.String(),
		Draft: draftView{
			CategoryID: state.Draft.CategoryID,
			ServiceID:  state.Draft.ServiceID,
			Link:       state.Draft.Link,
			Quantity:   state.Draft.Quantity,
		},
		QuantityInput: state.QuantityInput,
		Pricing: pricingView{
			Total:   state.Pricing.Total.String(),
			ETA:     state.Pricing.ETALabel,
			Urgency: string(state.Pricing.Urgency),
		},
		Errors: errorsView{
			Quantity: state.Validation.QuantityError,
			Link:     state.VisibleLinkError(),
		},
		URL:     state.URL.String(),
		Notices: make([]noticeView, 0, len(notices)),
	}
	for _, n := range notices {
		view.Notices = append(view.Notices, noticeView{Kind: string(n.Kind), Message: n.Message})
	}
	return view
}

type serviceView struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	PricePerThousand string `json:"price_per_thousand"`
	Min              int    `json:"min"`
	Max              int    `json:"max"`
	OrderPath        string `json:"order_path"`
}

type categoryView struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	IconHint string        `json:"icon_hint,omitempty"`
	Slug     string        `json:"slug"`
	Path     string        `json:"path"`
	Services []serviceView `json:"services"`
}

func newCatalogView(cat catalog.Repository, locale string) []categoryView {
	categories := cat.Categories()
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		categorySlug := slug.Make(c.Name)
		view := categoryView{
			ID:       c.ID,
			Name:     c.Name,
			IconHint: c.IconHint,
			Slug:     categorySlug,
			Path:     fmt.Sprintf("/%s/services/%s", locale, categorySlug),
		}
		for _, svc := range cat.ServicesFor(c.ID) {
			view.Services = append(view.Services, serviceView{
				ID:               svc.ID,
				Name:             svc.Name,
				Description:      svc.Description,
				PricePerThousand: svc.PricePerThousand.String(),
				Min:              svc.Min,
				Max:              svc.Max,
				OrderPath:        fmt.Sprintf("/%s/new-order?serviceId=%d", locale, svc.ID),
			})
		}
		views = append(views, view)
	}
	return views
}

package configurator

import "smm-order-desk/internal/order"

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseCatalogLoading
	PhaseHydrating
	PhaseReady
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseCatalogLoading:
		return "catalog_loading"
	case PhaseHydrating:
		return "hydrating"
	case PhaseReady:
		return "ready"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type NoticeKind string

const (
	NoticeCatalogFailed       NoticeKind = "catalog_failed"
	NoticeInvalidService      NoticeKind = "invalid_service"
	NoticeInsufficientBalance NoticeKind = "insufficient_balance"
	NoticeOrderCreated        NoticeKind = "order_created"
	NoticeOrderFailed         NoticeKind = "order_failed"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

type Validation struct {
	QuantityError string
	LinkError     string
}

// State is a snapshot of the engine for whichever surface renders it.
type State struct {
	Phase           Phase
	Draft           order.Draft
	QuantityInput   string
	Pricing         order.Pricing
	Validation      Validation
	SubmitAttempted bool
	URL             URLState
}

// Link errors stay hidden while the user is still typing; they become
// visible after the first submit attempt.
func (s State) VisibleLinkError() string {
	if !s.SubmitAttempted {
		return ""
	}
	return s.Validation.LinkError
}

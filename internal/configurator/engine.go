package configurator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"smm-order-desk/internal/api"
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/order"
	"smm-order-desk/internal/session"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrCatalogNotReady     = errors.New("catalog is not loaded yet")
	ErrUnknownService      = errors.New("unknown service")
	ErrValidation          = errors.New("draft failed validation")
	ErrIncompleteDraft     = errors.New("incomplete order form")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Navigator applies the URL rewrites the engine produces. Rewrites are
// replace-style: no history entry, no viewport movement.
type Navigator interface {
	Replace(u URLState)
}

type OrderSubmitter interface {
	CreateOrder(ctx context.Context, token string, order api.CreateOrderRequest) (*api.Order, error)
}

type Deps struct {
	Catalog   catalog.Repository
	Drafts    order.DraftStore
	Sessions  session.Provider
	Submitter OrderSubmitter
	Navigator Navigator

	Token     string
	UserID    int64
	Locales   []string
	Locale    string
	TopUpPath string
}

// Engine reconciles the catalog, the URL, the stored draft and live user
// edits into one consistent order draft. The mutex serializes every
// transition, standing in for the original single-threaded event loop.
type Engine struct {
	mu   sync.Mutex
	deps Deps

	activeLocale string
	state        State
	notices      []Notice
}

func NewEngine(deps Deps) *Engine {
	if deps.TopUpPath == "" {
		deps.TopUpPath = "/balance"
	}
	return &Engine{
		deps:         deps,
		activeLocale: deps.Locale,
		state:        State{Phase: PhaseUninitialized},
	}
}

func (e *Engine) Token() string {
	return e.deps.Token
}

// Start loads the catalog and hydrates against the given URL. A failed
// load leaves the engine in the loading phase; calling Start again
// retries.
func (e *Engine) Start(ctx context.Context, rawURL string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Phase = PhaseCatalogLoading
	if err := e.deps.Catalog.Load(ctx, e.deps.Token); err != nil {
		e.pushNotice(NoticeCatalogFailed, "could not load the service catalog, try again")
		return err
	}
	e.hydrateLocked(rawURL)
	return nil
}

// Hydrate re-runs the reconciliation against a new URL, e.g. after a
// deep link or history navigation.
func (e *Engine) Hydrate(rawURL string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.deps.Catalog.Ready() {
		return ErrCatalogNotReady
	}
	e.hydrateLocked(rawURL)
	return nil
}

func (e *Engine) SelectCategory(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.deps.Catalog.Ready() {
		return ErrCatalogNotReady
	}

	e.state.Draft.CategoryID = id
	draft, u := repairSelection(e.deps.Catalog, e.state.Draft, e.state.URL)
	e.state.Draft = draft
	e.state.QuantityInput = quantityInput(draft.Quantity)
	e.replaceURL(u)
	e.recomputeLocked()
	e.persistLocked()
	return nil
}

func (e *Engine) SelectService(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.deps.Catalog.Ready() {
		return ErrCatalogNotReady
	}

	svc, ok := e.deps.Catalog.ServiceByID(id)
	if !ok {
		return ErrUnknownService
	}
	e.state.Draft.ServiceID = svc.ID
	e.state.Draft.CategoryID = svc.CategoryID
	e.replaceURL(e.state.URL.WithServiceID(svc.ID))
	e.recomputeLocked()
	e.persistLocked()
	return nil
}

func (e *Engine) SetLink(link string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.deps.Catalog.Ready() {
		return ErrCatalogNotReady
	}

	e.state.Draft.Link = strings.TrimSpace(link)
	e.recomputeLocked()
	e.persistLocked()
	return nil
}

func (e *Engine) SetQuantity(raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.deps.Catalog.Ready() {
		return ErrCatalogNotReady
	}

	e.state.QuantityInput = strings.TrimSpace(raw)
	quantity, err := strconv.Atoi(e.state.QuantityInput)
	if err != nil || quantity < 0 {
		quantity = 0
	}
	e.state.Draft.Quantity = quantity
	e.recomputeLocked()
	e.persistLocked()
	return nil
}

// SyncLocale tracks the language switcher. A prefix mismatch is repaired
// with a replace navigation that keeps the serviceId parameter; the draft
// itself is untouched.
func (e *Engine) SyncLocale(locale string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !containsLocale(e.deps.Locales, locale) {
		return
	}
	e.activeLocale = locale
	if e.state.URL.Locale != locale {
		e.replaceURL(e.state.URL.WithLocale(locale))
	}
}

func (e *Engine) Submit(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.deps.Catalog.Ready() {
		return ErrCatalogNotReady
	}

	e.state.SubmitAttempted = true
	e.recomputeLocked()
	if e.state.Validation.QuantityError != "" || e.state.Validation.LinkError != "" {
		return ErrValidation
	}
	if !e.state.Draft.HasSelection() {
		e.pushNotice(NoticeOrderFailed, "fill in the order form first")
		return ErrIncompleteDraft
	}

	e.state.Phase = PhaseSubmitting
	defer func() { e.state.Phase = PhaseReady }()

	sess, err := e.deps.Sessions.Resolve(ctx, e.deps.Token)
	if err != nil {
		e.pushNotice(NoticeOrderFailed, "could not place the order, try again")
		return err
	}

	total := e.state.Pricing.Total
	if sess.Balance.LessThan(total) {
		e.persistLocked()
		e.pushNotice(NoticeInsufficientBalance, fmt.Sprintf(
			"your balance %s does not cover the order total %s, top up first",
			sess.Balance.String(), total.String()))
		e.replaceURL(URLState{Locale: e.activeLocale, Path: e.deps.TopUpPath})
		return ErrInsufficientBalance
	}

	_, err = e.deps.Submitter.CreateOrder(ctx, e.deps.Token, api.CreateOrderRequest{
		ServiceID: e.state.Draft.ServiceID,
		URL:       e.state.Draft.Link,
		Quantity:  e.state.Draft.Quantity,
		Status:    "pending",
	})
	if err != nil {
		slog.Error("Failed to submit order", "error", err, "userID", e.deps.UserID)
		e.pushNotice(NoticeOrderFailed, "could not place the order, try again")
		return err
	}

	if err := e.deps.Drafts.Clear(e.deps.UserID); err != nil {
		slog.Error("Failed to clear stored draft", "error", err, "userID", e.deps.UserID)
	}
	e.state.Draft = order.Draft{}
	e.state.QuantityInput = ""
	e.state.SubmitAttempted = false
	e.replaceURL(e.state.URL.WithoutServiceID())
	e.recomputeLocked()
	e.pushNotice(NoticeOrderCreated, "order placed")
	return nil
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) ActiveLocale() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeLocale
}

// DrainNotices hands accumulated notices to the rendering surface and
// clears them.
func (e *Engine) DrainNotices() []Notice {
	e.mu.Lock()
	defer e.mu.Unlock()

	notices := e.notices
	e.notices = nil
	return notices
}

func (e *Engine) hydrateLocked(rawURL string) {
	e.state.Phase = PhaseHydrating

	parsed := ParseURL(rawURL, e.deps.Locales)
	if parsed.Locale != "" {
		e.activeLocale = parsed.Locale
	}

	stored, err := e.deps.Drafts.Load(e.deps.UserID)
	if err != nil {
		slog.Error("Failed to load stored draft", "error", err, "userID", e.deps.UserID)
		stored = nil
	}

	result := hydrate(e.deps.Catalog, parsed, stored, e.activeLocale)
	e.notices = append(e.notices, result.notices...)

	e.state.Draft = result.draft
	e.state.QuantityInput = quantityInput(result.draft.Quantity)
	e.state.SubmitAttempted = false
	e.replaceURL(result.url)
	e.recomputeLocked()
	e.persistLocked()
	e.state.Phase = PhaseReady
}

func (e *Engine) recomputeLocked() {
	svc := e.selectedServiceLocked()
	e.state.Pricing = order.Derive(svc, e.state.Draft.Quantity)
	e.state.Validation.QuantityError = order.ValidateQuantity(e.state.QuantityInput, svc)
	e.state.Validation.LinkError = order.ValidateLink(e.state.Draft.Link)
}

func (e *Engine) selectedServiceLocked() *catalog.Service {
	if e.state.Draft.ServiceID == 0 {
		return nil
	}
	svc, ok := e.deps.Catalog.ServiceByID(e.state.Draft.ServiceID)
	if !ok {
		return nil
	}
	return svc
}

func (e *Engine) persistLocked() {
	if err := e.deps.Drafts.Save(e.deps.UserID, e.state.Draft); err != nil {
		slog.Error("Failed to persist draft", "error", err, "userID", e.deps.UserID)
	}
}

func (e *Engine) replaceURL(u URLState) {
	if e.state.URL == u {
		return
	}
	e.state.URL = u
	if e.deps.Navigator != nil {
		e.deps.Navigator.Replace(u)
	}
}

func (e *Engine) pushNotice(kind NoticeKind, message string) {
	e.notices = append(e.notices, Notice{Kind: kind, Message: message})
}

func quantityInput(quantity int) string {
	if quantity <= 0 {
		return ""
	}
	return strconv.Itoa(quantity)
}

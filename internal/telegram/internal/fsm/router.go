package fsm

import (
	"context"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type HandlerFunc func(ctx context.Context, api *bot.Bot, update *models.Update, state State)

type Router struct {
	fsm      *FSM
	handlers map[ConversationStep]HandlerFunc
	mu       *sync.RWMutex
}

func NewRouter(fsm *FSM) *Router {
	return &Router{
		fsm:      fsm,
		handlers: make(map[ConversationStep]HandlerFunc),
		mu:       &sync.RWMutex{},
	}
}

func (r *Router) RegisterHandler(step ConversationStep, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[step] = handler
}

// Middleware routes non-command updates to the handler of the user's
// current conversation step. Commands always reset the conversation.
func (r *Router) Middleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		var userID int64
		if update.Message != nil {
			userID = update.Message.From.ID
			if strings.HasPrefix(update.Message.Text, "/") {
				r.fsm.ResetState(userID)
				next(ctx, b, update)
				return
			}
		} else if update.CallbackQuery != nil {
			userID = update.CallbackQuery.From.ID
		} else {
			return
		}

		state := r.fsm.GetOrCreateState(userID)

		r.mu.RLock()
		handler, exists := r.handlers[state.Step]
		r.mu.RUnlock()

		if exists {
			handler(ctx, b, update, state)
			return
		}

		r.fsm.ResetState(userID)
		next(ctx, b, update)
	}
}

func (r *Router) Transition(userID int64, nextStep ConversationStep, data StateData) {
	state := r.fsm.GetOrCreateState(userID)
	state.Step = nextStep
	if data != nil {
		state.Data = data
	}
	r.fsm.SetState(userID, state)
}

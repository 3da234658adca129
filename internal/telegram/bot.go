package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/configurator"
	"smm-order-desk/internal/pkg/config"
	"smm-order-desk/internal/session"
	"smm-order-desk/internal/telegram/internal/fsm"

	"github.com/go-telegram/bot"
)

type Bot struct {
	engines  *configurator.Manager
	catalog  catalog.Repository
	sessions session.Provider
	api      *bot.Bot
	router   *fsm.Router
	cfg      *config.TelegramCfg
}

func NewBot(
	engines *configurator.Manager,
	cat catalog.Repository,
	sessions session.Provider,
	cfg *config.TelegramCfg,
) (*Bot, error) {
	state := fsm.NewFSM()
	router := fsm.NewRouter(state)
	botOpts := []bot.Option{bot.WithMiddlewares(router.Middleware)}
	b, err := bot.New(cfg.Token, botOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot instance: %w", err)
	}

	return &Bot{
		engines:  engines,
		catalog:  cat,
		sessions: sessions,
		api:      b,
		router:   router,
		cfg:      cfg,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "help", bot.MatchTypeCommandStartOnly, b.handleHelpCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "neworder", bot.MatchTypeCommandStartOnly, b.handleNewOrderCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "cancel", bot.MatchTypeCommandStartOnly, b.handleCancelCmd)

	b.router.RegisterHandler(fsm.StepAwaitingCategory, b.handleCategory)
	b.router.RegisterHandler(fsm.StepAwaitingService, b.handleService)
	b.router.RegisterHandler(fsm.StepAwaitingLink, b.handleLink)
	b.router.RegisterHandler(fsm.StepAwaitingQuantity, b.handleQuantity)
	b.router.RegisterHandler(fsm.StepAwaitingConfirmation, b.handleConfirmation)

	slog.Info("Started Telegram bot")
	go b.api.Start(ctx)
}

func (b *Bot) SendMessage(ctx context.Context, params *bot.SendMessageParams) {
	if _, err := b.api.SendMessage(ctx, params); err != nil {
		slog.Error("Error sending message", "error", err, "params", params)
	}
}

func (b *Bot) AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) {
	if _, err := b.api.AnswerCallbackQuery(ctx, params); err != nil {
		slog.Error(err.Error())
	}
}

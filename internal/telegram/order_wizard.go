package telegram

import (
	"context"
	"errors"
	"log/slog"
	"smm-order-desk/internal/configurator"
	"smm-order-desk/internal/telegram/internal/fsm"
	"smm-order-desk/internal/telegram/internal/presentation"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (b *Bot) handleNewOrderCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	userID := update.Message.From.ID

	token, ok := b.cfg.Tokens[userID]
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.NoTokenMsg(),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	sess, err := b.sessions.Resolve(ctx, token)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.GenericErrorMsg(),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	engine := b.engines.GetOrCreate(sess.UserID, token)
	if err := engine.Start(ctx, "/new-order"); err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.CatalogErrorMsg(),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	if engine.State().Draft.Link != "" || engine.State().Draft.Quantity > 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.ResumedDraftMsg(),
			ParseMode: models.ParseModeHTML,
		})
	}

	b.router.Transition(userID, fsm.StepAwaitingCategory, &fsm.WizardData{
		PanelUserID: sess.UserID,
		Token:       token,
	})
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      userID,
		Text:        presentation.AskCategoryMsg(),
		ReplyMarkup: presentation.CategoriesKbd(b.catalog.Categories()),
		ParseMode:   models.ParseModeHTML,
	})
}

func (b *Bot) handleCategory(ctx context.Context, api *bot.Bot, update *models.Update, state fsm.State) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
	userID := update.CallbackQuery.From.ID

	data, engine, ok := b.wizardEngine(ctx, userID, state)
	if !ok {
		return
	}
	categoryID, ok := parseCallbackID(update.CallbackQuery.Data, "cat")
	if !ok {
		return
	}

	if err := engine.SelectCategory(categoryID); err != nil {
		slog.Error("Failed to select category", "error", err, "categoryID", categoryID)
		b.resetWithError(ctx, userID)
		return
	}

	services := b.catalog.ServicesFor(categoryID)
	if len(services) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.NoServicesMsg(),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	// A lone service in the category was auto-selected by the engine.
	if engine.State().Draft.ServiceID != 0 {
		b.router.Transition(userID, fsm.StepAwaitingLink, data)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.AskLinkMsg(),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	data.CategoryID = categoryID
	data.Page = 0
	b.router.Transition(userID, fsm.StepAwaitingService, data)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      userID,
		Text:        presentation.AskServiceMsg(),
		ReplyMarkup: presentation.ServicesKbd(services, 0),
		ParseMode:   models.ParseModeHTML,
	})
}

func (b *Bot) handleService(ctx context.Context, api *bot.Bot, update *models.Update, state fsm.State) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
	userID := update.CallbackQuery.From.ID

	data, engine, ok := b.wizardEngine(ctx, userID, state)
	if !ok {
		return
	}

	callback := update.CallbackQuery.Data
	if callback == "page:next" || callback == "page:previous" {
		if callback == "page:next" {
			data.Page++
		} else {
			data.Page--
		}
		b.router.Transition(userID, fsm.StepAwaitingService, data)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      userID,
			Text:        presentation.AskServiceMsg(),
			ReplyMarkup: presentation.ServicesKbd(b.catalog.ServicesFor(data.CategoryID), data.Page),
			ParseMode:   models.ParseModeHTML,
		})
		return
	}

	serviceID, ok := parseCallbackID(callback, "svc")
	if !ok {
		return
	}
	if err := engine.SelectService(serviceID); err != nil {
		slog.Error("Failed to select service", "error", err, "serviceID", serviceID)
		b.resetWithError(ctx, userID)
		return
	}

	b.router.Transition(userID, fsm.StepAwaitingLink, data)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    userID,
		Text:      presentation.AskLinkMsg(),
		ParseMode: models.ParseModeHTML,
	})
}

func (b *Bot) handleLink(ctx context.Context, api *bot.Bot, update *models.Update, state fsm.State) {
	if update.Message == nil {
		return
	}
	userID := update.Message.From.ID

	data, engine, ok := b.wizardEngine(ctx, userID, state)
	if !ok {
		return
	}

	if err := engine.SetLink(update.Message.Text); err != nil {
		b.resetWithError(ctx, userID)
		return
	}
	if reason := engine.State().Validation.LinkError; reason != "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.LinkValidationErrorMsg(reason),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	svc, ok := b.catalog.ServiceByID(engine.State().Draft.ServiceID)
	if !ok {
		b.resetWithError(ctx, userID)
		return
	}
	b.router.Transition(userID, fsm.StepAwaitingQuantity, data)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    userID,
		Text:      presentation.AskQuantityMsg(svc),
		ParseMode: models.ParseModeHTML,
	})
}

func (b *Bot) handleQuantity(ctx context.Context, api *bot.Bot, update *models.Update, state fsm.State) {
	if update.Message == nil {
		return
	}
	userID := update.Message.From.ID

	data, engine, ok := b.wizardEngine(ctx, userID, state)
	if !ok {
		return
	}

	if err := engine.SetQuantity(update.Message.Text); err != nil {
		b.resetWithError(ctx, userID)
		return
	}
	if reason := engine.State().Validation.QuantityError; reason != "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.QuantityValidationErrorMsg(reason),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	engineState := engine.State()
	svc, ok := b.catalog.ServiceByID(engineState.Draft.ServiceID)
	if !ok {
		b.resetWithError(ctx, userID)
		return
	}
	b.router.Transition(userID, fsm.StepAwaitingConfirmation, data)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      userID,
		Text:        presentation.OrderPreviewMsg(svc, engineState.Draft, engineState.Pricing),
		ReplyMarkup: presentation.YesNoKbd(),
		ParseMode:   models.ParseModeHTML,
	})
}

func (b *Bot) handleConfirmation(ctx context.Context, api *bot.Bot, update *models.Update, state fsm.State) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
	userID := update.CallbackQuery.From.ID

	_, engine, ok := b.wizardEngine(ctx, userID, state)
	if !ok {
		return
	}

	if update.CallbackQuery.Data != "yes" {
		b.router.Transition(userID, fsm.StepIdle, &fsm.IdleData{})
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.OrderCancelledMsg(),
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	err := engine.Submit(ctx)
	notices := engine.DrainNotices()
	b.router.Transition(userID, fsm.StepIdle, &fsm.IdleData{})

	switch {
	case err == nil:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.OrderCreatedMsg(),
			ParseMode: models.ParseModeHTML,
		})
	case errors.Is(err, configurator.ErrInsufficientBalance):
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.InsufficientBalanceMsg(noticeMessage(notices, configurator.NoticeInsufficientBalance)),
			ParseMode: models.ParseModeHTML,
		})
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    userID,
			Text:      presentation.OrderFailedMsg(),
			ParseMode: models.ParseModeHTML,
		})
	}
}

func (b *Bot) wizardEngine(ctx context.Context, userID int64, state fsm.State) (*fsm.WizardData, *configurator.Engine, bool) {
	data, ok := state.Data.(*fsm.WizardData)
	if !ok {
		b.resetWithError(ctx, userID)
		return nil, nil, false
	}
	return data, b.engines.GetOrCreate(data.PanelUserID, data.Token), true
}

func (b *Bot) resetWithError(ctx context.Context, userID int64) {
	b.router.Transition(userID, fsm.StepIdle, &fsm.IdleData{})
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    userID,
		Text:      presentation.GenericErrorMsg(),
		ParseMode: models.ParseModeHTML,
	})
}

func parseCallbackID(callback, prefix string) (int64, bool) {
	raw, found := strings.CutPrefix(callback, prefix+":")
	if !found {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func noticeMessage(notices []configurator.Notice, kind configurator.NoticeKind) string {
	for _, n := range notices {
		if n.Kind == kind {
			return n.Message
		}
	}
	return "balance is too low for this order"
}

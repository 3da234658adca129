package telegram

import (
	"context"
	"smm-order-desk/internal/telegram/internal/presentation"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (b *Bot) handleHelpCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.From.ID,
		Text:      presentation.HelpMsg(),
		ParseMode: models.ParseModeHTML,
	})
}

func (b *Bot) handleCancelCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.From.ID,
		Text:      presentation.OrderCancelledMsg(),
		ParseMode: models.ParseModeHTML,
	})
}

package presentation

import (
	"fmt"
	"smm-order-desk/internal/catalog"
	"smm-order-desk/internal/order"
	"strings"
)

func GenericErrorMsg() string {
	return "<b>❌ Something went wrong, try again later</b>"
}

func NoTokenMsg() string {
	return "<b>🔑 Your Telegram account is not linked to a panel API token</b>"
}

func CatalogErrorMsg() string {
	return "<b>❌ Could not load the service catalog. Send /neworder to retry</b>"
}

func AskCategoryMsg() string {
	return "<b>🗂 Pick a platform category</b>"
}

func NoServicesMsg() string {
	return "<b>⚠️ This category has no services right now, pick another one</b>"
}

func AskServiceMsg() string {
	return "<b>📦 Pick a service</b>"
}

func AskLinkMsg() string {
	return "<b>🔗 Send the link the order should be delivered to</b>"
}

func LinkValidationErrorMsg(reason string) string {
	return fmt.Sprintf("❌ %s", capitalize(reason))
}

func AskQuantityMsg(svc *catalog.Service) string {
	return fmt.Sprintf("<b>🔢 Enter a quantity between %d and %d</b>", svc.Min, svc.Max)
}

func QuantityValidationErrorMsg(reason string) string {
	return fmt.Sprintf("❌ %s", capitalize(reason))
}

func OrderPreviewMsg(svc *catalog.Service, draft order.Draft, pricing order.Pricing) string {
	var sb strings.Builder
	sb.WriteString("<b>📋 Order preview</b>")
	sb.WriteString(breakLine(2))
	sb.WriteString(fmt.Sprintf("<b>📦 Service:</b> %s", svc.Name))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("<b>🔗 Link:</b> %s", draft.Link))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("<b>🔢 Quantity:</b> %d", draft.Quantity))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("<b>💰 Total:</b> %s", pricing.Total.String()))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("<b>⏱ Delivery:</b> %s", pricing.ETALabel))
	sb.WriteString(breakLine(2))
	sb.WriteString("<b>Place this order?</b>")
	return sb.String()
}

func ResumedDraftMsg() string {
	return "<b>📝 Restored your unfinished order, you can change anything before placing it</b>"
}

func OrderCancelledMsg() string {
	return "<b>✖️ Order cancelled. Your draft is kept for next time</b>"
}

func OrderCreatedMsg() string {
	return "<b>✔️ Order placed</b>"
}

func OrderFailedMsg() string {
	return "<b>❌ Could not place the order. Your draft is kept, try again</b>"
}

func InsufficientBalanceMsg(detail string) string {
	return fmt.Sprintf("<b>💸 %s</b>", capitalize(detail))
}

func HelpMsg() string {
	var sb strings.Builder
	sb.WriteString("<b>❓ This bot places orders on your panel account</b>")
	sb.WriteString(breakLine(2))
	sb.WriteString("<b>⚙️ Available commands:</b>")
	sb.WriteString(breakLine(2))
	sb.WriteString("<b>/neworder — configure and place an order</b>")
	sb.WriteString(breakLine(1))
	sb.WriteString("<b>/cancel — drop the current conversation</b>")
	return sb.String()
}

func breakLine(count int) string {
	return strings.Repeat("\n", count)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

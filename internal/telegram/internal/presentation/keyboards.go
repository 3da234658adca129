package presentation

import (
	"fmt"
	"smm-order-desk/internal/catalog"

	"github.com/go-telegram/bot/models"
)

const servicesPageSize = 5

func CategoriesKbd(categories []catalog.Category) *models.InlineKeyboardMarkup {
	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{},
	}
	for _, c := range categories {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, []models.InlineKeyboardButton{
			{Text: c.Name, CallbackData: fmt.Sprintf("cat:%d", c.ID)},
		})
	}
	return keyboard
}

// ServicesKbd pages through a category's services, one page of buttons
// plus a slider row.
func ServicesKbd(services []catalog.Service, page int) *models.InlineKeyboardMarkup {
	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{},
	}

	totalPages := (len(services) + servicesPageSize - 1) / servicesPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * servicesPageSize
	end := start + servicesPageSize
	if end > len(services) {
		end = len(services)
	}
	for _, svc := range services[start:end] {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, []models.InlineKeyboardButton{
			{Text: svc.Name, CallbackData: fmt.Sprintf("svc:%d", svc.ID)},
		})
	}

	if totalPages > 1 {
		var sliderRow []models.InlineKeyboardButton
		if page > 0 {
			sliderRow = append(sliderRow, models.InlineKeyboardButton{
				Text: "◀️", CallbackData: "page:previous",
			})
		}
		sliderRow = append(sliderRow, models.InlineKeyboardButton{
			Text: fmt.Sprintf("%d/%d", page+1, totalPages), CallbackData: "noop",
		})
		if page < totalPages-1 {
			sliderRow = append(sliderRow, models.InlineKeyboardButton{
				Text: "▶️", CallbackData: "page:next",
			})
		}
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, sliderRow)
	}
	return keyboard
}

func YesNoKbd() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "✔️ Yes", CallbackData: "yes"}},
			{{Text: "❌ No", CallbackData: "no"}},
		},
	}
}

package request

import (
	"cozycup/internal/usecase/commands"

	"github.com/google/uuid"
)

type LineItemRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId" binding:"required"`
	Quantity   *int      `json:"quantity" binding:"omitempty,min=1,max=100"`
	Variants   []string  `json:"variants" binding:"omitempty,max=10,dive,min=1,max=50"`
}

type CreateOrderRequest struct {
	WindowID uuid.UUID         `json:"pickupWindowId" binding:"required"`
	Items    []LineItemRequest `json:"items" binding:"required,min=1,max=50,dive"`
	Notes    string            `json:"notes" binding:"max=300"`
}

func (r CreateOrderRequest) ToInput() commands.CreateOrderInput {
	items := make([]commands.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		items = append(items, commands.LineItemInput{
			MenuItemID: it.MenuItemID,
			Quantity:   qty,
			Variants:   it.Variants,
		})
	}
	return commands.CreateOrderInput{WindowID: r.WindowID, Items: items, Notes: r.Notes}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingRequest struct {
	SlotID uuid.UUID `json:"slotId" binding:"required"`
	Notes  string    `json:"notes" binding:"max=300"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{SlotID: r.SlotID, Notes: r.Notes}
}

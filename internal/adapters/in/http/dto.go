package http

import (
	"fmt"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CustomerID   string             `json:"customerId"`
	RestaurantID string             `json:"restaurantId"`
	Price        decimal.Decimal    `json:"price"`
	Items        []OrderItemRequest `json:"items"`
	Address      AddressRequest     `json:"address"`
}

type OrderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SubTotal  decimal.Decimal `json:"subTotal"`
}

type AddressRequest struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

type CreateOrderResponse struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

type TrackOrderResponse struct {
	TrackingID      string   `json:"trackingId"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failureMessages"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r CreateOrderRequest) toCommand() (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(r.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, fmt.Errorf("customerId: %w", err)
	}
	restaurantID, err := kernel.UUIDFromString(r.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, fmt.Errorf("restaurantId: %w", err)
	}

	address, err := kernel.NewStreetAddress(kernel.NewUUID(), r.Address.Street, r.Address.PostalCode, r.Address.City)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	price, err := kernel.NewMoneyFromDecimal(r.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, fmt.Errorf("price: %w", err)
	}

	items := make([]commands.CreateOrderItem, 0, len(r.Items))
	for i, item := range r.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return commands.CreateOrderCommand{}, fmt.Errorf("items[%d].productId: %w", i, idErr)
		}
		price, priceErr := kernel.NewMoneyFromDecimal(item.Price)
		if priceErr != nil {
			return commands.CreateOrderCommand{}, fmt.Errorf("items[%d].price: %w", i, priceErr)
		}
		subTotal, subTotalErr := kernel.NewMoneyFromDecimal(item.SubTotal)
		if subTotalErr != nil {
			return commands.CreateOrderCommand{}, fmt.Errorf("items[%d].subTotal: %w", i, subTotalErr)
		}
		items = append(items, commands.CreateOrderItem{
			ProductID: kernel.ProductIDFrom(productID),
			Quantity:  item.Quantity,
			Price:     price,
			SubTotal:  subTotal,
		})
	}

	return commands.NewCreateOrderCommand(
		kernel.CustomerIDFrom(customerID),
		kernel.RestaurantIDFrom(restaurantID),
		address,
		price,
		items,
	)
}

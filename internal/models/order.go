package models

import (
	"errors"

	"shop-backend/internal/repository"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusShipped:   {},
	OrderStatusDelivered: {},
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid order status")
}

// orderFieldMap pairs the API's camelCase keys with the store's
// title-case column names, in response order.
var orderFieldMap = []struct {
	Key    string
	Column string
}{
	{"orderId", "Order ID"},
	{"orderDate", "Order Date"},
	{"totalPrice", "Total Price"},
	{"totalQuantity", "Total Quantity"},
	{"shippingAddress", "Shipping Address"},
	{"orderStatus", "Order Status"},
	{"productList", "Product List"},
	{"customer", "Customer"},
}

// OrderFromRecord shapes a store record into the API payload. Columns
// absent from the record come through as null.
func OrderFromRecord(rec repository.Record) map[string]any {
	order := map[string]any{"id": rec.ID}
	for _, f := range orderFieldMap {
		order[f.Key] = rec.Fields[f.Column]
	}
	order["createdTime"] = rec.CreatedTime
	return order
}

// OrderStatusProjection is the deliberately partial response of the
// status update operation: id, orderId and orderStatus only.
func OrderStatusProjection(rec repository.Record) map[string]any {
	return map[string]any{
		"id":          rec.ID,
		"orderId":     rec.Fields["Order ID"],
		"orderStatus": rec.Fields["Order Status"],
	}
}

// CreateOrderRequest carries the caller-supplied part of a new order.
// Values are passed through to the store untouched; there is no field
// validation on this path (a known gap kept for compatibility).
type CreateOrderRequest struct {
	TotalPrice      any `json:"totalPrice"`
	TotalQuantity   any `json:"totalQuantity"`
	ShippingAddress any `json:"shippingAddress"`
	ProductList     any `json:"productList"`
	Customer        any `json:"customer"`
}

// NewOrderFields builds the store field set for order creation. The
// status always starts at Pending regardless of caller input.
func NewOrderFields(req CreateOrderRequest, orderID, orderDate string) map[string]any {
	return map[string]any{
		"Order ID":         orderID,
		"Order Date":       orderDate,
		"Total Price":      req.TotalPrice,
		"Total Quantity":   req.TotalQuantity,
		"Shipping Address": req.ShippingAddress,
		"Order Status":     string(OrderStatusPending),
		"Product List":     req.ProductList,
		"Customer":         req.Customer,
	}
}

package domain

import "time"

type OrderStatus string

const (
	OrderStatusReceived     OrderStatus = "received"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusQualityCheck OrderStatus = "quality_check"
	OrderStatusShipped      OrderStatus = "shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
)

var orderStatusFlow = []OrderStatus{
	OrderStatusReceived,
	OrderStatusInProduction,
	OrderStatusQualityCheck,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// OrderStatuses returns the recognized lifecycle labels in lifecycle order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatusFlow))
	copy(out, orderStatusFlow)
	return out
}

func (s OrderStatus) IsValid() bool {
	for _, st := range orderStatusFlow {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the status a client would usually move to after s. It is a
// suggestion only: status updates accept any value. Delivered and unknown
// labels have no successor and return themselves.
func (s OrderStatus) Next() OrderStatus {
	for i, st := range orderStatusFlow {
		if st == s && i+1 < len(orderStatusFlow) {
			return orderStatusFlow[i+1]
		}
	}
	return s
}

type Order struct {
	ID                string      `json:"id"`
	BuyerName         string      `json:"buyerName"`
	StyleNumber       string      `json:"styleNumber"`
	Quantity          int         `json:"quantity"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	BuyerEmail        string      `json:"buyerEmail"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// WithDefaults fills the fields a caller may omit on creation.
func (o Order) WithDefaults() Order {
	if o.Status == "" {
		o.Status = OrderStatusReceived
	}
	return o
}

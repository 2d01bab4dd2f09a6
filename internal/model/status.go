package model

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusSuccess  OrderStatus = "success"
	StatusCanceled OrderStatus = "canceled"
	StatusRejected OrderStatus = "rejected"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusCanceled, StatusRejected:
		return true
	}
	return false
}

// ClassifyPayment maps a client-relayed payment outcome onto an order status.
// The widget reports either its own "status" field or the provider's
// "transaction_status"; first matching rule wins, anything unrecognized
// (including no outcome at all) stays pending.
func ClassifyPayment(status, transactionStatus string) OrderStatus {
	switch {
	case status == "success" || transactionStatus == "settlement":
		return StatusSuccess
	case status == "pending" || transactionStatus == "pending":
		return StatusPending
	case status == "canceled" || transactionStatus == "cancel":
		return StatusCanceled
	case status == "rejected" || transactionStatus == "deny":
		return StatusRejected
	}
	return StatusPending
}

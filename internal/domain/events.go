package domain

import "time"

// Routing keys dos eventos publicados após cada commit no ledger.
const (
	RKOrderPlaced    = "inventory.order.placed"
	RKStockRestocked = "inventory.stock.restocked"
)

// OrderPlacedEvent é publicado depois que um pedido foi debitado do estoque.
type OrderPlacedEvent struct {
	OrderID    string       `json:"order_id"`
	Lines      []OrderLine  `json:"lines"`
	TotalPrice int          `json:"total_price"`
	Stock      []StockLevel `json:"stock_after"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// StockRestockedEvent é publicado depois que um reabastecimento foi aplicado.
type StockRestockedEvent struct {
	Lines      []RestockLine `json:"lines"`
	Stock      []StockLevel  `json:"stock_after"`
	OccurredAt time.Time     `json:"occurred_at"`
}

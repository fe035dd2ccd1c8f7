package domain

// ToolInventory tracks stock, on-hold and checked-out counts for one tool
// pool. Invariant: CheckedOutCount + OnHoldCount <= StockCount, and no
// counter goes negative. Counters are mutated only through the inventory
// service in response to rental lifecycle events.
type ToolInventory struct {
	ID              int64  `json:"id"`
	Location        string `json:"location"`
	StockCount      int    `json:"stock_count"`
	CheckedOutCount int    `json:"checked_out_count"`
	OnHoldCount     int    `json:"on_hold_count"`
}

// Available returns the number of units free to rent from the pool.
func (i *ToolInventory) Available() int {
	return i.StockCount - i.CheckedOutCount - i.OnHoldCount
}

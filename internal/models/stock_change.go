package models

// StockChange is published after stock is added to a price tier.
type StockChange struct {
	ChangeID  string  `json:"change_id"`  // Unique identifier of the change
	Timestamp int64   `json:"timestamp"`  // Unix time (seconds) of the change
	EventID   int64   `json:"event_id"`   // Event the tier belongs to
	EventName string  `json:"event_name"` // Stored event name
	Price     float64 `json:"price"`      // Tier price
	Added     int64   `json:"added"`      // Amount added by this change
	Stock     int64   `json:"stock"`      // Tier stock after the change
	UserID    int64   `json:"user_id"`    // User that added the stock
}

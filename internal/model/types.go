package model

// StatusSnapshot represents the controller's state as of the last successful
// fetch. It is the canonical type for the wire contract, the console's
// snapshot store, and the simulator.
type StatusSnapshot struct {
	IsRunning     bool    `json:"is_running"`
	Network       string  `json:"network"`
	WalletBalance float64 `json:"wallet_balance"` // SOL
	TokensScanned int     `json:"tokens_scanned"`
	ActiveTrades  int     `json:"active_trades"`
}

// Token represents one scanned token as reported by the controller.
// The collection is server-ordered and replaced wholesale each poll cycle;
// Address is the only identity carried across cycles.
type Token struct {
	Address       string  `json:"address"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Volume24h     float64 `json:"volume_24h"`
	PriceChange1h float64 `json:"price_change_1h"` // signed percent
}

// Trade represents one trade the controller has opened or settled.
type Trade struct {
	TokenAddress string  `json:"token_address"`
	Type         string  `json:"type"` // "buy" or "sell"
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Timestamp    string  `json:"timestamp"`
}

// Networks the controller can run against.
const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
)

// ValidNetwork reports whether n names a known network.
func ValidNetwork(n string) bool {
	return n == NetworkMainnet || n == NetworkDevnet
}

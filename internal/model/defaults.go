package model

import "time"

// Shared defaults used by both the console and simulator binaries.
const (
	DefaultPollInterval   = 5 * time.Second
	DefaultNoticeDuration = 3 * time.Second
	DefaultAPIURL         = "http://127.0.0.1:8000"
	DefaultListenAddr     = "127.0.0.1:8000"
	DefaultNetwork        = NetworkDevnet
	DefaultWalletBalance  = 4.2 // SOL, simulator starting balance
	DefaultScanInterval   = 2 * time.Second
)

package botsim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// Config controls the simulated controller's starting state.
type Config struct {
	Network       string
	WalletBalance float64
	ScanInterval  time.Duration
	Universe      []SeedToken // empty = built-in default universe
	Seed          int64       // 0 = time-based
}

// Bot is an in-memory controller that behaves like the real trading bot from
// the console's point of view: it starts, stops, scans tokens while running,
// and occasionally opens trades. All state is process-local.
type Bot struct {
	mu sync.Mutex

	running       bool
	network       string
	walletBalance float64
	tokensScanned int
	startTime     time.Time

	tokens   []model.Token
	trades   []model.Trade
	universe []SeedToken
	nextIdx  int

	scanInterval time.Duration
	rng          *rand.Rand
}

// NewBot creates a simulated controller in the stopped state.
func NewBot(cfg Config) *Bot {
	network := cfg.Network
	if network == "" {
		network = model.DefaultNetwork
	}
	balance := cfg.WalletBalance
	if balance <= 0 {
		balance = model.DefaultWalletBalance
	}
	interval := cfg.ScanInterval
	if interval <= 0 {
		interval = model.DefaultScanInterval
	}
	universe := cfg.Universe
	if len(universe) == 0 {
		universe = DefaultUniverse()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Bot{
		network:       network,
		walletBalance: balance,
		universe:      universe,
		scanInterval:  interval,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Start moves the bot into the running state. Starting an already-running
// bot is a no-op, mirroring the real controller's idempotent endpoint.
func (b *Bot) Start() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return false
	}
	b.running = true
	b.startTime = time.Now()
	return true
}

// Stop moves the bot into the stopped state. Idempotent like Start.
func (b *Bot) Stop() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		return false
	}
	b.running = false
	return true
}

// Running reports the current run state.
func (b *Bot) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// SetNetwork switches the simulated network. Switching resets the scan state,
// as the real controller re-targets its RPC endpoint.
func (b *Bot) SetNetwork(network string) error {
	if !model.ValidNetwork(network) {
		return fmt.Errorf("botsim: invalid network %q", network)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if network != b.network {
		b.network = network
		b.tokens = nil
		b.trades = nil
		b.tokensScanned = 0
		b.nextIdx = 0
	}
	return nil
}

// Status returns the current status snapshot.
func (b *Bot) Status() model.StatusSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	active := 0
	for _, tr := range b.trades {
		if tr.Status == "pending" {
			active++
		}
	}
	return model.StatusSnapshot{
		IsRunning:     b.running,
		Network:       b.network,
		WalletBalance: b.walletBalance,
		TokensScanned: b.tokensScanned,
		ActiveTrades:  active,
	}
}

// Tokens returns a copy of the current token list, newest first.
func (b *Bot) Tokens() []model.Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Token(nil), b.tokens...)
}

// Trades returns a copy of the current trade list, newest first.
func (b *Bot) Trades() []model.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Trade(nil), b.trades...)
}

// Scan performs one scan pass: discover the next universe token, drift the
// prices of known tokens, and occasionally open or settle a trade. A stopped
// bot does not scan.
func (b *Bot) Scan() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		return
	}

	b.tokensScanned++

	// Drift existing tokens.
	for i := range b.tokens {
		drift := (b.rng.Float64() - 0.5) * 0.08 // ±4% per pass
		b.tokens[i].Price *= 1 + drift
		b.tokens[i].Volume24h *= 1 + (b.rng.Float64()-0.5)*0.1
		b.tokens[i].PriceChange1h += drift * 100
	}

	// Discover a new token from the universe.
	if b.nextIdx < len(b.universe) {
		seed := b.universe[b.nextIdx]
		b.nextIdx++
		b.tokens = append([]model.Token{{
			Address:       seed.Address,
			Symbol:        seed.Symbol,
			Price:         0.000001 * (1 + b.rng.Float64()*50),
			Volume24h:     1000 + b.rng.Float64()*50000,
			PriceChange1h: (b.rng.Float64() - 0.5) * 40,
		}}, b.tokens...)
	}

	// Settle one pending trade, then maybe open a new one.
	for i := range b.trades {
		if b.trades[i].Status == "pending" && b.rng.Float64() < 0.5 {
			b.trades[i].Status = "confirmed"
			break
		}
	}
	if len(b.tokens) > 0 && b.rng.Float64() < 0.3 {
		tok := b.tokens[b.rng.Intn(len(b.tokens))]
		side := "buy"
		if b.rng.Float64() < 0.4 {
			side = "sell"
		}
		amount := 0.01 + b.rng.Float64()*0.2
		if side == "buy" && amount < b.walletBalance {
			b.walletBalance -= amount
		} else if side == "sell" {
			b.walletBalance += amount * 0.9
		}
		b.trades = append([]model.Trade{{
			TokenAddress: tok.Address,
			Type:         side,
			Amount:       amount,
			Status:       "pending",
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		}}, b.trades...)
		if len(b.trades) > 50 {
			b.trades = b.trades[:50]
		}
	}
}

// Run scans on a fixed ticker until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.scanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			b.Scan()
		}
	}
}

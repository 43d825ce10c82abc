package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sniperdeck/sniperdeck/internal/model"
)

// Section represents the focusable console sections.
type Section int

const (
	SectionTokens Section = iota // scanned token table
	SectionTrades                // recent trade table
)

// maxScanHistory bounds the scan-activity chart's sliding window.
const maxScanHistory = 60

// SnapshotState is the console's snapshot store: the latest known controller
// status and observed lists. Each slot is replaced wholesale on a successful
// fetch and never partially mutated; a nil status means "unknown" (pre-first
// fetch), which is distinct from "stopped".
type SnapshotState struct {
	status *model.StatusSnapshot
	tokens []model.Token
	trades []model.Trade
}

// FetchState sequences the poller's per-resource fetches. Each resource
// carries a monotonically increasing sequence number; responses older than
// the last applied one are discarded so overlapping cycles resolve as
// last-scheduled-wins rather than last-arrived-wins.
type FetchState struct {
	statusSeq     int
	statusApplied int
	tokensSeq     int
	tokensApplied int
	tradesSeq     int
	tradesApplied int

	// Background-fetch failures surface only on the status line and clear
	// on the resource's next successful fetch. They never raise a Notice.
	statusErr  string
	tokensErr  string
	tradesErr  string
	lastSyncAt time.Time
}

// NoticeState holds the single transient notification slot.
type NoticeState struct {
	notice    *Notice
	noticeGen int // generation tag; stale expiry timers are ignored
}

// ControlState guards the mutating actions.
type ControlState struct {
	actionInFlight bool
}

// NavState holds section focus and table selection.
type NavState struct {
	activeSection Section
	tokenCursor   int
	tradeCursor   int
}

// ConsoleModel is the top-level Bubble Tea model for the operator console.
// Sub-state is organized into embedded structs for readability; Go's field
// promotion keeps m.fieldName access unchanged.
type ConsoleModel struct {
	SnapshotState
	FetchState
	NoticeState
	ControlState
	NavState

	// Window dimensions
	width  int
	height int

	// Configuration
	pollInterval       time.Duration
	noticeDuration     time.Duration
	requestTimeout     time.Duration
	reverseScrollWheel bool

	// Scan-activity chart: per-cycle deltas of TokensScanned.
	scanHistory []int
	lastScanned int
	hasScanBase bool

	// Set on quit; the recurring tick is not re-armed afterwards.
	quitting bool

	keys KeyMap

	api      model.ControllerAPI
	apiLabel string // controller address shown in the status line
}

// TickMsg drives one poll cycle.
type TickMsg time.Time

// statusFetchedMsg carries one status fetch result back into the event loop.
type statusFetchedMsg struct {
	seq      int
	snapshot model.StatusSnapshot
	err      error
}

// tokensFetchedMsg carries one token-list fetch result.
type tokensFetchedMsg struct {
	seq    int
	tokens []model.Token
	err    error
}

// tradesFetchedMsg carries one trade-list fetch result.
type tradesFetchedMsg struct {
	seq    int
	trades []model.Trade
	err    error
}

// actionDoneMsg reports the outcome of a control-surface request.
type actionDoneMsg struct {
	action controlAction
	target string // network switch target, empty otherwise
	err    error
}

// noticeExpiredMsg fires when a notice's countdown elapses.
type noticeExpiredMsg struct {
	gen int
}

// NewConsoleModel creates the console model. The controller is reached
// through api; apiLabel is the human-readable address for the status line.
func NewConsoleModel(api model.ControllerAPI, apiLabel string, pollInterval, noticeDuration time.Duration, reverseScrollWheel bool) *ConsoleModel {
	if pollInterval <= 0 {
		pollInterval = model.DefaultPollInterval
	}
	if noticeDuration <= 0 {
		noticeDuration = model.DefaultNoticeDuration
	}
	return &ConsoleModel{
		pollInterval:       pollInterval,
		noticeDuration:     noticeDuration,
		requestTimeout:     8 * time.Second,
		reverseScrollWheel: reverseScrollWheel,
		keys:               DefaultKeyMap(),
		api:                api,
		apiLabel:           apiLabel,
	}
}

// Init fetches all resources once immediately, then arms the recurring tick.
func (m *ConsoleModel) Init() tea.Cmd {
	return tea.Batch(m.pollCycleCmd(), m.tickCmd())
}

func (m *ConsoleModel) tickCmd() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// pollCycleCmd issues one independent fetch per resource. A failure in any
// one of them does not cancel or delay the others.
func (m *ConsoleModel) pollCycleCmd() tea.Cmd {
	return tea.Batch(m.fetchStatusCmd(), m.fetchTokensCmd(), m.fetchTradesCmd())
}

// Status returns the current snapshot, nil while unknown. Exposed for the
// status line and tests; mutations happen only inside Update.
func (m *ConsoleModel) Status() *model.StatusSnapshot {
	return m.status
}

// Notice returns the live notification, nil when idle.
func (m *ConsoleModel) Notice() *Notice {
	return m.notice
}

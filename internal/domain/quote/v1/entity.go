package v1

import (
	"encoding/json"
	"time"

	"github.com/muhammadchandra19/quotestream/pkg/util"
)

// Pair is an internal currency pair identifier.
type Pair string

const (
	// PairETHUSDC is ether quoted in USD Coin.
	PairETHUSDC Pair = "ETHUSDC"
	// PairETHUSDT is ether quoted in Tether.
	PairETHUSDT Pair = "ETHUSDT"
	// PairETHBTC is ether quoted in bitcoin.
	PairETHBTC Pair = "ETHBTC"
)

// AllPairs returns every supported pair.
func AllPairs() []Pair {
	return []Pair{PairETHUSDC, PairETHUSDT, PairETHBTC}
}

// Tick is one normalized trade price.
type Tick struct {
	Pair  Pair    `json:"pair"`
	Price float64 `json:"price"`
	Ts    int64   `json:"ts"` // epoch millis, upstream assigned
}

// HourlySnapshot is a read view of one pair's accumulator.
type HourlySnapshot struct {
	Pair         Pair
	HourStartUTC time.Time
	Avg          float64
	Count        int64
	LastTs       int64
}

type hourlySnapshotJSON struct {
	Pair         Pair    `json:"pair"`
	HourStartUTC string  `json:"hourStartUtc"`
	Avg          float64 `json:"avg"`
	Count        int64   `json:"count"`
	LastTs       int64   `json:"lastTs"`
}

// MarshalJSON renders hourStartUtc as an ISO-8601 string with millisecond precision.
func (s HourlySnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(hourlySnapshotJSON{
		Pair:         s.Pair,
		HourStartUTC: s.HourStartUTC.UTC().Format(util.HourlyBucketLayout),
		Avg:          s.Avg,
		Count:        s.Count,
		LastTs:       s.LastTs,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *HourlySnapshot) UnmarshalJSON(data []byte) error {
	var raw hourlySnapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	hourStart, err := time.Parse(util.HourlyBucketLayout, raw.HourStartUTC)
	if err != nil {
		return err
	}

	*s = HourlySnapshot{
		Pair:         raw.Pair,
		HourStartUTC: hourStart.UTC(),
		Avg:          raw.Avg,
		Count:        raw.Count,
		LastTs:       raw.LastTs,
	}
	return nil
}

// ConnectionStatus is the state of the upstream feed connection.
type ConnectionStatus string

const (
	// StatusConnecting is emitted when a dial starts.
	StatusConnecting ConnectionStatus = "connecting"
	// StatusConnected is emitted once the socket is open.
	StatusConnected ConnectionStatus = "connected"
	// StatusDisconnected is emitted when the socket closes unexpectedly.
	StatusDisconnected ConnectionStatus = "disconnected"
	// StatusError is emitted on socket errors, bad configuration and an exhausted reconnect budget.
	StatusError ConnectionStatus = "error"
)

// StatusMessage is a connection status change.
type StatusMessage struct {
	Status ConnectionStatus `json:"status"`
	Reason string           `json:"reason,omitempty"`
}

// MessageType discriminates broadcast envelopes.
type MessageType string

const (
	// MessageTypeTick carries a Tick.
	MessageTypeTick MessageType = "tick"
	// MessageTypeAverage carries a HourlySnapshot.
	MessageTypeAverage MessageType = "avg"
	// MessageTypeStatus carries a StatusMessage.
	MessageTypeStatus MessageType = "status"
)

// Envelope is the frame pushed to every subscriber.
type Envelope struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// HourlyAverage is a persisted, completed hour.
type HourlyAverage struct {
	Pair          Pair      `json:"pair"`
	HourStartUTC  time.Time `json:"hourStartUtc"`
	AvgPrice      float64   `json:"avgPrice"`
	TickCount     int64     `json:"tickCount"`
	LastTickPrice float64   `json:"lastTickPrice"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LastTick is the most recent persisted trade for a pair.
type LastTick struct {
	Pair      Pair      `json:"pair"`
	Price     float64   `json:"price"`
	Ts        int64     `json:"ts"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AverageFilter selects persisted hours of one pair, From and To inclusive.
type AverageFilter struct {
	Pair Pair
	From time.Time
	To   time.Time
}

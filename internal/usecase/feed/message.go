package feed

// Message types exchanged with the upstream trade feed.
const (
	MessageTypeTrade     = "trade"
	MessageTypePing      = "ping"
	MessageTypePong      = "pong"
	MessageTypeSubscribe = "subscribe"
	MessageTypeError     = "error"
)

// TradeData is one trade inside a trade message.
type TradeData struct {
	Price     float64  `json:"p"`           // Last price
	Symbol    string   `json:"s"`           // Provider symbol, e.g. "BINANCE:ETHUSDT"
	Timestamp int64    `json:"t"`           // Unix timestamp in milliseconds
	Volume    float64  `json:"v,omitempty"` // Volume
	Condition []string `json:"c,omitempty"`
}

// InboundMessage is any message read from the upstream socket.
type InboundMessage struct {
	Type string      `json:"type"`
	Data []TradeData `json:"data,omitempty"`
	Msg  string      `json:"msg,omitempty"`
}

// OutboundMessage is a control message written to the upstream socket.
type OutboundMessage struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol,omitempty"`
}

func subscribeMessage(symbol string) OutboundMessage {
	return OutboundMessage{Type: MessageTypeSubscribe, Symbol: symbol}
}

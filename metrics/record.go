// metrics/record.go
package metrics

import (
	"strconv"
	"time"
)

// Side is the direction of a trade.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

// MonthStatus marks whether a month is still being traded or closed out.
type MonthStatus string

const (
	StatusActive MonthStatus = "active"
	StatusClosed MonthStatus = "closed"
)

// PnLSource records how a month's net P/L was produced.
type PnLSource string

const (
	SourceManual PnLSource = "manual"
	SourceTrades PnLSource = "trades"
)

// MonthRecord is one monthly ledger snapshot. The capital fields are
// user-supplied; GrossChange, NetProfitLoss and ReturnPercentage are
// always recomputed from them via CalcMonthMetrics and must never be
// set any other way.
type MonthRecord struct {
	ID        string `json:"id"`
	Month     string `json:"month"` // canonical "YYYY-MM" key
	Year      int    `json:"year"`
	MonthName string `json:"monthName"`

	StartingCapital float64 `json:"startingCapital"`
	EndingCapital   float64 `json:"endingCapital"`
	Deposits        float64 `json:"deposits"`
	Withdrawals     float64 `json:"withdrawals"`

	GrossChange      float64 `json:"grossChange"`
	NetProfitLoss    float64 `json:"netProfitLoss"`
	ReturnPercentage float64 `json:"returnPercentage"`

	Status    MonthStatus `json:"status"`
	PnLSource PnLSource   `json:"pnlSource"`
	Notes     string      `json:"notes"`

	CreatedAt int64 `json:"createdAt"` // epoch millis
	UpdatedAt int64 `json:"updatedAt"`
}

// Trade is one closed trade execution. PnL, ReturnPercentage, IsWin and
// MonthKey are derived from the inputs and recomputed on every edit.
type Trade struct {
	ID         string   `json:"id"`
	Symbol     string   `json:"symbol"`
	Side       Side     `json:"tradeType"`
	EntryDate  string   `json:"entryDate"` // "YYYY-MM-DD"
	ExitDate   string   `json:"exitDate"`
	EntryPrice float64  `json:"entryPrice"`
	ExitPrice  float64  `json:"exitPrice"`
	Quantity   float64  `json:"quantity"`
	Tags       []string `json:"tags"`
	Notes      string   `json:"notes"`

	PnL              float64 `json:"pnl"`
	ReturnPercentage float64 `json:"returnPercentage"`
	IsWin            bool    `json:"isWin"`
	MonthKey         string  `json:"monthKey"` // month the trade closed in

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// MonthInput is the raw form shape for a month. All numeric fields are
// strings; coercion happens at this boundary, not in the calculators.
type MonthInput struct {
	Month           string
	StartingCapital string
	EndingCapital   string
	Deposits        string
	Withdrawals     string
	Status          MonthStatus
	PnLSource       PnLSource
	Notes           string
}

// TradeInput is the raw form shape for a trade.
type TradeInput struct {
	Symbol     string
	Side       Side
	EntryDate  string
	ExitDate   string
	EntryPrice string
	ExitPrice  string
	Quantity   string
	Tags       string // comma-separated
	Notes      string
}

// NewMonthRecord builds a MonthRecord from raw form input. Validation
// belongs to the form layer; unparseable amounts coerce to 0 and the
// derived fields are always computed here, never taken from the input.
func NewMonthRecord(id string, in MonthInput) MonthRecord {
	key := NormalizeMonthKey(in.Month)

	year := 0
	name := ""
	if t, err := time.Parse("2006-01", key); err == nil {
		year = t.Year()
		name = t.Format("January 2006")
	} else if len(key) >= 4 {
		year, _ = strconv.Atoi(key[:4])
	}

	starting := ParseAmount(in.StartingCapital)
	ending := ParseAmount(in.EndingCapital)
	deposits := ParseAmount(in.Deposits)
	withdrawals := ParseAmount(in.Withdrawals)

	m := CalcMonthMetrics(starting, ending, deposits, withdrawals)

	status := in.Status
	if status == "" {
		status = StatusActive
	}
	source := in.PnLSource
	if source == "" {
		source = SourceManual
	}

	now := time.Now().UnixMilli()
	return MonthRecord{
		ID:               id,
		Month:            key,
		Year:             year,
		MonthName:        name,
		StartingCapital:  starting,
		EndingCapital:    ending,
		Deposits:         deposits,
		Withdrawals:      withdrawals,
		GrossChange:      m.GrossChange,
		NetProfitLoss:    m.NetProfitLoss,
		ReturnPercentage: m.ReturnPercentage,
		Status:           status,
		PnLSource:        source,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NewTradeRecord builds a Trade from raw form input. The month key is
// taken from the exit date: a trade counts toward the month it closed
// in, not the month it was opened.
func NewTradeRecord(id string, in TradeInput) Trade {
	entry := ParseAmount(in.EntryPrice)
	exit := ParseAmount(in.ExitPrice)
	qty := ParseAmount(in.Quantity)

	tm := CalcTradePnL(entry, exit, qty, in.Side)

	now := time.Now().UnixMilli()
	return Trade{
		ID:               id,
		Symbol:           NormalizeSymbol(in.Symbol),
		Side:             in.Side,
		EntryDate:        in.EntryDate,
		ExitDate:         in.ExitDate,
		EntryPrice:       entry,
		ExitPrice:        exit,
		Quantity:         qty,
		Tags:             ParseTags(in.Tags),
		Notes:            in.Notes,
		PnL:              tm.PnL,
		ReturnPercentage: tm.ReturnPercentage,
		IsWin:            tm.IsWin,
		MonthKey:         MonthKeyFromDate(in.ExitDate),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

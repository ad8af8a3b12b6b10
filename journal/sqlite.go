// journal/sqlite.go
package journal

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradejournal/metrics"
)

// Store is the SQLite-backed journal of month and trade records.
//
// The store never trusts derived fields handed to it: every save
// re-derives P/L figures from the raw inputs through the metrics
// package, so a stored row cannot drift from its inputs.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// SaveMonth inserts or replaces a month row, recomputing the derived
// fields from the capital inputs first.
func (s *Store) SaveMonth(m metrics.MonthRecord) error {
	d := metrics.CalcMonthMetrics(m.StartingCapital, m.EndingCapital, m.Deposits, m.Withdrawals)
	m.GrossChange = d.GrossChange
	m.NetProfitLoss = d.NetProfitLoss
	m.ReturnPercentage = d.ReturnPercentage

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO months
		(id, month, year, month_name, starting_capital, ending_capital, deposits, withdrawals,
		 gross_change, net_profit_loss, return_percentage, status, pnl_source, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Month, m.Year, m.MonthName, m.StartingCapital, m.EndingCapital, m.Deposits, m.Withdrawals,
		m.GrossChange, m.NetProfitLoss, m.ReturnPercentage, string(m.Status), string(m.PnLSource), m.Notes,
		m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// SaveTrade inserts or replaces a trade row, recomputing P/L and the
// month key from the raw inputs first.
func (s *Store) SaveTrade(t metrics.Trade) error {
	d := metrics.CalcTradePnL(t.EntryPrice, t.ExitPrice, t.Quantity, t.Side)
	t.PnL = d.PnL
	t.ReturnPercentage = d.ReturnPercentage
	t.IsWin = d.IsWin
	t.MonthKey = metrics.MonthKeyFromDate(t.ExitDate)

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO trades
		(id, symbol, side, entry_date, exit_date, entry_price, exit_price, quantity,
		 tags, notes, pnl, return_percentage, is_win, month_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, string(t.Side), t.EntryDate, t.ExitDate, t.EntryPrice, t.ExitPrice, t.Quantity,
		strings.Join(t.Tags, ","), t.Notes, t.PnL, t.ReturnPercentage, boolToInt(t.IsWin), t.MonthKey,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (s *Store) DeleteMonth(id string) error {
	_, err := s.db.Exec(`DELETE FROM months WHERE id = ?`, id)
	return err
}

func (s *Store) DeleteTrade(id string) error {
	_, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	return err
}

// SyncMonthFromTrades rewrites a month's ending capital so its net P/L
// equals the summed P/L of the trades that closed in it, and marks the
// month as trades-sourced. This is the alternate derivation path for
// months that mirror the trade log instead of a hand-entered figure.
func (s *Store) SyncMonthFromTrades(monthKey string) (metrics.MonthRecord, error) {
	m, err := s.GetMonthByKey(monthKey)
	if err != nil {
		return metrics.MonthRecord{}, err
	}

	trades, err := s.ListTradesByMonth(monthKey)
	if err != nil {
		return metrics.MonthRecord{}, err
	}

	pnl := metrics.MonthlyPnLFromTrades(trades, monthKey)

	// ending = starting + deposits - withdrawals + netPL inverts the
	// net P/L derivation exactly.
	m.EndingCapital = m.StartingCapital + m.Deposits - m.Withdrawals + pnl
	m.PnLSource = metrics.SourceTrades
	m.UpdatedAt = time.Now().UnixMilli()

	if err := s.SaveMonth(m); err != nil {
		return metrics.MonthRecord{}, err
	}
	return s.GetMonthByKey(monthKey)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

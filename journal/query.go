// journal/query.go
package journal

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rustyeddy/tradejournal/metrics"
)

const monthColumns = `id, month, year, month_name, starting_capital, ending_capital, deposits, withdrawals,
	gross_change, net_profit_loss, return_percentage, status, pnl_source, notes, created_at, updated_at`

const tradeColumns = `id, symbol, side, entry_date, exit_date, entry_price, exit_price, quantity,
	tags, notes, pnl, return_percentage, is_win, month_key, created_at, updated_at`

// GetMonth returns a single month record by ID.
func (s *Store) GetMonth(id string) (metrics.MonthRecord, error) {
	row := s.db.QueryRow(`SELECT `+monthColumns+` FROM months WHERE id = ?`, id)
	m, err := scanMonth(row)
	if err == sql.ErrNoRows {
		return metrics.MonthRecord{}, fmt.Errorf("month %q not found", id)
	}
	return m, err
}

// GetMonthByKey returns the month record for a "YYYY-MM" key.
func (s *Store) GetMonthByKey(key string) (metrics.MonthRecord, error) {
	row := s.db.QueryRow(`SELECT `+monthColumns+` FROM months WHERE month = ?`, key)
	m, err := scanMonth(row)
	if err == sql.ErrNoRows {
		return metrics.MonthRecord{}, fmt.Errorf("month %q not found", key)
	}
	return m, err
}

// ListMonths returns all month records, oldest first by month key.
func (s *Store) ListMonths() ([]metrics.MonthRecord, error) {
	rows, err := s.db.Query(`SELECT ` + monthColumns + ` FROM months ORDER BY month ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []metrics.MonthRecord
	for rows.Next() {
		m, err := scanMonth(rows)
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// GetTrade returns a single trade record by ID.
func (s *Store) GetTrade(id string) (metrics.Trade, error) {
	row := s.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)
	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return metrics.Trade{}, fmt.Errorf("trade %q not found", id)
	}
	return t, err
}

// ListTrades returns all trades, oldest first by exit date. Rowid order
// breaks same-day ties so insertion order is stable.
func (s *Store) ListTrades() ([]metrics.Trade, error) {
	return s.listTrades(`SELECT ` + tradeColumns + ` FROM trades ORDER BY exit_date ASC, rowid ASC`)
}

// ListTradesByMonth returns the trades that closed in the given month,
// oldest first.
func (s *Store) ListTradesByMonth(monthKey string) ([]metrics.Trade, error) {
	return s.listTrades(`SELECT `+tradeColumns+` FROM trades WHERE month_key = ? ORDER BY exit_date ASC, rowid ASC`, monthKey)
}

func (s *Store) listTrades(query string, args ...any) ([]metrics.Trade, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []metrics.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMonth(row scanner) (metrics.MonthRecord, error) {
	var m metrics.MonthRecord
	var status, source string
	err := row.Scan(
		&m.ID, &m.Month, &m.Year, &m.MonthName,
		&m.StartingCapital, &m.EndingCapital, &m.Deposits, &m.Withdrawals,
		&m.GrossChange, &m.NetProfitLoss, &m.ReturnPercentage,
		&status, &source, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return metrics.MonthRecord{}, err
	}
	m.Status = metrics.MonthStatus(status)
	m.PnLSource = metrics.PnLSource(source)
	return m, nil
}

func scanTrade(row scanner) (metrics.Trade, error) {
	var t metrics.Trade
	var side, tags string
	var isWin int
	err := row.Scan(
		&t.ID, &t.Symbol, &side, &t.EntryDate, &t.ExitDate,
		&t.EntryPrice, &t.ExitPrice, &t.Quantity,
		&tags, &t.Notes, &t.PnL, &t.ReturnPercentage, &isWin, &t.MonthKey,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return metrics.Trade{}, err
	}
	t.Side = metrics.Side(side)
	t.IsWin = isWin != 0
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	return t, nil
}

// Package store persists the stash document in a local SQLite database.
// The document is read whole and written whole; every save replaces the
// previous state in a single transaction.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/stash/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed document persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the document database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening document db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the document database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the whole document. A fresh database yields a default
// document; missing fields default to their zero values.
func (s *Store) Load() (*model.Document, error) {
	doc := &model.Document{}

	var tos int
	err := s.db.QueryRow("SELECT total_savings, last_login_date, tos_agreed FROM document WHERE id = 1").
		Scan(&doc.TotalSavings, &doc.LastLoginDate, &tos)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	doc.TosAgreed = tos != 0

	if err := s.loadPlans(doc); err != nil {
		return nil, err
	}
	if err := s.loadDocHistory(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *Store) loadPlans(doc *model.Document) error {
	rows, err := s.db.Query(`SELECT
		id, name, start_date, end_date, goal, mode, penalty_mode,
		day_active, daily_allowance, daily_spent, daily_savings_goal,
		total_saved, total_spent, penalty_debt
		FROM plans ORDER BY position`)
	if err != nil {
		return fmt.Errorf("loading plans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p model.Plan
		var mode string
		var penalty, active int

		err := rows.Scan(
			&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Goal, &mode, &penalty,
			&active, &p.DailyAllowance, &p.DailySpent, &p.DailySavingsGoal,
			&p.TotalSaved, &p.TotalSpent, &p.PenaltyDebt,
		)
		if err != nil {
			return fmt.Errorf("scanning plan: %w", err)
		}

		p.Mode, _ = model.ParseMode(mode)
		p.PenaltyMode = penalty != 0
		p.DayActive = active != 0
		doc.Plans = append(doc.Plans, &p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, p := range doc.Plans {
		if err := s.loadPlanChildren(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadPlanChildren(p *model.Plan) error {
	rows, err := s.db.Query(
		"SELECT start_date, end_date FROM plan_exclusions WHERE plan_id = ? ORDER BY position", p.ID)
	if err != nil {
		return fmt.Errorf("loading exclusions: %w", err)
	}
	for rows.Next() {
		var r model.DateRange
		if err := rows.Scan(&r.Start, &r.End); err != nil {
			_ = rows.Close()
			return err
		}
		p.Exclusions = append(p.Exclusions, r)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.Query(
		"SELECT name, price FROM plan_products WHERE plan_id = ? ORDER BY position", p.ID)
	if err != nil {
		return fmt.Errorf("loading products: %w", err)
	}
	for rows.Next() {
		var prod model.Product
		if err := rows.Scan(&prod.Name, &prod.Price); err != nil {
			_ = rows.Close()
			return err
		}
		p.Products = append(p.Products, prod)
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	rows, err = s.db.Query(
		"SELECT date, total_saved FROM plan_history WHERE plan_id = ? ORDER BY position", p.ID)
	if err != nil {
		return fmt.Errorf("loading plan history: %w", err)
	}
	for rows.Next() {
		var snap model.PlanSnapshot
		if err := rows.Scan(&snap.Date, &snap.TotalSaved); err != nil {
			_ = rows.Close()
			return err
		}
		p.History = append(p.History, snap)
	}
	return closeRows(rows)
}

func (s *Store) loadDocHistory(doc *model.Document) error {
	rows, err := s.db.Query("SELECT date, savings FROM doc_history ORDER BY position")
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	for rows.Next() {
		var snap model.SavingsSnapshot
		if err := rows.Scan(&snap.Date, &snap.Savings); err != nil {
			_ = rows.Close()
			return err
		}
		doc.History = append(doc.History, snap)
	}
	return closeRows(rows)
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}

// Save writes the whole document, replacing any previous state, in one
// transaction.
func (s *Store) Save(doc *model.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"plan_exclusions", "plan_products", "plan_history", "plans", "doc_history", "document"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO document (id, total_savings, last_login_date, tos_agreed) VALUES (1, ?, ?, ?)",
		doc.TotalSavings, doc.LastLoginDate, boolInt(doc.TosAgreed),
	)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	for pos, p := range doc.Plans {
		if err := savePlan(tx, pos, p); err != nil {
			return err
		}
	}

	for pos, snap := range doc.History {
		_, err := tx.Exec(
			"INSERT INTO doc_history (position, date, savings) VALUES (?, ?, ?)",
			pos, snap.Date, snap.Savings,
		)
		if err != nil {
			return fmt.Errorf("saving history: %w", err)
		}
	}

	return tx.Commit()
}

func savePlan(tx *sql.Tx, pos int, p *model.Plan) error {
	_, err := tx.Exec(`INSERT INTO plans
		(id, position, name, start_date, end_date, goal, mode, penalty_mode,
		 day_active, daily_allowance, daily_spent, daily_savings_goal,
		 total_saved, total_spent, penalty_debt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, pos, p.Name, p.StartDate, p.EndDate, p.Goal, p.Mode.String(),
		boolInt(p.PenaltyMode), boolInt(p.DayActive), p.DailyAllowance,
		p.DailySpent, p.DailySavingsGoal, p.TotalSaved, p.TotalSpent, p.PenaltyDebt,
	)
	if err != nil {
		return fmt.Errorf("saving plan %s: %w", p.ID, err)
	}

	for i, r := range p.Exclusions {
		_, err := tx.Exec(
			"INSERT INTO plan_exclusions (plan_id, position, start_date, end_date) VALUES (?, ?, ?, ?)",
			p.ID, i, r.Start, r.End,
		)
		if err != nil {
			return fmt.Errorf("saving exclusions for %s: %w", p.ID, err)
		}
	}

	for i, prod := range p.Products {
		_, err := tx.Exec(
			"INSERT INTO plan_products (plan_id, position, name, price) VALUES (?, ?, ?, ?)",
			p.ID, i, prod.Name, prod.Price,
		)
		if err != nil {
			return fmt.Errorf("saving products for %s: %w", p.ID, err)
		}
	}

	for i, snap := range p.History {
		_, err := tx.Exec(
			"INSERT INTO plan_history (plan_id, position, date, total_saved) VALUES (?, ?, ?, ?)",
			p.ID, i, snap.Date, snap.TotalSaved,
		)
		if err != nil {
			return fmt.Errorf("saving history for %s: %w", p.ID, err)
		}
	}

	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package readstore

import (
	"context"
	"fmt"
	"strings"

	"cozycup/internal/infra"
	"cozycup/internal/infra/db"
	"cozycup/internal/infra/repository/converter"

	"github.com/jackc/pgx/v5"
)

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends cond, whose single %d is replaced by the next placeholder number.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT and OFFSET placeholders and returns the full argument list.
func (w *where) page(limit, offset int) (string, []any) {
	args := append(append([]any{}, w.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

func count(ctx context.Context, dbtx db.DBTX, query string, args []any, what string) (int, error) {
	var n int
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count "+what, err)
	}
	return n, nil
}

// collect scans every row with scan and maps it through view.
func collect[E, V any](rows pgx.Rows, scan func(converter.Row) (E, error), view func(E) V) ([]V, error) {
	defer rows.Close()
	var out []V
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, view(e))
	}
	return out, rows.Err()
}

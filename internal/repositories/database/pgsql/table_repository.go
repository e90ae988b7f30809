package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// tableDef describes how one domain entity is laid out in its table.
// columns[0] is the primary key and values must return arguments in column order.
type tableDef[M any, D any] struct {
	table    string
	columns  []string
	orderBy  string
	toDomain func(M) D
	toModel  func(D) M
	values   func(M) []any
	// deleteInUse is reported when a delete is blocked by a foreign key.
	deleteInUse error
}

// PgxTableRepository implements portsrepo.TableService over a single table.
type PgxTableRepository[M any, D any] struct {
	BaseRepository
	def tableDef[M, D]
}

func newPgxTableRepository[M any, D any](pool *pgxpool.Pool, def tableDef[M, D]) *PgxTableRepository[M, D] {
	return &PgxTableRepository[M, D]{
		BaseRepository: BaseRepository{Pool: pool},
		def:            def,
	}
}

func (r *PgxTableRepository[M, D]) columnList() string {
	return strings.Join(r.def.columns, ", ")
}

// Select returns every row of the table.
func (r *PgxTableRepository[M, D]) Select(ctx context.Context) ([]D, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", r.columnList(), r.def.table, r.def.orderBy)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.def.table, err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", r.def.table, err)
	}

	out := make([]D, len(modelRows))
	for i, m := range modelRows {
		out[i] = r.def.toDomain(m)
	}
	return out, nil
}

// Insert stores row, assigning a fresh UUID when its id is empty, and returns the stored row.
func (r *PgxTableRepository[M, D]) Insert(ctx context.Context, row D) (D, error) {
	return r.insert(ctx, r.Pool, row)
}

func (r *PgxTableRepository[M, D]) insert(ctx context.Context, q querier, row D) (D, error) {
	var zero D
	args := r.def.values(r.def.toModel(row))
	if id, _ := args[0].(string); id == "" {
		args[0] = uuid.NewString()
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.def.table, r.columnList(), strings.Join(placeholders, ", "), r.columnList())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to insert into %s: %w", r.def.table, translatePgError(err, nil))
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		return zero, fmt.Errorf("failed to insert into %s: %w", r.def.table, translatePgError(err, nil))
	}
	return r.def.toDomain(stored), nil
}

// Update overwrites every non-key column of the row with the same id.
func (r *PgxTableRepository[M, D]) Update(ctx context.Context, row D) error {
	args := r.def.values(r.def.toModel(row))
	sets := make([]string, 0, len(r.def.columns)-1)
	for i, col := range r.def.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1",
		r.def.table, strings.Join(sets, ", "), r.def.columns[0])

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.def.table, translatePgError(err, nil))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s row %v not found: %w", r.def.table, args[0], apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *PgxTableRepository[M, D]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.def.table, r.def.columns[0])
	cmdTag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.def.table, translatePgError(err, r.def.deleteInUse))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s row %s not found: %w", r.def.table, id, apperrors.ErrNotFound)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tutionapp/backend/internal/app/repositories"
	"github.com/tutionapp/backend/internal/db"
)

// stmtResult is one scripted statement outcome, consumed in call order.
// tag feeds Exec, rows feeds Query and QueryRow, err fails the call.
type stmtResult struct {
	tag  string
	rows [][]any
	err  error
}

// dbCall records one statement the code under test issued.
type dbCall struct {
	sql  string
	args []any
}

// script is the shared statement queue and call log behind the fake
// transaction and querier.
type script struct {
	results []stmtResult
	calls   []dbCall
	events  []string
}

func (s *script) next(sql string, args []any) stmtResult {
	s.calls = append(s.calls, dbCall{sql: sql, args: args})
	if len(s.results) == 0 {
		return stmtResult{err: fmt.Errorf("unscripted statement: %s", sql)}
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

// callsMatching returns the recorded statements containing substr.
func (s *script) callsMatching(substr string) []dbCall {
	var out []dbCall
	for _, c := range s.calls {
		if strings.Contains(c.sql, substr) {
			out = append(out, c)
		}
	}
	return out
}

func (s *script) hasEvent(event string) bool {
	for _, e := range s.events {
		if e == event {
			return true
		}
	}
	return false
}

// assign copies a scripted row into scan destinations, converting where the
// destination is a named type over the same kind (models.Role over string).
func assign(src []any, dest []any) error {
	if len(src) != len(dest) {
		return fmt.Errorf("scan wants %d values, scripted row has %d", len(dest), len(src))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		sv := reflect.ValueOf(src[i])
		if !sv.Type().AssignableTo(dv.Type()) {
			if !sv.Type().ConvertibleTo(dv.Type()) {
				return fmt.Errorf("cannot scan %T into %T", src[i], dest[i])
			}
			sv = sv.Convert(dv.Type())
		}
		dv.Set(sv)
	}
	return nil
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.vals == nil {
		return pgx.ErrNoRows
	}
	return assign(r.vals, dest)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { r.idx++; return r.idx <= len(r.rows) }
func (r *fakeRows) Scan(dest ...any) error                       { return assign(r.rows[r.idx-1], dest) }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.idx-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

// fakeTx satisfies pgx.Tx against the script. Begin hands out a savepoint
// view sharing the same statement queue.
type fakeTx struct {
	script    *script
	savepoint bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) {
	t.script.events = append(t.script.events, "savepoint")
	return &fakeTx{script: t.script, savepoint: true}, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.savepoint {
		t.script.events = append(t.script.events, "release savepoint")
	} else {
		t.script.events = append(t.script.events, "commit")
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.savepoint {
		t.script.events = append(t.script.events, "rollback savepoint")
	} else {
		t.script.events = append(t.script.events, "rollback")
	}
	return nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	r := t.script.next(sql, arguments)
	if r.err != nil {
		return pgconn.CommandTag{}, r.err
	}
	return pgconn.NewCommandTag(r.tag), nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	r := t.script.next(sql, args)
	if r.err != nil {
		return nil, r.err
	}
	return &fakeRows{rows: r.rows}, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	r := t.script.next(sql, args)
	if r.err != nil {
		return fakeRow{err: r.err}
	}
	if len(r.rows) == 0 {
		return fakeRow{}
	}
	return fakeRow{vals: r.rows[0]}
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, fmt.Errorf("copy from is not scripted")
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, fmt.Errorf("prepare is not scripted")
}
func (t *fakeTx) Conn() *pgx.Conn { return nil }

// fakeDatabase hands every transaction function the scripted fake tx.
type fakeDatabase struct {
	tx *fakeTx
}

func (f *fakeDatabase) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if err := fn(ctx, f.tx); err != nil {
		f.tx.script.events = append(f.tx.script.events, "rollback")
		return err
	}
	f.tx.script.events = append(f.tx.script.events, "commit")
	return nil
}

// newScripted builds the scripted database and repositories every service
// test starts from. The fake tx doubles as the base querier so both
// transactional and read-only paths consume the same queue.
func newScripted(results ...stmtResult) (*script, Database, *repositories.Repositories) {
	s := &script{results: results}
	tx := &fakeTx{script: s}
	return s, &fakeDatabase{tx: tx}, repositories.NewRepositories(tx)
}

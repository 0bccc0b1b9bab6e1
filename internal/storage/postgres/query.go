package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/storage"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// assignments collects "column = $n" pairs for a partial UPDATE.
type assignments struct {
	sets []string
	args []any
}

func (a *assignments) set(column string, value any) {
	a.args = append(a.args, value)
	a.sets = append(a.sets, fmt.Sprintf("%s = $%d", column, len(a.args)))
}

// update renders the UPDATE statement, stamping the audit columns and targeting id.
// The result is suitable as a CTE body when returning is "*".
func (a *assignments) update(table string, id uuid.UUID, modifiedBy uuid.NullUUID, returning string) (string, []any) {
	a.set("modified_by", modifiedBy)
	sets := append(a.sets, "modified_at = NOW()")
	args := append(a.args, id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning), args
}

// conditions collects WHERE predicates. Each predicate carries one %d verb for its placeholder.
type conditions struct {
	preds []string
	args  []any
}

func (c *conditions) add(pred string, value any) {
	c.args = append(c.args, value)
	c.preds = append(c.preds, fmt.Sprintf(pred, len(c.args)))
}

func (c *conditions) where() string {
	if len(c.preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.preds, " AND ")
}

// paged appends LIMIT/OFFSET placeholders and returns the final argument list.
func (c *conditions) paged(page storage.Page) (string, []any) {
	args := append(append([]any{}, c.args...), page.Limit, page.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

package gateway

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLGateway runs queries through gorm.
type SQLGateway struct {
	db *gorm.DB
}

func NewSQLGateway(db *gorm.DB) *SQLGateway {
	return &SQLGateway{db: db}
}

func (g *SQLGateway) scoped(ctx context.Context, q *Query) *gorm.DB {
	tx := g.db.WithContext(ctx).Table(q.Table)
	for _, f := range q.Filters {
		tx = tx.Where(filterExpression(f))
	}
	for _, group := range q.AnyOf {
		exprs := make([]clause.Expression, 0, len(group))
		for _, f := range group {
			exprs = append(exprs, filterExpression(f))
		}
		tx = tx.Where(clause.Or(exprs...))
	}
	return tx
}

func (g *SQLGateway) Select(ctx context.Context, q *Query, dest any) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if !isSlicePtr(dest) {
		return 0, ErrInvalidDestination
	}

	var total int64
	if q.Count {
		if err := g.scoped(ctx, q).Count(&total).Error; err != nil {
			return 0, fmt.Errorf("count %s: %w", q.Table, err)
		}
	}

	tx := g.scoped(ctx, q)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, o := range q.Orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if err := tx.Find(dest).Error; err != nil {
		return 0, fmt.Errorf("select %s: %w", q.Table, err)
	}
	return total, nil
}

func (g *SQLGateway) Insert(ctx context.Context, table string, row any) error {
	if err := ValidateIdentifier(table); err != nil {
		return err
	}
	if err := g.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (g *SQLGateway) Update(ctx context.Context, q *Query, values map[string]any) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if !q.HasFilters() {
		return 0, ErrUnfilteredUpdate
	}
	for col := range values {
		if err := ValidateIdentifier(col); err != nil {
			return 0, err
		}
	}

	res := g.scoped(ctx, q).Updates(values)
	if res.Error != nil {
		return 0, fmt.Errorf("update %s: %w", q.Table, res.Error)
	}
	return res.RowsAffected, nil
}

func (g *SQLGateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// sqlLikeEscape is accepted unchanged inside a string literal by PostgreSQL,
// MySQL and SQLite, unlike a backslash.
const sqlLikeEscape = '!'

func filterExpression(f Filter) clause.Expression {
	col := clause.Column{Name: f.Column}
	switch f.Op {
	case OpNeq:
		return clause.Neq{Column: col, Value: f.Value}
	case OpGt:
		return clause.Gt{Column: col, Value: f.Value}
	case OpGte:
		return clause.Gte{Column: col, Value: f.Value}
	case OpLt:
		return clause.Lt{Column: col, Value: f.Value}
	case OpLte:
		return clause.Lte{Column: col, Value: f.Value}
	case OpIn:
		return clause.IN{Column: col, Values: f.Value.([]any)}
	case OpNotIn:
		return clause.Not(clause.IN{Column: col, Values: f.Value.([]any)})
	case OpContains:
		pattern := "%" + escapeLike(strings.ToLower(f.Value.(string)), sqlLikeEscape) + "%"
		return clause.Expr{SQL: "LOWER(?) LIKE ? ESCAPE '" + string(sqlLikeEscape) + "'", Vars: []any{col, pattern}}
	default:
		return clause.Eq{Column: col, Value: f.Value}
	}
}

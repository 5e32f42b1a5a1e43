package repo

import (
	"context"
	"fmt"

	"github.com/cowboylogic-net/bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

func (r *cartRepo) ListLines(ctx context.Context, ownerID string) ([]entities.CartLine, error) {
	query, args := r.qb.Select("owner_id", "product_id", "quantity").
		From("cart_lines").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("product_id").
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart lines: %w", err)
	}

	result := make([]entities.CartLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, CartLineToEntity(l))
	}
	return result, nil
}

// Clear вызывается только внутри транзакции чекаута/материализации,
// чтобы чтение и очистка корзины не разъезжались.
func (r *cartRepo) Clear(ctx context.Context, ownerID string) error {
	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"owner_id": ownerID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

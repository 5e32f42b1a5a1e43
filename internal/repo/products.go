package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cowboylogic-net/bookstore/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productRepo struct {
	base
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{base: newBase(db)}
}

func (r *productRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(
		"product_id", "title", "price", "partner_price",
		"stock", "available", "wholesale_eligible").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

// TryDecrementStock атомарно списывает qty единиц товара, если остатка хватает.
// Проверка и запись выполняются одним условным UPDATE, окна для гонки нет.
// false означает окончательное "не хватает остатка", а не повторяемую ошибку.
// Это единственный легальный путь уменьшения остатка.
func (r *productRepo) TryDecrementStock(ctx context.Context, productID string, qty int) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, qty)
	}

	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Set("available", sq.Expr("stock - ? > 0", qty)).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

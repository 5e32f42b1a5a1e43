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

type customerRepo struct {
	base
}

func NewCustomerRepo(db *sqlx.DB) *customerRepo {
	return &customerRepo{base: newBase(db)}
}

// GetCustomer резолвит локального покупателя по reference-полю провайдера.
func (r *customerRepo) GetCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	query, args := r.qb.Select("customer_id", "email", "partner").
		From("customers").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrNoCustomer
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return CustomerToEntity(customer), nil
}

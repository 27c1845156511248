package repository

import (
	"context"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
)

type PaymentMethodRepo struct {
	methods []model.PaymentMethod
}

func NewPaymentMethodRepo(methods []model.PaymentMethod) *PaymentMethodRepo {
	return &PaymentMethodRepo{methods: methods}
}

// ListActive returns the methods a booking may be paid with.
func (r *PaymentMethodRepo) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	return lo.Filter(r.methods, func(m model.PaymentMethod, _ int) bool { return m.IsActive }), nil
}

// GetByType returns ErrPaymentMethodNotFound for unknown types.
func (r *PaymentMethodRepo) GetByType(ctx context.Context, t model.PaymentType) (model.PaymentMethod, error) {
	m, ok := lo.Find(r.methods, func(m model.PaymentMethod) bool { return m.Type == t })
	if !ok {
		return model.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return m, nil
}

package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/iliyamo/eventistan/internal/model"
)

// VendorRepo serves the vendor catalog and its reviews.
type VendorRepo struct {
	vendors []model.Vendor
	reviews []model.VendorReview
}

func NewVendorRepo(vendors []model.Vendor, reviews []model.VendorReview) *VendorRepo {
	return &VendorRepo{vendors: vendors, reviews: reviews}
}

// List returns every vendor in catalog order.
func (r *VendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	return lo.Map(r.vendors, func(v model.Vendor, _ int) model.Vendor { return v.Clone() }), nil
}

// GetByID returns ErrVendorNotFound when id is unknown.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (model.Vendor, error) {
	v, ok := lo.Find(r.vendors, func(v model.Vendor) bool { return v.ID == id })
	if !ok {
		return model.Vendor{}, fmt.Errorf("%w: %s", ErrVendorNotFound, id)
	}
	return v.Clone(), nil
}

// Reviews returns the reviews left for vendorID, newest first.
func (r *VendorRepo) Reviews(ctx context.Context, vendorID string) ([]model.VendorReview, error) {
	out := lo.Filter(r.reviews, func(rv model.VendorReview, _ int) bool { return rv.VendorID == vendorID })
	out = lo.Map(out, func(rv model.VendorReview, _ int) model.VendorReview {
		rv.User = rv.User.Clone()
		if rv.Response != nil {
			resp := *rv.Response
			rv.Response = &resp
		}
		return rv
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

package response

import (
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Page mirrors queries.Page with response items.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// From copies a query view into the response type R.
func From[R any](view any) (*R, error) {
	var out R
	if err := copier.Copy(&out, view); err != nil {
		return nil, errs.Wrapf(err, "map %T", view)
	}
	return &out, nil
}

func FromPage[R, V any](p *queries.Page[V]) (*Page[R], error) {
	items := make([]R, 0, len(p.Items))
	if err := copier.Copy(&items, p.Items); err != nil {
		return nil, errs.Wrap(err, "map page items")
	}
	return &Page[R]{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}, nil
}

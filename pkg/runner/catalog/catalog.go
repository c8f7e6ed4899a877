package catalog

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/negocio/pkg/catalog"
	"tableflip.dev/negocio/pkg/printers"
)

// Catalog prints the service price list.
type Catalog struct {
	Currency string
	Services []catalog.Service
}

func (c *Catalog) Do(ctx context.Context) error {
	if c.Services == nil {
		return errors.New("can not print, no catalog")
	}

	pp := printers.PrettyPrint{Currency: c.Currency}

	fmt.Println("")
	pp.Title("Servicios")
	pp.Catalog(c.Services...)

	return nil
}

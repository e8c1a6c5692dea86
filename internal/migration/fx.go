// Package migration creates the schema at startup so the service is usable
// out of the box on any of the supported dialects.
package migration

import (
	companydomain "github.com/smallbiznis/gstbill/internal/company/domain"
	customerdomain "github.com/smallbiznis/gstbill/internal/customer/domain"
	invoicedomain "github.com/smallbiznis/gstbill/internal/invoice/domain"
	productdomain "github.com/smallbiznis/gstbill/internal/product/domain"
	supplierdomain "github.com/smallbiznis/gstbill/internal/supplier/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(Run),
)

func Run(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&companydomain.Profile{},
		&customerdomain.Customer{},
		&supplierdomain.Supplier{},
		&productdomain.Product{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
	)
}

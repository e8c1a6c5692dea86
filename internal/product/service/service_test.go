package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/gstbill/internal/product/domain"
	"github.com/smallbiznis/gstbill/internal/product/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func d(v string) decimal.Decimal {
	out, _ := decimal.NewFromString(v)
	return out
}

func newService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateProduct(t *testing.T) {
	svc := newService(t)

	product, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:           "Copper Wire 2mm",
		HSNCode:        "7408",
		UnitPrice:      d("240.50"),
		TaxRatePercent: d("18"),
		StockQuantity:  d("120"),
	})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, product.Active)

	fetched, err := svc.GetByID(context.Background(), product.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Copper Wire 2mm", fetched.Name)
	assert.True(t, fetched.UnitPrice.Equal(d("240.50")))
}

func TestCreateProductValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateProductRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateProductRequest{Name: "X", UnitPrice: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPrice)

	_, err = svc.Create(ctx, domain.CreateProductRequest{Name: "X", TaxRatePercent: d("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxRate)

	_, err = svc.Create(ctx, domain.CreateProductRequest{Name: "X", StockQuantity: d("-2")})
	assert.ErrorIs(t, err, domain.ErrInvalidStock)
}

func TestListLowStock(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	low, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:              "Hex Nut M10",
		UnitPrice:         d("4"),
		TaxRatePercent:    d("18"),
		StockQuantity:     d("5"),
		LowStockThreshold: d("10"),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateProductRequest{
		Name:              "Washer M10",
		UnitPrice:         d("2"),
		TaxRatePercent:    d("18"),
		StockQuantity:     d("500"),
		LowStockThreshold: d("50"),
	})
	require.NoError(t, err)

	alerts, err := svc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, low.ID, alerts[0].ID)
	assert.True(t, alerts[0].LowStock())
}

func TestUpdateProductPartial(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:           "Angle Bracket",
		UnitPrice:      d("35"),
		TaxRatePercent: d("18"),
	})
	require.NoError(t, err)

	price := d("38.50")
	updated, err := svc.Update(ctx, domain.UpdateProductRequest{
		ID:        product.ID.String(),
		UnitPrice: &price,
	})
	require.NoError(t, err)
	assert.True(t, updated.UnitPrice.Equal(price))
	assert.Equal(t, "Angle Bracket", updated.Name)
}

func TestDeleteProduct(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, domain.CreateProductRequest{
		Name:           "Obsolete Part",
		UnitPrice:      d("1"),
		TaxRatePercent: d("0"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID.String()))

	_, err = svc.GetByID(ctx, product.ID.String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

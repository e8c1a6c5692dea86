package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/gstbill/internal/company"
	companydomain "github.com/smallbiznis/gstbill/internal/company/domain"
	"github.com/smallbiznis/gstbill/internal/config"
	"github.com/smallbiznis/gstbill/internal/customer"
	customerdomain "github.com/smallbiznis/gstbill/internal/customer/domain"
	"github.com/smallbiznis/gstbill/internal/invoice"
	invoicedomain "github.com/smallbiznis/gstbill/internal/invoice/domain"
	"github.com/smallbiznis/gstbill/internal/product"
	productdomain "github.com/smallbiznis/gstbill/internal/product/domain"
	"github.com/smallbiznis/gstbill/internal/providers/pdf"
	"github.com/smallbiznis/gstbill/internal/supplier"
	supplierdomain "github.com/smallbiznis/gstbill/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	pdf.Module,
	company.Module,
	customer.Module,
	supplier.Module,
	product.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger) *gin.Engine {
	return NewEngine(log)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB
	genID  *snowflake.Node

	companySvc  companydomain.Service
	customerSvc customerdomain.Service
	supplierSvc supplierdomain.Service
	productSvc  productdomain.Service
	invoiceSvc  invoicedomain.Service
}

type ServerParams struct {
	fx.In

	Gin   *gin.Engine
	Cfg   config.Config
	DB    *gorm.DB
	GenID *snowflake.Node

	CompanySvc  companydomain.Service
	CustomerSvc customerdomain.Service
	SupplierSvc supplierdomain.Service
	ProductSvc  productdomain.Service
	InvoiceSvc  invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		companySvc:  p.CompanySvc,
		customerSvc: p.CustomerSvc,
		supplierSvc: p.SupplierSvc,
		productSvc:  p.ProductSvc,
		invoiceSvc:  p.InvoiceSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/company", s.GetCompany)
	api.PUT("/company", s.UpdateCompany)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers", s.ListSuppliers)
	api.GET("/suppliers/:id", s.GetSupplierByID)
	api.PUT("/suppliers/:id", s.UpdateSupplier)
	api.DELETE("/suppliers/:id", s.DeleteSupplier)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/alerts", s.ListLowStockProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.GET("/invoices/:id/pdf", s.DownloadInvoicePDF)
}

package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogService es una prestación del catálogo (paseo, baño, corte...).
// Rate es la tarifa plana en pesos colombianos.
type CatalogService struct {
	ID          string
	Name        string
	Description string
	Rate        decimal.Decimal
	Duration    string
	Active      bool

	CreatedAt time.Time
}

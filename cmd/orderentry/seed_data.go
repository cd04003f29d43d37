package main

import (
	"github.com/shopspring/decimal"

	"github.com/blazeris/CustomerOrders/pkg/domain/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{UPC: "716279498647", Name: "Mechanical Pencil", ListPrice: decimal.NewFromFloat(2.50), UnitsInStock: 120},
		{UPC: "042100005264", Name: "Legal Pad", ListPrice: decimal.NewFromFloat(4.15), UnitsInStock: 80},
		{UPC: "718103218436", Name: "Stapler", ListPrice: decimal.NewFromFloat(12.99), UnitsInStock: 35},
		{UPC: "024000162022", Name: "Desk Lamp", ListPrice: decimal.NewFromFloat(29.00), UnitsInStock: 12},
		{UPC: "036000291452", Name: "Whiteboard Marker", ListPrice: decimal.NewFromFloat(1.75), UnitsInStock: 200},
	}
}

package model

import "github.com/shopspring/decimal"

// SampleProducts returns the catalogue the manager starts with.
func SampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Wireless Headphones", Price: decimal.RequireFromString("89.99"), Category: "Electronics", Stock: 45, Description: "Premium noise-canceling wireless headphones with 30-hour battery life"},
		{ID: 2, Name: "Smart Watch", Price: decimal.RequireFromString("199.99"), Category: "Electronics", Stock: 30, Description: "Fitness tracking smartwatch with heart rate monitor"},
		{ID: 3, Name: "Coffee Maker", Price: decimal.RequireFromString("79.99"), Category: "Home Appliances", Stock: 20, Description: "Programmable coffee maker with thermal carafe"},
		{ID: 4, Name: "Running Shoes", Price: decimal.RequireFromString("129.99"), Category: "Sports", Stock: 60, Description: "Lightweight running shoes with cushioned sole"},
		{ID: 5, Name: "Backpack", Price: decimal.RequireFromString("49.99"), Category: "Accessories", Stock: 100, Description: "Water-resistant laptop backpack with multiple compartments"},
		{ID: 6, Name: "Bluetooth Speaker", Price: decimal.RequireFromString("59.99"), Category: "Electronics", Stock: 75, Description: "Portable waterproof Bluetooth speaker"},
		{ID: 7, Name: "Yoga Mat", Price: decimal.RequireFromString("29.99"), Category: "Sports", Stock: 85, Description: "Non-slip exercise yoga mat with carrying strap"},
		{ID: 8, Name: "Desk Lamp", Price: decimal.RequireFromString("39.99"), Category: "Home Appliances", Stock: 40, Description: "LED desk lamp with adjustable brightness"},
		{ID: 9, Name: "Water Bottle", Price: decimal.RequireFromString("24.99"), Category: "Accessories", Stock: 150, Description: "Insulated stainless steel water bottle"},
		{ID: 10, Name: "Wireless Mouse", Price: decimal.RequireFromString("34.99"), Category: "Electronics", Stock: 90, Description: "Ergonomic wireless mouse with precision tracking"},
		{ID: 11, Name: "Phone Case", Price: decimal.RequireFromString("19.99"), Category: "Accessories", Stock: 200, Description: "Protective phone case with shock absorption"},
		{ID: 12, Name: "Blender", Price: decimal.RequireFromString("69.99"), Category: "Home Appliances", Stock: 25, Description: "High-speed blender for smoothies and soups"},
	}
}

package catalog

func strPtr(s string) *string { return &s }

// defaultProducts is inserted by Seed when the catalog is empty.
var defaultProducts = []NewProduct{
	{
		Name:        "Laptop Pro X",
		Description: strPtr("Powerful laptop for professionals."),
		Price:       1500.00,
	},
	{
		Name:        "Wireless Ergonomic Mouse",
		Description: strPtr("Comfortable mouse for long use."),
		Price:       45.99,
	},
	{
		Name:        "4K Monitor 27-inch",
		Description: strPtr("Stunning visuals with vibrant colors."),
		Price:       399.00,
	},
}

package catalog

// FilterByCategory returns the products in category. An empty category means
// "no selection" and returns list unchanged.
func FilterByCategory(list []Product, category string) []Product {
	if category == "" {
		return list
	}

	out := make([]Product, 0, len(list))
	for _, p := range list {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func FilterFeatured(list []Product) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// DistinctCategories returns each category once, in first-seen order.
func DistinctCategories(list []Product) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))

	for _, p := range list {
		if _, dup := seen[p.Category]; dup {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Limit returns the first n products. n <= 0 means no limit.
func Limit(list []Product, n int) []Product {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}

type GridQuery struct {
	FeaturedOnly bool
	Category     string
	Limit        int
}

// Grid applies the featured filter, then the category filter, then the limit.
func Grid(list []Product, q GridQuery) []Product {
	out := list
	if q.FeaturedOnly {
		out = FilterFeatured(out)
	}
	out = FilterByCategory(out, q.Category)
	return Limit(out, q.Limit)
}

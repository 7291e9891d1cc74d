// Package geometry - Area aggregation
package geometry

// TotalArea sums the areas of the given shapes through the Shape
// contract alone
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

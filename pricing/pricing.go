package pricing

// servicePrices maps every bookable service to its flat price in rupees.
// Prices are fixed at booking time: an appointment's total is computed once
// on creation and never recomputed if this table changes.
var servicePrices = map[string]float64{
	"399 Offer":        399,
	"599 Offer":        599,
	"799 Offer":        799,
	"Full arm waxing":  249,
	"Under arm waxing": 99,
	"Half leg waxing":  199,
}

// serviceOrder is the display order for the booking form (offers first).
var serviceOrder = []string{
	"399 Offer",
	"599 Offer",
	"799 Offer",
	"Full arm waxing",
	"Under arm waxing",
	"Half leg waxing",
}

// Price returns the price of a single service. Unknown service names
// price at 0 rather than erroring.
func Price(serviceName string) float64 {
	return servicePrices[serviceName]
}

// TotalPrice sums Price over the selected services. Duplicates count
// multiply; unknown names contribute 0.
func TotalPrice(serviceNames []string) float64 {
	var total float64
	for _, name := range serviceNames {
		total += Price(name)
	}
	return total
}

// ServiceNames returns the bookable service names in display order.
func ServiceNames() []string {
	names := make([]string, len(serviceOrder))
	copy(names, serviceOrder)
	return names
}

package domain

// TopSeller is one row of the dashboard top-sellers board.
type TopSeller struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// RevenuePoint is one bucket of a revenue chart series.
type RevenuePoint struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}

// RevenueChart carries the monthly and weekly chart series.
type RevenueChart struct {
	Monthly []RevenuePoint `json:"monthly"`
	Weekly  []RevenuePoint `json:"weekly"`
}

// Analytics is the aggregate dashboard snapshot served by /analytics.
type Analytics struct {
	TotalUsers           int           `json:"totalUsers"`
	TotalVehicles        int           `json:"totalVehicles"`
	SoldVehicles         int           `json:"soldVehicles"`
	PendingVehicles      int           `json:"pendingVehicles"`
	ApprovedVehicles     int           `json:"approvedVehicles"`
	RejectedVehicles     int           `json:"rejectedVehicles"`
	TotalRevenue         float64       `json:"totalRevenue"`
	PlatformFeeCollected float64       `json:"platformFeeCollected"`
	RevenueGrowth        float64       `json:"revenueGrowth"`
	VehiclesSoldGrowth   float64       `json:"vehiclesSoldGrowth"`
	ActiveListingsGrowth float64       `json:"activeListingsGrowth"`
	ConversionRateGrowth float64       `json:"conversionRateGrowth"`
	AvgMargin            float64       `json:"avgMargin"`
	TopSellers           []TopSeller   `json:"topSellers"`
	Payments             *PaymentStats `json:"payments,omitempty"`
	RevenueChartData     RevenueChart  `json:"revenueChartData"`
}

// BrandAnalytics is the per-brand share of current listings.
type BrandAnalytics struct {
	Brand      string  `json:"brand"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TypeAnalytics is the per-body-type share of current listings.
type TypeAnalytics struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

package service

import (
	"sort"

	"grillmanager/internal/domain"
	"grillmanager/internal/models"
	"grillmanager/internal/repository"
	"grillmanager/pkg/location"
)

type PopularItem struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Orders    int     `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type DeliveryStats struct {
	TotalDeliveries    int     `json:"totalDeliveries"`
	AverageDistance    float64 `json:"averageDistance"`
	AverageDeliveryFee float64 `json:"averageDeliveryFee"`
}

type ZoneStats struct {
	Zone            string  `json:"zone"`
	Orders          int     `json:"orders"`
	AverageDistance float64 `json:"averageDistance"`
	AverageFee      float64 `json:"averageFee"`
}

type OrderReport struct {
	TotalOrders       int           `json:"totalOrders"`
	TotalRevenue      float64       `json:"totalRevenue"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	DeliveryStats     DeliveryStats `json:"deliveryStats"`
	PopularItems      []PopularItem `json:"popularItems"`
	DeliveryZones     []ZoneStats   `json:"deliveryZones"`
}

// AnalyticsService reduces the full order set in memory; no pagination or
// incremental aggregation.
type AnalyticsService struct {
	orders *repository.OrderRepository
}

func NewAnalyticsService(orders *repository.OrderRepository) *AnalyticsService {
	return &AnalyticsService{orders: orders}
}

func (s *AnalyticsService) OrderReport() (*OrderReport, error) {
	orders, err := s.orders.ListNotCancelled()
	if err != nil {
		return nil, err
	}
	return BuildOrderReport(orders), nil
}

// BuildOrderReport aggregates non-cancelled orders. Revenue comes from each
// order's stored total, not recomputed from line items.
func BuildOrderReport(orders []models.Order) *OrderReport {
	report := &OrderReport{
		TotalOrders:   len(orders),
		PopularItems:  []PopularItem{},
		DeliveryZones: []ZoneStats{},
	}

	for _, o := range orders {
		if o.Totals != nil {
			report.TotalRevenue += o.Totals.Total
		}
	}
	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}
	report.TotalRevenue = location.Round2(report.TotalRevenue)
	report.AverageOrderValue = location.Round2(report.AverageOrderValue)

	var deliveryOrders []models.Order
	for _, o := range orders {
		if o.Delivery != nil && o.Delivery.Fee > 0 {
			deliveryOrders = append(deliveryOrders, o)
		}
	}
	var totalDistance, totalFee float64
	for _, o := range deliveryOrders {
		totalDistance += o.Delivery.Distance
		totalFee += o.Delivery.Fee
	}
	report.DeliveryStats.TotalDeliveries = len(deliveryOrders)
	if n := len(deliveryOrders); n > 0 {
		report.DeliveryStats.AverageDistance = location.Round1(totalDistance / float64(n))
		report.DeliveryStats.AverageDeliveryFee = location.Round2(totalFee / float64(n))
	}

	report.PopularItems = popularItems(orders)
	report.DeliveryZones = zoneStats(deliveryOrders)
	return report
}

// popularItems ranks products by aggregated quantity. A slice keyed by
// first appearance plus a stable sort keeps ties deterministic.
func popularItems(orders []models.Order) []PopularItem {
	index := make(map[uint]int)
	var items []PopularItem
	for _, o := range orders {
		for _, item := range o.Items {
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			price := item.TotalPrice
			if price == 0 {
				price = item.UnitPrice
			}
			if i, ok := index[item.ProductID]; ok {
				items[i].Orders += qty
				items[i].Revenue += price
				continue
			}
			name := item.Name
			if name == "" {
				name = "Produto"
			}
			index[item.ProductID] = len(items)
			items = append(items, PopularItem{
				ProductID: item.ProductID,
				Name:      name,
				Orders:    qty,
				Revenue:   price,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Orders > items[j].Orders
	})
	if len(items) > 10 {
		items = items[:10]
	}
	if items == nil {
		items = []PopularItem{}
	}
	return items
}

func zoneStats(deliveryOrders []models.Order) []ZoneStats {
	type acc struct {
		orders        int
		totalDistance float64
		totalFee      float64
	}
	var zones []string
	accs := make(map[string]*acc)
	for _, o := range deliveryOrders {
		zone := o.Delivery.DeliveryZone
		if zone == "" {
			zone = domain.ZoneInner
		}
		if _, ok := accs[zone]; !ok {
			zones = append(zones, zone)
			accs[zone] = &acc{}
		}
		a := accs[zone]
		a.orders++
		a.totalDistance += o.Delivery.Distance
		a.totalFee += o.Delivery.Fee
	}
	out := make([]ZoneStats, 0, len(zones))
	for _, zone := range zones {
		a := accs[zone]
		out = append(out, ZoneStats{
			Zone:            zone,
			Orders:          a.orders,
			AverageDistance: a.totalDistance / float64(a.orders),
			AverageFee:      a.totalFee / float64(a.orders),
		})
	}
	return out
}

package reports

import (
	"context"
	"sort"
	"time"

	"github.com/Domenick1991/airadmin/internal/repository"
)

type ReportUseCase interface {
	RevenueByAirline(ctx context.Context, airline string, from, to time.Time) ([]AirlineRevenue, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
	BookingTrends(ctx context.Context, from, to time.Time) ([]TrendPoint, error)
	AirlinePerformance(ctx context.Context) ([]AirlinePerformance, error)
	RevenueAnalysis(ctx context.Context, from, to time.Time) (*RevenueAnalysis, error)
}

type AirlineRevenue struct {
	AirlineName       string `json:"airline_name"`
	Flights           int    `json:"flights"`
	TicketsSold       int    `json:"tickets_sold"`
	RevenueCents      int64  `json:"revenue_cents"`
	AveragePriceCents int64  `json:"average_price_cents"`
}

type DashboardStats struct {
	TotalFlights      int     `json:"total_flights"`
	TotalBookings     int     `json:"total_bookings"`
	TotalCustomers    int     `json:"total_customers"`
	TotalRevenueCents int64   `json:"total_revenue_cents"`
	AvailableSeats    int     `json:"available_seats"`
	TotalSeats        int     `json:"total_seats"`
	OccupancyRate     float64 `json:"occupancy_rate"`
}

type TrendPoint struct {
	Day          string `json:"day"`
	Bookings     int    `json:"bookings"`
	RevenueCents int64  `json:"revenue_cents"`
}

type AirlinePerformance struct {
	AirlineName          string `json:"airline_name"`
	BookedSeats          int    `json:"booked_seats"`
	TotalSeats           int    `json:"total_seats"`
	AveragePriceCents    int64  `json:"average_price_cents"`
	RevenueEstimateCents int64  `json:"revenue_estimate_cents"`
}

type RevenueAnalysis struct {
	TotalRevenueCents     int64            `json:"total_revenue_cents"`
	TotalBookings         int              `json:"total_bookings"`
	AverageBookingCents   int64            `json:"average_booking_cents"`
	RevenueByAirlineCents map[string]int64 `json:"revenue_by_airline_cents"`
}

// ReportService derives summary statistics from the persisted collections.
// Every call recomputes from the repositories; nothing is cached and nothing
// is mutated.
type ReportService struct {
	flights   repository.FlightRepository
	customers repository.CustomerRepository
	bookings  repository.BookingRepository

	now func() time.Time
}

func NewReportService(
	flights repository.FlightRepository,
	customers repository.CustomerRepository,
	bookings repository.BookingRepository,
) *ReportService {
	return &ReportService{
		flights:   flights,
		customers: customers,
		bookings:  bookings,
		now:       time.Now,
	}
}

func (s *ReportService) RevenueByAirline(ctx context.Context, airline string, from, to time.Time) ([]AirlineRevenue, error) {
	bookings, err := s.bookings.ListByAirlineAndDateRange(ctx, airline, from, to)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []AirlineRevenue{}, nil
	}

	seen := make(map[int64]struct{})
	var revenue int64
	for _, b := range bookings {
		seen[b.FlightID] = struct{}{}
		revenue += b.PriceCents
	}

	return []AirlineRevenue{{
		AirlineName:       airline,
		Flights:           len(seen),
		TicketsSold:       len(bookings),
		RevenueCents:      revenue,
		AveragePriceCents: halfUpDiv(revenue, int64(len(bookings))),
	}}, nil
}

func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	future, err := s.flights.ListFrom(ctx, today(s.now()))
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalFlights:   len(future),
		TotalBookings:  len(bookings),
		TotalCustomers: len(customers),
	}
	for _, b := range bookings {
		stats.TotalRevenueCents += b.PriceCents
	}
	var booked int
	for _, f := range future {
		stats.AvailableSeats += f.AvailableSeats()
		stats.TotalSeats += f.TotalSeats
		booked += f.BookedSeats
	}
	if stats.TotalSeats > 0 {
		stats.OccupancyRate = float64(booked) / float64(stats.TotalSeats) * 100
	}
	return stats, nil
}

func (s *ReportService) BookingTrends(ctx context.Context, from, to time.Time) ([]TrendPoint, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	fromDay, toDay := today(from), today(to)
	byDay := make(map[string]*TrendPoint)
	for _, b := range bookings {
		day := today(b.BookingDate)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		label := day.Format("2006-01-02")
		point, ok := byDay[label]
		if !ok {
			point = &TrendPoint{Day: label}
			byDay[label] = point
		}
		point.Bookings++
		point.RevenueCents += b.PriceCents
	}

	trends := make([]TrendPoint, 0, len(byDay))
	for _, point := range byDay {
		trends = append(trends, *point)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Day < trends[j].Day })
	return trends, nil
}

func (s *ReportService) AirlinePerformance(ctx context.Context) ([]AirlinePerformance, error) {
	future, err := s.flights.ListFrom(ctx, today(s.now()))
	if err != nil {
		return nil, err
	}

	type group struct {
		flights    int
		booked     int
		totalSeats int
		priceSum   int64
	}
	byAirline := make(map[string]*group)
	for _, f := range future {
		g, ok := byAirline[f.AirlineName]
		if !ok {
			g = &group{}
			byAirline[f.AirlineName] = g
		}
		g.flights++
		g.booked += f.BookedSeats
		g.totalSeats += f.TotalSeats
		g.priceSum += f.PriceCents
	}

	performance := make([]AirlinePerformance, 0, len(byAirline))
	for airline, g := range byAirline {
		avg := halfUpDiv(g.priceSum, int64(g.flights))
		performance = append(performance, AirlinePerformance{
			AirlineName:          airline,
			BookedSeats:          g.booked,
			TotalSeats:           g.totalSeats,
			AveragePriceCents:    avg,
			RevenueEstimateCents: avg * int64(g.booked),
		})
	}
	sort.Slice(performance, func(i, j int) bool { return performance[i].AirlineName < performance[j].AirlineName })
	return performance, nil
}

func (s *ReportService) RevenueAnalysis(ctx context.Context, from, to time.Time) (*RevenueAnalysis, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	airlineByFlight := make(map[int64]string, len(flights))
	for _, f := range flights {
		airlineByFlight[f.ID] = f.AirlineName
	}

	fromDay, toDay := today(from), today(to)
	analysis := &RevenueAnalysis{RevenueByAirlineCents: make(map[string]int64)}
	for _, b := range bookings {
		day := today(b.BookingDate)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		analysis.TotalBookings++
		analysis.TotalRevenueCents += b.PriceCents
		if airline, ok := airlineByFlight[b.FlightID]; ok {
			analysis.RevenueByAirlineCents[airline] += b.PriceCents
		}
	}
	if analysis.TotalBookings > 0 {
		analysis.AverageBookingCents = halfUpDiv(analysis.TotalRevenueCents, int64(analysis.TotalBookings))
	}
	return analysis, nil
}

func today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// halfUpDiv divides summed cents rounding half up, matching how averages are
// presented elsewhere in the reports.
func halfUpDiv(sum, n int64) int64 {
	if n == 0 {
		return 0
	}
	return (sum + n/2) / n
}

var _ ReportUseCase = (*ReportService)(nil)

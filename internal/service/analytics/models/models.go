package models

// HostSummary сводка хоста по всем его объявлениям
type HostSummary struct {
	Properties int // количество объявлений хоста

	TotalBookings     int
	PendingBookings   int
	ConfirmedBookings int
	CancelledBookings int
	CompletedBookings int

	// TotalRevenue сумма total_price всех неотменённых бронирований
	TotalRevenue float64

	// CancellationRate доля отменённых бронирований от общего числа, 0..1
	CancellationRate float64

	// OccupancyRate доля дней со статусом booked в календарях всех
	// объявлений хоста на ближайший горизонт, 0..1
	OccupancyRate    float64
	OccupancyHorizon int // горизонт расчёта занятости в днях
}

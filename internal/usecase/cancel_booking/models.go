package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64 // ID бронирования
	GuestID   int64 // ID гостя, запрашивающего отмену
}

// Response модель ответа с результатом отмены
type Response struct {
	BookingID     int64     // ID отменённого бронирования
	Status        string    // Всегда cancelled
	RefundPercent int       // Процент возврата по политике отмены
	RefundAmount  float64   // Сумма возврата от totalPrice
	Reason        string    // Причина, записанная в бронирование
	CancelledAt   time.Time // Время отмены
}

package decline_booking

import "time"

// Request модель запроса на отклонение бронирования хостом
type Request struct {
	BookingID int64 // ID бронирования
	HostID    int64 // ID хоста объявления
}

// Response модель ответа с результатом отклонения
// Отклонение моделируется как отмена: гость ничего не платил, возврат 100%
type Response struct {
	BookingID   int64     // ID отклонённого бронирования
	Status      string    // Всегда cancelled
	Reason      string    // Причина отмены (Declined by host)
	CancelledAt time.Time // Время отклонения
}

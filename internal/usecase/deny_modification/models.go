package deny_modification

import "time"

// Request модель запроса на отклонение изменения
type Request struct {
	BookingID      int64   // ID бронирования
	ModificationID int64   // ID запроса на изменение
	HostID         int64   // ID хоста объявления
	Reason         *string // Причина отклонения (опционально)
}

// Response модель ответа с результатом отклонения
// Бронирование возвращается к исходным датам в статусе confirmed
type Response struct {
	BookingID      int64     // ID бронирования
	ModificationID int64     // ID отклонённого запроса
	BookingStatus  string    // Статус бронирования: confirmed
	ResolvedAt     time.Time // Время отклонения
}

package request_modification

import "time"

// Request модель запроса на изменение бронирования
type Request struct {
	BookingID int64     // ID бронирования
	GuestID   int64     // ID гостя, запрашивающего изменение
	CheckIn   time.Time // Новая дата заезда
	CheckOut  time.Time // Новая дата выезда
	Guests    int       // Новое количество гостей
	Reason    string    // Причина изменения (опционально)
}

// Response модель ответа с созданным запросом на изменение
type Response struct {
	ModificationID int64     // ID запроса на изменение
	BookingID      int64     // ID бронирования
	CheckIn        time.Time // Запрошенная дата заезда
	CheckOut       time.Time // Запрошенная дата выезда
	Guests         int       // Запрошенное количество гостей
	Reason         string    // Причина изменения
	Status         string    // Статус запроса: pending
	BookingStatus  string    // Статус бронирования: modification_requested
	CreatedAt      time.Time // Время создания запроса
}

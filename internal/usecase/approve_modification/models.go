package approve_modification

import "time"

// Request модель запроса на одобрение изменения
type Request struct {
	BookingID      int64 // ID бронирования
	ModificationID int64 // ID запроса на изменение
	HostID         int64 // ID хоста объявления
}

// Response модель ответа с обновлённым бронированием
// Цена не пересчитывается: totalPrice фиксируется при создании бронирования
type Response struct {
	BookingID  int64     // ID бронирования
	CheckIn    time.Time // Новая дата заезда
	CheckOut   time.Time // Новая дата выезда
	Guests     int       // Новое количество гостей
	TotalPrice float64   // Цена без изменений
	Status     string    // Статус бронирования: confirmed
	ResolvedAt time.Time // Время одобрения
}

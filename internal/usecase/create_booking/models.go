package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	PropertyID int64     // ID объявления
	GuestID    int64     // ID гостя
	GuestName  string    // Имя гостя для отображения хосту
	CheckIn    time.Time // Дата заезда (без времени)
	CheckOut   time.Time // Дата выезда (без времени), строго позже заезда
	Guests     int       // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	PropertyID int64     // ID объявления
	GuestID    int64     // ID гостя
	GuestName  string    // Имя гостя
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	Guests     int       // Количество гостей
	Nights     int       // Количество ночей
	TotalPrice float64   // Итоговая цена (ночи * цена за ночь)
	Status     string    // Статус: confirmed при instant book, иначе pending

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package models

import "time"

// Transfer представляет запись о передаче файла.
// Сервер хранит только метаданные: где и до какого момента файл доступен.
type Transfer struct {
	ExpiresDate time.Time `json:"expires_date"`
	AuthorID    *string   `json:"author_id,omitempty"`  // слабая ссылка на Account
	APIURL      *string   `json:"api_url,omitempty"`    // hostname инстанса отправителя
	AuthorIP    *string   `json:"author_ip,omitempty"`  // только вместе с APIURL
	Latitude    *float64  `json:"latitude,omitempty"`   // вместе с Longitude
	Longitude   *float64  `json:"longitude,omitempty"`  // вместе с Latitude
	TransferID  string    `json:"transfer_id"`
	WebURL      string    `json:"web_url"`
	Nickname    string    `json:"nickname"`
	FileName    string    `json:"file_name"`
}

// Methods описывает, какие способы обнаружения задействованы
type Methods struct {
	InstanceAndIP bool `json:"instanceAndIp"`
	Location      bool `json:"location"`
	Account       bool `json:"account"`
}

// Any возвращает true, если задействован хотя бы один способ
func (m Methods) Any() bool {
	return m.InstanceAndIP || m.Location || m.Account
}

// Methods возвращает способы обнаружения, заданные у перевода
func (t *Transfer) Methods() Methods {
	return Methods{
		InstanceAndIP: t.APIURL != nil && t.AuthorIP != nil,
		Location:      t.HasLocation(),
		Account:       t.AuthorID != nil,
	}
}

// HasLocation сообщает, заданы ли обе координаты
func (t *Transfer) HasLocation() bool {
	return t.Latitude != nil && t.Longitude != nil
}

// IsExpired проверяет, истек ли перевод на момент now
func (t *Transfer) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresDate)
}

// Summary возвращает публичную проекцию перевода
func (t *Transfer) Summary() TransferSummary {
	return TransferSummary{
		ID:          t.TransferID,
		WebURL:      t.WebURL,
		ExpiresDate: t.ExpiresDate.UnixMilli(),
		Nickname:    t.Nickname,
		FileName:    t.FileName,
	}
}

// TransferSummary публичные поля перевода, отдаваемые клиентам.
// Не содержит IP автора, apiUrl, координат и authorId.
type TransferSummary struct {
	ID          string `json:"id"`
	WebURL      string `json:"webUrl"`
	Nickname    string `json:"nickname"`
	FileName    string `json:"fileName"`
	ExpiresDate int64  `json:"expiresDate"` // unix milliseconds
}

package api

import "time"

// Record представляет одну запись коллекции на проводе
type Record struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	Done      bool       `json:"done,omitempty"`
}

// ChangeSet представляет классифицированный набор изменений с момента курсора.
// Deleted содержит только идентификаторы: тело soft-deleted записи не передается.
type ChangeSet struct {
	Created []Record `json:"created"`
	Updated []Record `json:"updated"`
	Deleted []string `json:"deleted"`
}

// FullResponse представляет полный снимок коллекции от сервера
type FullResponse struct {
	ServerTime time.Time `json:"server_time"` // Авторитетное время сервера для курсора
	Records    []Record  `json:"records"`
}

// ChangesResponse представляет ответ сервера на запрос изменений
type ChangesResponse struct {
	ServerTime time.Time `json:"server_time"`
	Changes    ChangeSet `json:"changes"`
}

// UploadRequest представляет загрузку локальных изменений от клиента.
// Since — курсор клиента на момент формирования изменений. Сервер использует
// его только для проверки конфликта, не как доказательство свежести.
type UploadRequest struct {
	Since   time.Time `json:"since"`
	Changes ChangeSet `json:"changes"`
}

// UploadResponse представляет ответ сервера на успешную загрузку
type UploadResponse struct {
	ServerTime time.Time `json:"server_time"` // Новый курсор для клиента
	Applied    int       `json:"applied"`     // Количество примененных изменений
}

// ConflictResponse возвращается со статусом 409, когда курсор клиента
// отстает от курсора, записанного сервером
type ConflictResponse struct {
	ServerCursor time.Time `json:"server_cursor"`
	ClientCursor time.Time `json:"client_cursor"`
	Message      string    `json:"message,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

package directoryservice

// UserProfile профиль пользователя из справочника
type UserProfile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	SectionID   int64  `json:"section_id"`
	SectionName string `json:"section_name"`
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

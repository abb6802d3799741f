package entity

// CreateFeedbackRequest - запрос на создание отзыва
type CreateFeedbackRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=user_interface social_features content functionality performance security accessibility other"`
	Type        string `json:"type" validate:"required,oneof=feedback bug_report feature_request"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	IsAnonymous bool   `json:"is_anonymous"`
	UserName    string `json:"user_name" validate:"omitempty,max=100"`
	UserEmail   string `json:"user_email" validate:"omitempty,email"`
}

// CreateSuggestionRequest - запрос на создание предложения
type CreateSuggestionRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Category        string `json:"category" validate:"required,oneof=user_interface social_features content functionality performance security accessibility other"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	IsAnonymous     bool   `json:"is_anonymous"`
	UserName        string `json:"user_name" validate:"omitempty,max=100"`
	UserEmail       string `json:"user_email" validate:"omitempty,email"`
	ExpectedBenefit string `json:"expected_benefit" validate:"omitempty,max=1000"`
}

// TriageRequest - запрос администратора на обновление записи
// Разрешены только поля триажа: любые другие поля в теле запроса отклоняются,
// администратор не может переписывать пользовательский контент
type TriageRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending reviewed in_progress resolved closed"`
	Priority      *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AdminNotes    *string `json:"admin_notes" validate:"omitempty,max=2000"`
	AdminResponse *string `json:"admin_response" validate:"omitempty,max=2000"`
}

// ListFilter - необязательные фильтры-равенства для списков записей
// Type применим только к отзывам
type ListFilter struct {
	Category string `form:"category" validate:"omitempty,oneof=user_interface social_features content functionality performance security accessibility other"`
	Status   string `form:"status" validate:"omitempty,oneof=pending reviewed in_progress resolved closed"`
	Priority string `form:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Type     string `form:"feedback_type" validate:"omitempty,oneof=feedback bug_report feature_request"`
	Limit    int64  `form:"limit" validate:"omitempty,min=1,max=1000"`
	Skip     int64  `form:"skip" validate:"omitempty,min=0"`
}

// TrackEventRequest - запрос на запись события аналитики
type TrackEventRequest struct {
	UserID    string `json:"user_id"`
	PagePath  string `json:"page_path" validate:"required"`
	Action    string `json:"action" validate:"required"`
	UserAgent string `json:"user_agent"`
	SessionID string `json:"session_id"`
}

// CreateStatusCheckRequest - запрос на создание проверки доступности
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// FeedbackListResponse - ответ со списком отзывов
type FeedbackListResponse struct {
	Feedback []Feedback `json:"feedback"`
	Total    int        `json:"total"`
}

// SuggestionListResponse - ответ со списком предложений
type SuggestionListResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Total       int          `json:"total"`
}

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
	Message string            `json:"message,omitempty"`
}

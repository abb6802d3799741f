package entity

import (
	"time"
)

// FeedbackCategory - закрытый набор категорий для отзывов и предложений
type FeedbackCategory string

const (
	CategoryUserInterface  FeedbackCategory = "user_interface"
	CategorySocialFeatures FeedbackCategory = "social_features"
	CategoryContent        FeedbackCategory = "content"
	CategoryFunctionality  FeedbackCategory = "functionality"
	CategoryPerformance    FeedbackCategory = "performance"
	CategorySecurity       FeedbackCategory = "security"
	CategoryAccessibility  FeedbackCategory = "accessibility"
	CategoryOther          FeedbackCategory = "other"
)

// AllCategories возвращает все категории в фиксированном порядке
// Используется для статистики: каждая категория присутствует в ответе,
// даже если записей по ней нет
func AllCategories() []FeedbackCategory {
	return []FeedbackCategory{
		CategoryUserInterface,
		CategorySocialFeatures,
		CategoryContent,
		CategoryFunctionality,
		CategoryPerformance,
		CategorySecurity,
		CategoryAccessibility,
		CategoryOther,
	}
}

// RecordStatus - статус жизненного цикла записи
type RecordStatus string

const (
	StatusPending    RecordStatus = "pending"
	StatusReviewed   RecordStatus = "reviewed"
	StatusInProgress RecordStatus = "in_progress"
	StatusResolved   RecordStatus = "resolved"
	StatusClosed     RecordStatus = "closed"
)

// Priority - приоритет, выставляемый администратором при триаже
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// FeedbackType - тип отзыва
type FeedbackType string

const (
	TypeFeedback       FeedbackType = "feedback"
	TypeBugReport      FeedbackType = "bug_report"
	TypeFeatureRequest FeedbackType = "feature_request"
)

// Feedback - отзыв пользователя
// ID назначается сервером (UUID v4), created_at неизменяем после создания
type Feedback struct {
	ID            string           `json:"id" bson:"_id"`
	Title         string           `json:"title" bson:"title"`
	Description   string           `json:"description" bson:"description"`
	Category      FeedbackCategory `json:"category" bson:"category"`
	Type          FeedbackType     `json:"type" bson:"type"`
	Rating        int              `json:"rating" bson:"rating"` // Оценка от 1 до 5
	IsAnonymous   bool             `json:"is_anonymous" bson:"is_anonymous"`
	UserName      string           `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserEmail     string           `json:"user_email,omitempty" bson:"user_email,omitempty"`
	Status        RecordStatus     `json:"status" bson:"status"`
	Priority      Priority         `json:"priority" bson:"priority"`
	AdminNotes    string           `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`
	AdminResponse string           `json:"admin_response,omitempty" bson:"admin_response,omitempty"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`
}

// Suggestion - предложение по улучшению
// Та же форма что и Feedback, но без типа, с ожидаемой пользой и счётчиком голосов
type Suggestion struct {
	ID              string           `json:"id" bson:"_id"`
	Title           string           `json:"title" bson:"title"`
	Description     string           `json:"description" bson:"description"`
	Category        FeedbackCategory `json:"category" bson:"category"`
	Rating          int              `json:"rating" bson:"rating"` // Оценка интереса от 1 до 5
	IsAnonymous     bool             `json:"is_anonymous" bson:"is_anonymous"`
	UserName        string           `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserEmail       string           `json:"user_email,omitempty" bson:"user_email,omitempty"`
	ExpectedBenefit string           `json:"expected_benefit,omitempty" bson:"expected_benefit,omitempty"`
	Status          RecordStatus     `json:"status" bson:"status"`
	Priority        Priority         `json:"priority" bson:"priority"`
	AdminNotes      string           `json:"admin_notes,omitempty" bson:"admin_notes,omitempty"`
	AdminResponse   string           `json:"admin_response,omitempty" bson:"admin_response,omitempty"`
	Votes           int              `json:"votes" bson:"votes"` // Голоса сообщества, только инкремент
	CreatedAt       time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" bson:"updated_at"`
}

// AnalyticsEvent - событие клиентской аналитики (просмотр, клик, отправка формы)
type AnalyticsEvent struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	PagePath  string    `json:"page_path" bson:"page_path"`
	Action    string    `json:"action" bson:"action"` // view, click, submit и т.д.
	UserAgent string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	SessionID string    `json:"session_id,omitempty" bson:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// StatusCheck - проверка доступности от клиента
type StatusCheck struct {
	ID         string    `json:"id" bson:"_id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// CategoryStat - агрегированная статистика по категории (не хранится)
// AverageRating равен nil, когда записей в категории нет
type CategoryStat struct {
	Category        FeedbackCategory `json:"category"`
	FeedbackCount   int              `json:"feedback_count"`
	SuggestionCount int              `json:"suggestion_count"`
	AverageRating   *float64         `json:"average_rating"`
}

// DashboardOverview - сводные счётчики для админ-панели
type DashboardOverview struct {
	TotalFeedback      int64 `json:"total_feedback"`
	TotalSuggestions   int64 `json:"total_suggestions"`
	PendingFeedback    int64 `json:"pending_feedback"`
	PendingSuggestions int64 `json:"pending_suggestions"`
	HighPriorityItems  int64 `json:"high_priority_items"`
}

// Dashboard - полный ответ админ-панели: сводка плюс последние записи
type Dashboard struct {
	Overview          DashboardOverview `json:"overview"`
	RecentFeedback    []Feedback        `json:"recent_feedback"`
	RecentSuggestions []Suggestion      `json:"recent_suggestions"`
}

// PortalEvent - событие для Kafka при изменениях в портале
type PortalEvent struct {
	EventType string    `json:"event_type"` // FEEDBACK_CREATED, SUGGESTION_CREATED, SUGGESTION_VOTED
	RecordID  string    `json:"record_id"`
	Category  string    `json:"category,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Votes     int       `json:"votes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

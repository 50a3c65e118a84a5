package models

// Analytics counter types.
const (
	AnalyticsTypeBookings  = "bookings"
	AnalyticsTypeQueries   = "queries"
	AnalyticsTypeChats     = "chats"
	AnalyticsTypePageViews = "page_views"
)

// AnalyticsCounter is a per-day event counter document.
type AnalyticsCounter struct {
	Type  string `bson:"type" json:"type"`
	Date  string `bson:"date" json:"date"` // YYYY-MM-DD
	Page  string `bson:"page,omitempty" json:"page,omitempty"`
	Count int64  `bson:"count" json:"count"`
}

// AnalyticsSummary aggregates stored entities for the admin dashboard.
type AnalyticsSummary struct {
	TotalBookings     int64              `json:"total_bookings"`
	PendingBookings   int64              `json:"pending_bookings"`
	ConfirmedBookings int64              `json:"confirmed_bookings"`
	TotalQueries      int64              `json:"total_queries"`
	NewQueries        int64              `json:"new_queries"`
	BookingTrends     []AnalyticsCounter `json:"booking_trends"`
	QueryTrends       []AnalyticsCounter `json:"query_trends"`
	ChatTrends        []AnalyticsCounter `json:"chat_trends"`
}

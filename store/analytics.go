package store

import (
	"time"

	"gorm.io/gorm"

	"contactdesk/models"
	"contactdesk/pkg/backend"
)

// Stats is the admin analytics payload.
type Stats struct {
	TotalMessages     int64 `json:"total_messages"`
	RepliedMessages   int64 `json:"replied_messages"`
	UnrepliedMessages int64 `json:"unreplied_messages"`
	// PerDay covers the trailing 7 calendar days (UTC), oldest first,
	// zero-filled.
	PerDay []DayCount `json:"per_day"`
	// AvgReplyLatencyHours averages (reply time - message time) over every
	// reply, one term per reply; 0 when no reply exists.
	AvgReplyLatencyHours float64 `json:"avg_reply_latency_hours"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Analytics derives read-only statistics from the two tables.
type Analytics struct {
	db      *gorm.DB
	dialect backend.Dialect
}

func NewAnalytics(be *backend.Backend) *Analytics {
	return &Analytics{db: be.DB, dialect: be.Dialect}
}

// Counts returns total messages and how many of them have at least one
// reply.
func (s *Analytics) Counts() (total, replied int64, err error) {
	if err = s.db.Model(&models.Message{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = s.db.Model(&models.Reply{}).Distinct("message_id").Count(&replied).Error
	if err != nil {
		return 0, 0, err
	}
	return total, replied, nil
}

func (s *Analytics) Stats() (*Stats, error) {
	total, replied, err := s.Counts()
	if err != nil {
		return nil, err
	}

	perDay, err := s.perDay()
	if err != nil {
		return nil, err
	}

	latency, err := s.avgReplyLatencyHours()
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalMessages:        total,
		RepliedMessages:      replied,
		UnrepliedMessages:    total - replied,
		PerDay:               perDay,
		AvgReplyLatencyHours: latency,
	}, nil
}

func (s *Analytics) perDay() ([]DayCount, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -6)

	var rows []DayCount
	bucket := s.dialect.DayBucket("created_at")
	err := s.db.Model(&models.Message{}).
		Select(bucket+" AS date, COUNT(*) AS count").
		Where("created_at >= ?", start).
		Group(bucket).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r.Count
	}

	out := make([]DayCount, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, DayCount{Date: d, Count: byDate[d]})
	}
	return out, nil
}

func (s *Analytics) avgReplyLatencyHours() (float64, error) {
	expr := s.dialect.LatencyHours("replies.created_at", "messages.created_at")
	var avg float64
	err := s.db.Model(&models.Reply{}).
		Select("COALESCE(AVG(" + expr + "), 0)").
		Joins("JOIN messages ON messages.id = replies.message_id").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

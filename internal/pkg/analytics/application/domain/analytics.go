package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format of series bounds.
const DateLayout = "2006-01-02"

// MaxRangeDays bounds one series request.
const MaxRangeDays = 366

type Metric string

const (
	MetricUsers         Metric = "USERS"
	MetricProperties    Metric = "PROPERTIES"
	MetricRevenue       Metric = "REVENUE"
	MetricBookings      Metric = "BOOKINGS"
	MetricVerifications Metric = "VERIFICATIONS"
)

func (m Metric) Valid() bool {
	switch m {
	case MetricUsers, MetricProperties, MetricRevenue, MetricBookings, MetricVerifications:
		return true
	}
	return false
}

var (
	ErrBadDate  = errors.New("dates must be YYYY-MM-DD")
	ErrReversed = errors.New("from must not be after to")
	ErrTooLong  = fmt.Errorf("range must not exceed %d days", MaxRangeDays)
	ErrMetric   = errors.New("metric must be one of USERS, PROPERTIES, REVENUE, BOOKINGS, VERIFICATIONS")
)

// Range is an inclusive day range.
type Range struct {
	From time.Time
	To   time.Time
}

// ParseRange reads from/to as dates; an empty side defaults to the last 30 days ending today.
func ParseRange(from, to string, now time.Time) (Range, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	r := Range{From: today.AddDate(0, 0, -29), To: today}
	var err error
	if to != "" {
		if r.To, err = time.Parse(DateLayout, to); err != nil {
			return Range{}, ErrBadDate
		}
		if from == "" {
			r.From = r.To.AddDate(0, 0, -29)
		}
	}
	if from != "" {
		if r.From, err = time.Parse(DateLayout, from); err != nil {
			return Range{}, ErrBadDate
		}
	}
	if r.From.After(r.To) {
		return Range{}, ErrReversed
	}
	if r.Days() > MaxRangeDays {
		return Range{}, ErrTooLong
	}
	return r, nil
}

// Days counts the days in the range, both ends included.
func (r Range) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

type SeriesQuery struct {
	Range  Range
	Metric Metric
}

func NewSeriesQuery(from, to, metric string, now time.Time) (SeriesQuery, error) {
	r, err := ParseRange(from, to, now)
	if err != nil {
		return SeriesQuery{}, err
	}
	m := Metric(strings.ToUpper(strings.TrimSpace(metric)))
	if m == "" {
		m = MetricUsers
	}
	if !m.Valid() {
		return SeriesQuery{}, ErrMetric
	}
	return SeriesQuery{Range: r, Metric: m}, nil
}

type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Series struct {
	Metric Metric  `json:"metric"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Points []Point `json:"points"`
	Total  float64 `json:"total"`
}

// Fill returns one point per day of the range, zero where the backend reported nothing.
func Fill(q SeriesQuery, points []Point) Series {
	byDate := make(map[string]float64, len(points))
	for _, p := range points {
		day := p.Date
		if len(day) > len(DateLayout) {
			day = day[:len(DateLayout)]
		}
		byDate[day] += p.Value
	}
	s := Series{
		Metric: q.Metric,
		From:   q.Range.From.Format(DateLayout),
		To:     q.Range.To.Format(DateLayout),
		Points: make([]Point, 0, q.Range.Days()),
	}
	for d := q.Range.From; !d.After(q.Range.To); d = d.AddDate(0, 0, 1) {
		day := d.Format(DateLayout)
		s.Points = append(s.Points, Point{Date: day, Value: byDate[day]})
		s.Total += byDate[day]
	}
	return s
}

type Overview struct {
	Users struct {
		Total        int `json:"total"`
		Active       int `json:"active"`
		Suspended    int `json:"suspended"`
		NewThisMonth int `json:"newThisMonth"`
	} `json:"users"`
	Properties struct {
		Total         int `json:"total"`
		Active        int `json:"active"`
		PendingReview int `json:"pendingReview"`
		Featured      int `json:"featured"`
	} `json:"properties"`
	Verifications struct {
		Pending int `json:"pending"`
	} `json:"verifications"`
	Tickets struct {
		Open int `json:"open"`
	} `json:"tickets"`
	Revenue struct {
		Total     float64 `json:"total"`
		ThisMonth float64 `json:"thisMonth"`
	} `json:"revenue"`
}

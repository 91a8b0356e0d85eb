package ad

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Position string

const (
	PositionHomeBanner     Position = "HOME_BANNER"
	PositionSidebar        Position = "SIDEBAR"
	PositionPropertyDetail Position = "PROPERTY_DETAIL"
	PositionSearchResults  Position = "SEARCH_RESULTS"
)

type Type string

const (
	TypeBanner    Type = "BANNER"
	TypeSponsored Type = "SPONSORED_LISTING"
	TypePopup     Type = "POPUP"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusActive  Status = "ACTIVE"
	StatusPaused  Status = "PAUSED"
	StatusExpired Status = "EXPIRED"
)

var (
	Positions = []Position{PositionHomeBanner, PositionSidebar, PositionPropertyDetail, PositionSearchResults}
	Types     = []Type{TypeBanner, TypeSponsored, TypePopup}
)

// DateLayout is the wire format of ad dates.
const DateLayout = "2006-01-02"

type Ad struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	TargetURL    string   `json:"targetUrl"`
	Position     Position `json:"position"`
	Type         Type     `json:"type"`
	Status       Status   `json:"status"`
	IsActive     bool     `json:"isActive"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Budget       float64  `json:"budget"`
	CostPerClick float64  `json:"costPerClick"`
	Impressions  int      `json:"impressions"`
	Clicks       int      `json:"clicks"`
	CreatedAt    string   `json:"createdAt"`
}

// CreateInput is the createAd payload.
type CreateInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	TargetURL    string   `json:"targetUrl,omitempty"`
	Position     Position `json:"position"`
	Type         Type     `json:"type"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Budget       float64  `json:"budget"`
	CostPerClick float64  `json:"costPerClick"`
}

// Normalize trims text fields and upper-cases the enums.
func (in CreateInput) Normalize() CreateInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.TargetURL = strings.TrimSpace(in.TargetURL)
	in.Position = Position(strings.ToUpper(strings.TrimSpace(string(in.Position))))
	in.Type = Type(strings.ToUpper(strings.TrimSpace(string(in.Type))))
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	return in
}

// Validate reports every problem with in at once.
func (in CreateInput) Validate() error {
	var errs []error
	if in.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if in.ImageURL != "" && !absoluteURL(in.ImageURL) {
		errs = append(errs, errors.New("imageUrl must be an absolute URL"))
	}
	if in.TargetURL != "" && !absoluteURL(in.TargetURL) {
		errs = append(errs, errors.New("targetUrl must be an absolute URL"))
	}
	if !oneOf(in.Position, Positions) {
		errs = append(errs, fmt.Errorf("position must be one of %v", Positions))
	}
	if !oneOf(in.Type, Types) {
		errs = append(errs, fmt.Errorf("type must be one of %v", Types))
	}
	start, serr := time.Parse(DateLayout, in.StartDate)
	if serr != nil {
		errs = append(errs, errors.New("startDate must be YYYY-MM-DD"))
	}
	end, eerr := time.Parse(DateLayout, in.EndDate)
	if eerr != nil {
		errs = append(errs, errors.New("endDate must be YYYY-MM-DD"))
	}
	if serr == nil && eerr == nil && end.Before(start) {
		errs = append(errs, errors.New("endDate must not be before startDate"))
	}
	if in.Budget < 0 {
		errs = append(errs, errors.New("budget must not be negative"))
	}
	if in.CostPerClick < 0 {
		errs = append(errs, errors.New("costPerClick must not be negative"))
	}
	return errors.Join(errs...)
}

func absoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

package domain

import (
	"errors"
)

// ErrInvalidPage is returned by PageRequest.Validate
var ErrInvalidPage = errors.New("invalid page request")

// SearchFilter is the caller's vacancy search criteria.
// Empty string fields mean "not set" and are never sent upstream.
type SearchFilter struct {
	Text           string
	Salary         string
	IndustryID     string
	RegionID       string
	OnlyWithSalary bool
}

// IsZero reports whether no criterion is set
func (f SearchFilter) IsZero() bool {
	return f == SearchFilter{}
}

// PageRequest asks for one page of search results
type PageRequest struct {
	Filter   SearchFilter
	Page     int
	PageSize int
}

func (r PageRequest) Validate() error {
	if r.Page < 0 {
		return errors.Join(ErrInvalidPage, errors.New("page must not be negative"))
	}
	if r.PageSize <= 0 {
		return errors.Join(ErrInvalidPage, errors.New("page size must be positive"))
	}
	return nil
}

// Salary is a vacancy pay range; nil bounds are open
type Salary struct {
	From     *int   `json:"from,omitempty"`
	To       *int   `json:"to,omitempty"`
	Currency string `json:"currency,omitempty"`
	Gross    *bool  `json:"gross,omitempty"`
}

// VacancySummary is one row of a search page
type VacancySummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	EmployerName    string  `json:"employer_name,omitempty"`
	EmployerLogoURL string  `json:"employer_logo_url,omitempty"`
	AreaID          string  `json:"area_id,omitempty"`
	AreaName        string  `json:"area_name,omitempty"`
	AlternateURL    string  `json:"alternate_url,omitempty"`
	Salary          *Salary `json:"salary,omitempty"`
}

// VacancyPage is the search payload with pagination metadata
type VacancyPage struct {
	Items   []VacancySummary `json:"items"`
	Found   int              `json:"found"`
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	PerPage int              `json:"per_page"`
}

// Contacts of the vacancy's recruiter
type Contacts struct {
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Phones []string `json:"phones,omitempty"`
}

// VacancyDetail is the full vacancy record
type VacancyDetail struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	EmployerName    string    `json:"employer_name,omitempty"`
	EmployerLogoURL string    `json:"employer_logo_url,omitempty"`
	AreaID          string    `json:"area_id,omitempty"`
	AreaName        string    `json:"area_name,omitempty"`
	Address         string    `json:"address,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	Employment      string    `json:"employment,omitempty"`
	Schedule        string    `json:"schedule,omitempty"`
	AlternateURL    string    `json:"alternate_url,omitempty"`
	KeySkills       []string  `json:"key_skills,omitempty"`
	Salary          *Salary   `json:"salary,omitempty"`
	Contacts        *Contacts `json:"contacts,omitempty"`
}

// LookupKind selects a reference list
type LookupKind int

const (
	LookupIndustries LookupKind = iota + 1
	LookupAreas
	LookupAreaByID
)

func (k LookupKind) String() string {
	switch k {
	case LookupIndustries:
		return "industries"
	case LookupAreas:
		return "areas"
	case LookupAreaByID:
		return "area_by_id"
	default:
		return "unknown"
	}
}

// LookupEntry is one industry or area. Areas keep their subtree in Children.
type LookupEntry struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	ParentID string        `json:"parent_id,omitempty"`
	Children []LookupEntry `json:"children,omitempty"`
}

// LookupList is a reference list payload
type LookupList struct {
	Kind    LookupKind    `json:"-"`
	Entries []LookupEntry `json:"entries"`
}

// Flatten walks the list depth-first and returns every entry without children
func (l LookupList) Flatten() []LookupEntry {
	out := make([]LookupEntry, 0, len(l.Entries))
	var walk func(entries []LookupEntry)
	walk = func(entries []LookupEntry) {
		for _, e := range entries {
			children := e.Children
			e.Children = nil
			out = append(out, e)
			walk(children)
		}
	}
	walk(l.Entries)
	return out
}

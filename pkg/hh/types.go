package hh

import (
	"net/http"
	"time"

	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

// Config defines job-listing API gateway settings
type Config struct {
	BaseURL    string
	UserAgent  string
	Token      string        // optional OAuth bearer token
	Timeout    time.Duration // required; whole-exchange deadline
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Gateway performs exactly one HTTP exchange per call and reports it raw
type Gateway struct {
	baseURL    string
	userAgent  string
	token      string
	httpClient *http.Client
	log        *logging.Logger
}

// Failure classifies why no usable response arrived
type Failure int

const (
	FailureNone Failure = iota
	FailureTimeout
	FailureIO
	FailureCanceled // caller gave up; not a transport failure
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureTimeout:
		return "timeout"
	case FailureIO:
		return "io"
	case FailureCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// RawOutcome is the unclassified result of one exchange.
// Status is StatusUnknown when no response was received.
type RawOutcome struct {
	Status  int
	Body    []byte
	Failure Failure
	Err     error
}

// LookupKind selects a reference endpoint
type LookupKind int

const (
	LookupIndustries LookupKind = iota + 1
	LookupAreas
	LookupAreaByID
)

// Lookup names a reference list; ID is used only by LookupAreaByID
type Lookup struct {
	Kind LookupKind
	ID   string
}

// VacanciesResponse is the body of GET /vacancies
type VacanciesResponse struct {
	Items   []VacancyItem `json:"items"`
	Found   int           `json:"found"`
	Page    int           `json:"page"`
	Pages   int           `json:"pages"`
	PerPage int           `json:"per_page"`
}

// VacancyItem is a short vacancy inside a search page
type VacancyItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Area         *IDName    `json:"area"`
	Salary       *SalaryDTO `json:"salary"`
	Employer     *Employer  `json:"employer"`
	AlternateURL string     `json:"alternate_url"`
}

// VacancyResponse is the body of GET /vacancies/{id}
type VacancyResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Area         *IDName     `json:"area"`
	Salary       *SalaryDTO  `json:"salary"`
	Employer     *Employer   `json:"employer"`
	Address      *Address    `json:"address"`
	Experience   *IDName     `json:"experience"`
	Employment   *IDName     `json:"employment"`
	Schedule     *IDName     `json:"schedule"`
	KeySkills    []KeySkill  `json:"key_skills"`
	Contacts     *ContactDTO `json:"contacts"`
	AlternateURL string      `json:"alternate_url"`
}

type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SalaryDTO struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    *bool  `json:"gross"`
}

type Employer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	LogoURLs *LogoURLs `json:"logo_urls"`
}

type LogoURLs struct {
	Size90   string `json:"90"`
	Size240  string `json:"240"`
	Original string `json:"original"`
}

type Address struct {
	City   string `json:"city"`
	Street string `json:"street"`
	Raw    string `json:"raw"`
}

type KeySkill struct {
	Name string `json:"name"`
}

type ContactDTO struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phones []PhoneDTO `json:"phones"`
}

type PhoneDTO struct {
	Country   string `json:"country"`
	City      string `json:"city"`
	Number    string `json:"number"`
	Formatted string `json:"formatted"`
}

// AreaNode is an element of GET /areas and the body of GET /areas/{id}
type AreaNode struct {
	ID       string     `json:"id"`
	ParentID *string    `json:"parent_id"`
	Name     string     `json:"name"`
	Areas    []AreaNode `json:"areas"`
}

// IndustryNode is an element of GET /industries
type IndustryNode struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Industries []IndustryNode `json:"industries"`
}

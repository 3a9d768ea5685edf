package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/pkg/hh"
)

var (
	errMissingID   = errors.New("normalize: record without id")
	errMissingPage = errors.New("normalize: null vacancy page")
)

// VacancyPage decodes GET /vacancies
func VacancyPage(body []byte) (domain.VacancyPage, error) {
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return domain.VacancyPage{}, errMissingPage
	}

	var resp hh.VacanciesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.VacancyPage{}, err
	}

	items := make([]domain.VacancySummary, 0, len(resp.Items))
	for _, it := range resp.Items {
		s := domain.VacancySummary{
			ID:           it.ID,
			Name:         it.Name,
			AlternateURL: it.AlternateURL,
			Salary:       mapSalary(it.Salary),
		}
		if it.Employer != nil {
			s.EmployerName = it.Employer.Name
			s.EmployerLogoURL = logoURL(it.Employer.LogoURLs)
		}
		if it.Area != nil {
			s.AreaID = it.Area.ID
			s.AreaName = it.Area.Name
		}
		items = append(items, s)
	}

	return domain.VacancyPage{
		Items:   items,
		Found:   resp.Found,
		Page:    resp.Page,
		Pages:   resp.Pages,
		PerPage: resp.PerPage,
	}, nil
}

// VacancyDetail decodes GET /vacancies/{id}
func VacancyDetail(body []byte) (domain.VacancyDetail, error) {
	var resp hh.VacancyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.VacancyDetail{}, err
	}
	if resp.ID == "" {
		return domain.VacancyDetail{}, errMissingID
	}

	d := domain.VacancyDetail{
		ID:           resp.ID,
		Name:         resp.Name,
		Description:  resp.Description,
		Experience:   name(resp.Experience),
		Employment:   name(resp.Employment),
		Schedule:     name(resp.Schedule),
		AlternateURL: resp.AlternateURL,
		Salary:       mapSalary(resp.Salary),
	}
	if resp.Employer != nil {
		d.EmployerName = resp.Employer.Name
		d.EmployerLogoURL = logoURL(resp.Employer.LogoURLs)
	}
	if resp.Area != nil {
		d.AreaID = resp.Area.ID
		d.AreaName = resp.Area.Name
	}
	if resp.Address != nil {
		d.Address = formatAddress(resp.Address)
	}
	for _, ks := range resp.KeySkills {
		if ks.Name != "" {
			d.KeySkills = append(d.KeySkills, ks.Name)
		}
	}
	if c := resp.Contacts; c != nil {
		contacts := &domain.Contacts{Name: c.Name, Email: c.Email}
		for _, p := range c.Phones {
			contacts.Phones = append(contacts.Phones, formatPhone(p))
		}
		d.Contacts = contacts
	}

	return d, nil
}

// Industries decodes GET /industries, flattening groups into parent-linked entries
func Industries(body []byte) (domain.LookupList, error) {
	var groups []hh.IndustryNode
	if err := json.Unmarshal(body, &groups); err != nil {
		return domain.LookupList{}, err
	}

	entries := make([]domain.LookupEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, domain.LookupEntry{ID: g.ID, Name: g.Name})
		for _, sub := range g.Industries {
			entries = append(entries, domain.LookupEntry{ID: sub.ID, Name: sub.Name, ParentID: g.ID})
		}
	}

	return domain.LookupList{Kind: domain.LookupIndustries, Entries: entries}, nil
}

// Areas decodes GET /areas, keeping the tree
func Areas(body []byte) (domain.LookupList, error) {
	var nodes []hh.AreaNode
	if err := json.Unmarshal(body, &nodes); err != nil {
		return domain.LookupList{}, err
	}

	return domain.LookupList{Kind: domain.LookupAreas, Entries: mapAreas(nodes)}, nil
}

// AreaSubtree decodes GET /areas/{id}; the requested area is the single root entry
func AreaSubtree(body []byte) (domain.LookupList, error) {
	var node hh.AreaNode
	if err := json.Unmarshal(body, &node); err != nil {
		return domain.LookupList{}, err
	}
	if node.ID == "" {
		return domain.LookupList{}, errMissingID
	}

	return domain.LookupList{
		Kind:    domain.LookupAreaByID,
		Entries: mapAreas([]hh.AreaNode{node}),
	}, nil
}

func mapAreas(nodes []hh.AreaNode) []domain.LookupEntry {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]domain.LookupEntry, 0, len(nodes))
	for _, n := range nodes {
		e := domain.LookupEntry{
			ID:       n.ID,
			Name:     n.Name,
			Children: mapAreas(n.Areas),
		}
		if n.ParentID != nil {
			e.ParentID = *n.ParentID
		}
		out = append(out, e)
	}
	return out
}

func mapSalary(s *hh.SalaryDTO) *domain.Salary {
	if s == nil {
		return nil
	}
	return &domain.Salary{
		From:     s.From,
		To:       s.To,
		Currency: s.Currency,
		Gross:    s.Gross,
	}
}

func logoURL(l *hh.LogoURLs) string {
	if l == nil {
		return ""
	}
	switch {
	case l.Size240 != "":
		return l.Size240
	case l.Size90 != "":
		return l.Size90
	default:
		return l.Original
	}
}

func name(v *hh.IDName) string {
	if v == nil {
		return ""
	}
	return v.Name
}

func formatAddress(a *hh.Address) string {
	if a.Raw != "" {
		return a.Raw
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{a.City, a.Street} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func formatPhone(p hh.PhoneDTO) string {
	if p.Formatted != "" {
		return p.Formatted
	}
	return "+" + p.Country + " (" + p.City + ") " + p.Number
}

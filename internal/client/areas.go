package client

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

// SearchAreas lists the areas below countryID (or every area when countryID
// is empty) whose name contains text, ignoring case. The country itself is
// not part of the list.
func (c *Client) SearchAreas(ctx context.Context, countryID, text string) (result.Result[domain.LookupList], error) {
	var (
		res result.Result[domain.LookupList]
		err error
	)
	countryID = strings.TrimSpace(countryID)
	if countryID == "" {
		res, err = c.Areas(ctx)
	} else {
		res, err = c.AreasByID(ctx, countryID)
	}
	if err != nil {
		return res, err
	}

	return result.Map(res, func(list domain.LookupList) domain.LookupList {
		return FilterAreas(list, countryID, text)
	}), nil
}

// FilterAreas flattens list and keeps entries whose name contains text
// under Unicode case folding. An entry with id excludeID is dropped.
func FilterAreas(list domain.LookupList, excludeID, text string) domain.LookupList {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(text))

	flat := list.Flatten()
	out := make([]domain.LookupEntry, 0, len(flat))
	for _, e := range flat {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(e.Name), needle) {
			continue
		}
		out = append(out, e)
	}

	return domain.LookupList{Kind: list.Kind, Entries: out}
}

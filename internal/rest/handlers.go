package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/honeycarbs/vacancy-gateway/internal/client"
	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/query"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

// statusClientClosedRequest is written when the caller went away mid-call
const statusClientClosedRequest = 499

// VacancyService is what the handlers need from the client facade
type VacancyService interface {
	SearchVacancies(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error)
	VacancyDetail(ctx context.Context, id int64) (result.Result[domain.VacancyDetail], error)
	Industries(ctx context.Context) (result.Result[domain.LookupList], error)
	Areas(ctx context.Context) (result.Result[domain.LookupList], error)
	AreasByID(ctx context.Context, id string) (result.Result[domain.LookupList], error)
	SearchAreas(ctx context.Context, countryID, text string) (result.Result[domain.LookupList], error)
}

type Handler struct {
	svc VacancyService
	log *logging.Logger
}

func NewHandler(svc VacancyService, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handler{svc: svc, log: log.Named("rest")}
}

// Routes mounts the vacancy API under /api/v1
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(LoggerMiddleware(h.log), middleware.Recoverer)

		r.Get("/vacancies", h.SearchVacancies)
		r.Get("/vacancies/{vacancyID}", h.VacancyDetail)
		r.Get("/industries", h.Industries)
		r.Get("/areas", h.Areas)
		r.Get("/areas/search", h.SearchAreas)
		r.Get("/areas/{areaID}", h.AreasByID)
	})
}

// SearchVacancies handles GET /api/v1/vacancies
func (h *Handler) SearchVacancies(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	req, err := query.Parse(domain.NewQuerySet(params))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.SearchVacancies(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeResult(w, res)
}

// VacancyDetail handles GET /api/v1/vacancies/{vacancyID}
func (h *Handler) VacancyDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "vacancyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "vacancy id must be an integer")
		return
	}

	res, err := h.svc.VacancyDetail(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeResult(w, res)
}

// Industries handles GET /api/v1/industries
func (h *Handler) Industries(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, h.svc.Industries)
}

// Areas handles GET /api/v1/areas
func (h *Handler) Areas(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, h.svc.Areas)
}

// AreasByID handles GET /api/v1/areas/{areaID}
func (h *Handler) AreasByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "areaID")
	h.lookup(w, r, func(ctx context.Context) (result.Result[domain.LookupList], error) {
		return h.svc.AreasByID(ctx, id)
	})
}

// SearchAreas handles GET /api/v1/areas/search?country=113&text=моск
func (h *Handler) SearchAreas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.lookup(w, r, func(ctx context.Context) (result.Result[domain.LookupList], error) {
		return h.svc.SearchAreas(ctx, q.Get("country"), q.Get("text"))
	})
}

func (h *Handler) lookup(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context) (result.Result[domain.LookupList], error),
) {
	res, err := fetch(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		WriteJSONError(w, statusClientClosedRequest, "request canceled")
	case errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, client.ErrInvalidVacancyID),
		errors.Is(err, client.ErrInvalidAreaID):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("unexpected handler error", "err", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

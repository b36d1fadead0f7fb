// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"iil_api/internal/app"
	"iil_api/internal/domain"
)

const maxEnquiryBytes = 64 << 10

type Handlers struct {
	Q      *app.QueryService
	E      *app.EnquiryService
	Status *app.StatusService
}

type problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors []domain.FieldError `json:"errors,omitempty"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.root)
	s.mux.Get("/test", h.test)
	s.mux.Get("/schema", h.schema)

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{slug}", h.getCourse)
		r.Get("/testimonials", h.listTestimonials)
		r.Post("/enquiries", h.submitEnquiry)

		r.Get("/blog", h.listBlogPosts)
		r.Get("/blog/{slug}", h.getBlogPost)
		r.Get("/institute", h.getInstitute)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string, fields []domain.FieldError) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Errors: fields}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. notFound is
// the detail used for ErrNotFound.
func writeError(w http.ResponseWriter, err error, notFound string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Error", ve.Error(), ve.Fields)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", notFound, nil)
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Database not available", nil)
	case errors.Is(err, domain.ErrWriteFailure):
		log.Error().Err(err).Msg("store write failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not save record", nil)
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeContent serves catalog content with a weak ETag and honours If-None-Match.
func writeContent(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "encode response", nil)
		return
	}
	w.Header().Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Error().Err(err).Msg("write content body failed")
	}
}

// parseLimit reads ?limit=; absent means def. Any integer is accepted the
// way a Mongo cursor takes it: 0 is no limit and -n caps at n.
func parseLimit(r *http.Request, def int64) (int64, error) {
	ls := r.URL.Query().Get("limit")
	if ls == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(ls, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Kind: "query", Fields: []domain.FieldError{
			{Field: "limit", Rule: "type", Message: "limit must be an integer"},
		}}
	}
	if n < 0 {
		n = -n
	}
	return n, nil
}

func (h *Handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "International Institute of Languages API running"})
}

func (h *Handlers) test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Status.Check(r.Context()))
}

func (h *Handlers) schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"collections": domain.CollectionNames()})
}

func (h *Handlers) listCourses(w http.ResponseWriter, r *http.Request) {
	items, err := h.Q.ListCourses(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeContent(w, r, itemsResponse[domain.Course]{Items: items})
}

func (h *Handlers) getCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.Q.GetCourse(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err, "Course not found")
		return
	}
	writeContent(w, r, c)
}

func (h *Handlers) listTestimonials(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, app.DefaultTestimonialLimit)
	if err != nil {
		writeError(w, err, "")
		return
	}
	items, err := h.Q.ListTestimonials(r.Context(), limit)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeContent(w, r, itemsResponse[domain.Testimonial]{Items: items})
}

func (h *Handlers) submitEnquiry(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEnquiryBytes))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil {
		detail := "body must be a JSON object"
		if err != nil && !errors.Is(err, io.EOF) {
			detail += ": " + err.Error()
		}
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Error", detail, nil)
		return
	}
	// exactly one value; anything after the object is a malformed body
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Error", "body must be a single JSON object", nil)
		return
	}
	id, err := h.E.Submit(r.Context(), raw)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "id": id})
}

func (h *Handlers) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, 0)
	if err != nil {
		writeError(w, err, "")
		return
	}
	items, err := h.Q.ListBlogPosts(r.Context(), limit)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeContent(w, r, itemsResponse[domain.BlogPost]{Items: items})
}

func (h *Handlers) getBlogPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetBlogPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err, "Post not found")
		return
	}
	writeContent(w, r, p)
}

func (h *Handlers) getInstitute(w http.ResponseWriter, r *http.Request) {
	info, err := h.Q.GetInstituteInfo(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeContent(w, r, info)
}

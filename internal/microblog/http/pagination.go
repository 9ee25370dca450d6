package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/microblog/internal/microblog/domain"
)

// parsePage reads the page and per_page query parameters. Missing values are
// left zero for the service to default; per_page above the maximum is
// clamped later.
func parsePage(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()
	var req domain.PageRequest

	for name, dst := range map[string]*int{"page": &req.Page, "per_page": &req.PerPage} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return domain.PageRequest{}, fmt.Errorf("%s must be a positive integer", name)
		}
		*dst = n
	}
	return req, nil
}

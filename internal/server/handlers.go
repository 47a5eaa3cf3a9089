package server

import (
	"errors"
	"net/http"

	"github.com/andreiashu/postaddr"
	"github.com/andreiashu/postaddr/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type checkRequest struct {
	Text       string `json:"text"`
	AllowEmpty bool   `json:"allow_empty"`
}

type createRequest struct {
	Text string `json:"text" binding:"required"`
}

type addressResponse struct {
	ID        string `json:"id"`
	Canonical string `json:"canonical"`
	Display   string `json:"display,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type countryResponse struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Layout        []string `json:"layout"`
	ReservedLines int      `json:"reserved_lines"`
}

// statusFor maps errors to HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	switch postaddr.ErrorKind(err) {
	case postaddr.KindEmpty, postaddr.KindMalformed, postaddr.KindField, postaddr.KindResolution:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	kind := postaddr.ErrorKind(err)
	if errors.Is(err, store.ErrNotFound) {
		kind = "not_found"
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, errorResponse{Error: "internal error", Kind: kind})
		return
	}
	c.JSON(status, errorResponse{Error: err.Error(), Kind: kind})
}

// bindJSON decodes the request body into v, answering 413 for bodies over
// the limit and 400 for anything else that does not bind.
func bindJSON(c *gin.Context, v any) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large", Kind: "request"})
		return false
	}
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "request"})
	return false
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) checkAddress(c *gin.Context) {
	var req checkRequest
	if !bindJSON(c, &req) {
		return
	}
	var (
		res postaddr.Result
		err error
	)
	if req.AllowEmpty {
		res, err = s.checker.CheckOptional(req.Text)
	} else {
		res, err = s.checker.Check(req.Text)
	}
	s.metrics.observeCheck(res.Country, err)
	if err != nil {
		s.log.Debug("address rejected", zap.Error(err))
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) createAddress(c *gin.Context) {
	var req createRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := s.checker.Check(req.Text)
	s.metrics.observeCheck(res.Country, err)
	if err != nil {
		s.fail(c, err)
		return
	}
	rec, err := s.book.Put(c.Request.Context(), res.Canonical, res.Country)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.metrics.storedTotal.Inc()
	c.JSON(http.StatusCreated, addressResponse{ID: rec.ID, Canonical: rec.Canonical})
}

func (s *Server) getAddress(c *gin.Context) {
	rec, err := s.book.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	resp := addressResponse{ID: rec.ID, Canonical: rec.Canonical}
	if res, err := s.checker.Check(rec.Canonical); err == nil {
		resp.Display = res.Display
	} else {
		s.log.Warn("stored address no longer valid", zap.String("id", rec.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) deleteAddress(c *gin.Context) {
	if err := s.book.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listCountries(c *gin.Context) {
	codes := postaddr.SupportedCountries()
	out := make([]countryResponse, 0, len(codes))
	for _, code := range codes {
		v, _ := postaddr.LookupVariant(code)
		layout := make([]string, 0, postaddr.LineCount(v))
		for _, f := range v.Layout() {
			layout = append(layout, f.String())
		}
		out = append(out, countryResponse{
			Code:          code,
			Name:          postaddr.MustCountry(code).Name(),
			Layout:        layout,
			ReservedLines: v.ReservedLines(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listDivisions(c *gin.Context) {
	country, ok := postaddr.LookupCountry(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown country", Kind: "not_found"})
		return
	}
	divisions := postaddr.Divisions(country.ShortName())
	if divisions == nil {
		divisions = []postaddr.Division{}
	}
	c.JSON(http.StatusOK, divisions)
}

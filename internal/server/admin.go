package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minatgo/minatgo/internal/questions"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	if s.deps.Limiter != nil && !s.deps.Limiter.Allow(c.ClientIP()) {
		abort(c, http.StatusTooManyRequests, "too many login attempts")
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if s.deps.Auth == nil {
		abort(c, http.StatusServiceUnavailable, "admin login is not configured")
		return
	}
	tok, err := s.deps.Auth.Login(req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tok)
}

func (s *Server) adminList(c *gin.Context) {
	recs, err := s.deps.Admin.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if recs == nil {
		recs = []questions.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"questions": recs})
}

func (s *Server) adminGet(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	rec, err := s.deps.Admin.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) adminCreate(c *gin.Context) {
	var rec questions.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	rec.ID = 0
	created, err := s.deps.Admin.Create(c.Request.Context(), rec)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) adminUpdate(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var rec questions.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	rec.ID = id
	updated, err := s.deps.Admin.Update(c.Request.Context(), rec)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) adminDelete(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	if err := s.deps.Admin.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		s.fail(c, fmt.Errorf("%w: invalid id %q", errBadRequest, c.Param("id")))
		return 0, false
	}
	return id, true
}

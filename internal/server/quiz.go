package server

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minatgo/minatgo/internal/insight"
	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/report"
	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/store"
)

type questionsResponse struct {
	Questions    []questions.Question `json:"questions"`
	QuestionsMap riasec.PairMap       `json:"questionsMap"`
	Total        int                  `json:"total"`
}

type submitRequest struct {
	Answers map[string]riasec.Choice `json:"answers" binding:"required"`
}

type resultResponse struct {
	AttemptID       string                          `json:"attempt_id,omitempty"`
	Counts          riasec.Tally                    `json:"counts"`
	Percent         map[riasec.Category]int         `json:"percent"`
	Dominant        []riasec.Category               `json:"dominant"`
	Recommendations []riasec.CategoryRecommendation `json:"recommendations"`
	Answered        int                             `json:"answered"`
	Total           int                             `json:"total"`
	Insight         *insight.Insight                `json:"insight,omitempty"`
}

type contactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Message string `json:"message" binding:"required,max=4000"`
}

func (s *Server) listQuestions(c *gin.Context) {
	bank, err := questions.Load(c.Request.Context(), s.deps.Questions)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, questionsResponse{
		Questions:    bank.Questions,
		QuestionsMap: bank.Pairs,
		Total:        bank.Len(),
	})
}

// evaluate loads the current bank and scores a complete answer set.
func (s *Server) evaluate(c *gin.Context) (riasec.Result, int, bool) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return riasec.Result{}, 0, false
	}
	bank, err := questions.Load(c.Request.Context(), s.deps.Questions)
	if err != nil {
		s.fail(c, err)
		return riasec.Result{}, 0, false
	}
	answers, err := parseAnswers(req.Answers, bank.Len())
	if err != nil {
		s.fail(c, err)
		return riasec.Result{}, 0, false
	}
	return riasec.Evaluate(answers, bank.Pairs), bank.Len(), true
}

func (s *Server) submitResult(c *gin.Context) {
	res, total, ok := s.evaluate(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	out := resultResponse{
		Counts:          res.Counts,
		Percent:         res.Percent,
		Dominant:        res.Dominant,
		Recommendations: riasec.RecommendAll(res.Dominant),
		Answered:        res.Answered,
		Total:           total,
	}
	if out.Dominant == nil {
		out.Dominant = []riasec.Category{}
	}

	if s.deps.Recorder != nil {
		ev, err := s.deps.Recorder.QuizCompleted(ctx, "http", res, total)
		if err != nil {
			s.fail(c, err)
			return
		}
		out.AttemptID = ev.AttemptID
	}
	for _, cat := range res.Dominant {
		s.metrics.completed.WithLabelValues(string(cat)).Inc()
	}

	if c.Query("insight") == "1" && s.deps.Insight.Available() {
		in, err := s.deps.Insight.Explain(ctx, res)
		if err != nil {
			s.log.WarnContext(ctx, "insight unavailable", slog.Any("error", err))
		} else {
			out.Insight = in
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) resultPDF(c *gin.Context) {
	res, total, ok := s.evaluate(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, report.FromResult(res, total)); err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="hasil-tes-riasec.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	id, err := s.deps.Contacts.Save(c.Request.Context(), store.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// parseAnswers converts the wire form {"0":"A",...} into an answer store.
// Submission requires an answer for every question.
func parseAnswers(raw map[string]riasec.Choice, total int) (riasec.Answers, error) {
	out := make(riasec.Answers, len(raw))
	for k, ch := range raw {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: answer key %q is not an index", errBadRequest, k)
		}
		if i < 0 || i >= total {
			return nil, fmt.Errorf("%w: %d", quiz.ErrOutOfRange, i)
		}
		if !ch.Valid() {
			return nil, fmt.Errorf("%w: answer %d has choice %q", errBadRequest, i, ch)
		}
		out[i] = ch
	}
	if len(out) < total {
		return nil, fmt.Errorf("%w: %d of %d answered", quiz.ErrIncomplete, len(out), total)
	}
	return out, nil
}

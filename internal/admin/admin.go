// Package admin manages the question bank: validated create, read, update
// and delete over the stored records.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/riasec"
	"github.com/minatgo/minatgo/internal/store"
)

// ErrValidation wraps every input rejection so callers can map it to a
// client error.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned for an unknown question ID.
var ErrNotFound = store.ErrNotFound

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("riasecpair", func(fl validator.FieldLevel) bool {
		_, err := riasec.ParsePair(fl.Field().String())
		return err == nil
	})
}

// Repo is the storage the service edits.
type Repo interface {
	ListQuestions(ctx context.Context) ([]questions.Record, error)
	Get(ctx context.Context, id int64) (*questions.Record, error)
	Create(ctx context.Context, rec questions.Record) (*questions.Record, error)
	Update(ctx context.Context, rec questions.Record) (*questions.Record, error)
	Delete(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, recs []questions.Record) error
}

// Service applies validation in front of a Repo.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// List returns every question ordered by ID.
func (s *Service) List(ctx context.Context) ([]questions.Record, error) {
	return s.repo.ListQuestions(ctx)
}

// Get returns one question.
func (s *Service) Get(ctx context.Context, id int64) (*questions.Record, error) {
	return s.repo.Get(ctx, id)
}

// Create validates rec, stores the canonical pair token and returns the
// stored record.
func (s *Service) Create(ctx context.Context, rec questions.Record) (*questions.Record, error) {
	rec, err := Normalize(rec)
	if err != nil {
		return nil, err
	}
	rec.ID = 0
	return s.repo.Create(ctx, rec)
}

// Update validates rec and replaces question rec.ID.
func (s *Service) Update(ctx context.Context, rec questions.Record) (*questions.Record, error) {
	if rec.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrValidation)
	}
	rec, err := Normalize(rec)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, rec)
}

// Delete removes question id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Import replaces the bank with recs. Nothing is written unless every
// record validates.
func (s *Service) Import(ctx context.Context, recs []questions.Record) error {
	if len(recs) == 0 {
		return fmt.Errorf("%w: empty bank", ErrValidation)
	}
	clean := make([]questions.Record, len(recs))
	for i, r := range recs {
		n, err := Normalize(r)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		clean[i] = n
	}
	return s.repo.ReplaceAll(ctx, clean)
}

// Seed fills an empty bank with the built-in questions. It reports whether
// anything was written.
func (s *Service) Seed(ctx context.Context) (bool, error) {
	existing, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	return true, s.repo.ReplaceAll(ctx, questions.DefaultRecords())
}

// Normalize trims fields, validates them and rewrites Type as "X-Y".
func Normalize(rec questions.Record) (questions.Record, error) {
	rec.Text = strings.TrimSpace(rec.Text)
	rec.OptionA = strings.TrimSpace(rec.OptionA)
	rec.OptionB = strings.TrimSpace(rec.OptionB)
	rec.Type = strings.TrimSpace(rec.Type)

	if err := validate.Struct(rec); err != nil {
		return rec, fmt.Errorf("%w: %s", ErrValidation, describe(err))
	}
	pair, err := riasec.ParsePair(rec.Type)
	if err != nil {
		return rec, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	rec.Type = pair.String()
	return rec, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "riasecpair":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a pair of R, I, A, S, E, C", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// Package pipeline converts one statement PDF end to end: classify the
// issuer, extract its tables, normalize the records and write them out.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cleared-dev/passbook/internal/classify"
	"github.com/cleared-dev/passbook/internal/config"
	"github.com/cleared-dev/passbook/internal/export"
	"github.com/cleared-dev/passbook/internal/extract"
	"github.com/cleared-dev/passbook/internal/model"
	"github.com/cleared-dev/passbook/internal/normalize"
	"github.com/cleared-dev/passbook/internal/route"
)

// ErrInputNotFound matches any InputNotFoundError.
var ErrInputNotFound = errors.New("input not found")

// InputNotFoundError reports a statement path that does not exist.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string { return fmt.Sprintf("File %s not found", e.Path) }

// Is lets errors.Is match ErrInputNotFound.
func (e *InputNotFoundError) Is(target error) bool { return target == ErrInputNotFound }

// Result describes a finished conversion.
type Result struct {
	Bank     model.Bank
	Strategy extract.Kind
	Records  []model.Record
}

// Service runs conversions.
type Service struct {
	detect     func(path string) (model.Bank, error)
	router     *route.Router
	normalizer *normalize.Normalizer
	write      func(path string, records []model.Record) error
}

// Option overrides a Service collaborator.
type Option func(*Service)

// WithRegistry routes extraction through r instead of the PDF strategies.
func WithRegistry(r *extract.Registry) Option {
	return func(s *Service) { s.router = route.New(r) }
}

// WithDetector replaces bank classification.
func WithDetector(detect func(path string) (model.Bank, error)) Option {
	return func(s *Service) { s.detect = detect }
}

// New builds a Service from cfg. It fails when the configured aliases are
// invalid.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	aliases, err := normalize.NewAliasTable(cfg.Aliases)
	if err != nil {
		return nil, err
	}
	extractOpts := cfg.ExtractOptions()

	s := &Service{
		detect: func(path string) (model.Bank, error) {
			return classify.DetectFile(path, extractOpts.Layout)
		},
		router:     route.New(extract.DefaultRegistry(extractOpts, extract.OpenPDF)),
		normalizer: normalize.New(aliases),
		write:      export.Write,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Detect classifies the statement at in.
func (s *Service) Detect(in string) (model.Bank, error) {
	if err := checkInput(in); err != nil {
		return "", err
	}
	bank, err := s.detect(in)
	if err != nil {
		return "", fmt.Errorf("detecting bank: %w", err)
	}
	return bank, nil
}

// Convert turns the statement at in into a spreadsheet at out. Nothing is
// written when any stage fails.
func (s *Service) Convert(in, out string) (*Result, error) {
	bank, err := s.Detect(in)
	if err != nil {
		return nil, err
	}
	return s.ConvertAs(bank, in, out)
}

// ConvertAs converts the statement at in as if it had been classified as
// bank.
func (s *Service) ConvertAs(bank model.Bank, in, out string) (*Result, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	res, err := s.router.Route(bank, in)
	if err != nil {
		return nil, fmt.Errorf("extracting tables: %w", err)
	}

	records := s.normalizer.Normalize(res.Table)
	if err := s.write(out, records); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	log.Info().
		Str("input", in).
		Str("output", out).
		Str("bank", string(bank)).
		Str("strategy", string(res.Kind)).
		Int("records", len(records)).
		Msg("converted statement")
	return &Result{Bank: bank, Strategy: res.Kind, Records: records}, nil
}

func checkInput(in string) error {
	if _, err := os.Stat(in); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &InputNotFoundError{Path: in}
		}
		return fmt.Errorf("checking input: %w", err)
	}
	return nil
}

// Package generation wires one planner run end to end: request validation,
// destination checks, acquiring and releasing the document backend, the
// pagination loop, and progress reporting.
package generation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"weekplan/internal/domain/locale"
	"weekplan/internal/domain/planner"
	"weekplan/internal/shared/errors"
)

// Request carries the invocation parameters of one generation run.
type Request struct {
	Year          int     `validate:"gte=1900,lte=2100"`
	FromWeek      int     `validate:"gte=1,lte=53"`
	NumberOfWeeks int     `validate:"gte=1,lte=52"`
	BreakAfter    int     `validate:"gte=0,lte=53"`
	Language      string  `validate:"required"`
	FontFamily    string  `validate:"required"`
	FontSize      float64 `validate:"gt=0"`

	// OutputPath empty selects the backend's interactive mode; the document
	// is written to a temp location and left for inspection.
	OutputPath string
	Force      bool
}

// ProgressFunc observes run progress: one call per emitted week plus a final
// 100% call. Purely observational.
type ProgressFunc func(percent int, message string)

// Confirmer asks the user whether an existing destination may be replaced.
type Confirmer interface {
	ConfirmOverwrite(path string) (bool, error)
}

type Service struct {
	backend  planner.Backend
	confirm  Confirmer
	progress ProgressFunc
	logger   *slog.Logger
	validate *validator.Validate
}

func NewService(backend planner.Backend, confirm Confirmer, progress ProgressFunc, logger *slog.Logger) *Service {
	return &Service{
		backend:  backend,
		confirm:  confirm,
		progress: progress,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Generate runs the whole planner generation and returns the location of the
// written document. The document handle is released on every exit path; an
// aborted run leaves no partial document behind.
func (s *Service) Generate(req Request) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", errors.NewValidationError("invalid invocation parameters", err.Error())
	}

	profile, err := locale.Resolve(req.Language)
	if err != nil {
		return "", err
	}

	if err := s.checkDestination(req); err != nil {
		return "", err
	}

	doc, err := s.backend.Open(planner.Options{
		OutputPath: req.OutputPath,
		FontFamily: req.FontFamily,
		FontSize:   req.FontSize,
	})
	if err != nil {
		if errors.IsAppError(err) {
			return "", err
		}
		return "", errors.NewBackendUnavailableError("document backend failed to start", err.Error())
	}
	defer doc.Close()

	r := planner.Range{
		Year:          req.Year,
		FromWeek:      req.FromWeek,
		NumberOfWeeks: req.NumberOfWeeks,
		BreakAfter:    req.BreakAfter,
	}

	s.logger.Info("generating planner",
		"year", req.Year,
		"from_week", req.FromWeek,
		"weeks", r.BlockCount(),
		"language", profile.Tag,
	)

	err = planner.Run(r, profile, doc, func(emitted, total int, block planner.WeekBlock) {
		s.logger.Debug("week rendered", "week", block.Week.String())
		s.report(emitted*100/total, fmt.Sprintf("rendered %s (%d of %d)", block.HeaderText, emitted, total))
	})
	if err != nil {
		return "", err
	}

	s.report(100, "finalizing document")
	if err := doc.Save(); err != nil {
		return "", err
	}

	return doc.Location(), nil
}

func (s *Service) report(percent int, message string) {
	if s.progress != nil {
		s.progress(percent, message)
	}
}

// checkDestination validates the output path before any backend resources
// are acquired: the directory must exist, a locked or unwritable file fails,
// and replacing an existing file needs either Force or the user's consent.
func (s *Service) checkDestination(req Request) error {
	path := req.OutputPath
	if path == "" {
		return nil
	}

	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		return errors.NewDestinationInvalidError("destination directory does not exist", filepath.Dir(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewDestinationInvalidError("destination is not accessible", err.Error())
	}
	if info.IsDir() {
		return errors.NewDestinationInvalidError("destination is a directory", path)
	}

	// best-effort lock probe: a file we cannot open for writing would only
	// fail later, after the document was rendered
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errors.NewDestinationInvalidError("destination file is locked or not writable", path)
	}
	f.Close()

	if req.Force {
		return nil
	}
	if s.confirm == nil {
		return errors.NewDestinationInvalidError("destination exists, use force to overwrite", path)
	}
	ok, err := s.confirm.ConfirmOverwrite(path)
	if err != nil {
		return errors.NewDestinationInvalidError("overwrite confirmation failed", err.Error())
	}
	if !ok {
		return errors.NewDestinationInvalidError("overwrite declined", path)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
	"github.com/nctu-sis/portal-api/pkg/export"
)

// ExportFormat selects the transcript download format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult carries rendered bytes plus the metadata the handler needs to
// build the download response.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders a student's transcript as a downloadable file.
type ExportService struct {
	students *StudentService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students *StudentService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

var transcriptHeaders = []string{"Code", "Course Name", "Ass1", "Ass2", "Year Work", "Final", "Total"}

// Transcript renders the authenticated student's transcript in the requested
// format. Rows whose course code no longer resolves keep an empty name.
func (s *ExportService) Transcript(ctx context.Context, userID int, format ExportFormat) (*ExportResult, error) {
	rows, err := s.students.Transcript(ctx, userID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: transcriptHeaders}
	for _, row := range rows {
		name := ""
		if row.CourseName != nil {
			name = *row.CourseName
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Code":        row.CourseCode,
			"Course Name": name,
			"Ass1":        row.Ass1Grade,
			"Ass2":        row.Ass2Grade,
			"Year Work":   strconv.Itoa(row.YearWork),
			"Final":       strconv.Itoa(row.FinalExam),
			"Total":       strconv.Itoa(row.TotalScore),
		})
	}

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "transcript.csv"}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset, "Academic Transcript")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "transcript.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/cv-profiler/internal/entity"
	"github.com/joseph-ayodele/cv-profiler/internal/repository"
)

// Service is a tiny façade over the profile repository that produces XLSX
// bytes for profile exports.
type Service struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewService(profiles repository.ProfileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{profiles: profiles, logger: logger}
}

// ExportProfileXLSX returns an XLSX workbook (as bytes) rendering the stored
// profile for userID: one sheet per section.
func (s *Service) ExportProfileXLSX(ctx context.Context, userID string) ([]byte, error) {
	start := time.Now()

	sp, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := writeProfileSheet(f, sp); err != nil {
		return nil, err
	}
	if err := writeEntriesSheets(f, &sp.Profile); err != nil {
		return nil, err
	}
	// Drop the default sheet left over from NewFile.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("profile exported",
		"user_id", userID,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeProfileSheet(f *excelize.File, sp *entity.StoredProfile) error {
	const sheet = "Profile"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][2]string{
		{"User ID", sp.UserID},
		{"Name", sp.Profile.PersonalInfo.Name},
		{"Email", sp.Profile.PersonalInfo.Email},
		{"Phone", sp.Profile.PersonalInfo.Phone},
		{"Location", sp.Profile.PersonalInfo.Location},
		{"LinkedIn", sp.Profile.PersonalInfo.LinkedIn},
		{"GitHub", sp.Profile.PersonalInfo.GitHub},
		{"Summary", sp.Profile.Summary},
		{"Skills", strings.Join(sp.Profile.Skills, ", ")},
		{"Certifications", strings.Join(sp.Profile.Certifications, ", ")},
		{"Created", sp.CreatedAt.Format(time.RFC3339)},
		{"Updated", sp.UpdatedAt.Format(time.RFC3339)},
	}
	for i, kv := range rows {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeEntriesSheets(f *excelize.File, p *entity.Profile) error {
	if err := writeTable(f, "Experience",
		[]string{"Company", "Position", "Start", "End", "Highlights"},
		func(write func(vals ...string)) {
			for _, e := range p.Experience {
				write(e.Company, e.Position, e.StartDate, e.EndDate, strings.Join(e.Highlights, "; "))
			}
		}); err != nil {
		return err
	}
	if err := writeTable(f, "Education",
		[]string{"Institution", "Degree", "Start", "End"},
		func(write func(vals ...string)) {
			for _, e := range p.Education {
				write(e.Institution, e.Degree, e.StartDate, e.EndDate)
			}
		}); err != nil {
		return err
	}
	return writeTable(f, "Languages",
		[]string{"Language", "Proficiency"},
		func(write func(vals ...string)) {
			for _, l := range p.Languages {
				write(l.Name, l.Proficiency)
			}
		})
}

func writeTable(f *excelize.File, sheet string, headers []string, fill func(write func(vals ...string))) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	row := 2
	var writeErr error
	fill(func(vals ...string) {
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil && writeErr == nil {
				writeErr = err
			}
		}
		row++
	})
	return writeErr
}

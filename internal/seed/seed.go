package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/mokoena/studenthub/internal/app/models"
	appRepos "github.com/mokoena/studenthub/internal/app/repositories"
	"github.com/mokoena/studenthub/internal/pkg/apperrors"
)

// CreateDefaultData creates default faculties and programmes if they
// don't exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	facultyRepo := appRepos.NewFacultyRepository(dbPool)
	programmeRepo := appRepos.NewProgrammeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Faculties/Programmes)...")
	var finalErr error

	defaults := []struct {
		faculty    appModels.Faculty
		programmes []appModels.Programme
	}{
		{
			faculty: appModels.Faculty{Name: "Faculty of Engineering", Code: "ENG"},
			programmes: []appModels.Programme{
				{Code: "BENGCS", Name: "Bachelor of Engineering in Computer Science", Level: appModels.LevelDegree, TotalCredits: 480, DurationYears: 4},
				{Code: "DIPEE", Name: "Diploma in Electrical Engineering", Level: appModels.LevelDiploma, TotalCredits: 360, DurationYears: 3},
			},
		},
		{
			faculty: appModels.Faculty{Name: "Faculty of Science", Code: "SCI"},
			programmes: []appModels.Programme{
				{Code: "BSCMATH", Name: "Bachelor of Science in Mathematics", Level: appModels.LevelDegree, TotalCredits: 360, DurationYears: 3},
				{Code: "MSCPHYS", Name: "Master of Science in Physics", Level: appModels.LevelMasters, TotalCredits: 180, DurationYears: 2},
			},
		},
		{
			faculty: appModels.Faculty{Name: "Faculty of Commerce", Code: "COM"},
			programmes: []appModels.Programme{
				{Code: "BCOMACC", Name: "Bachelor of Commerce in Accounting", Level: appModels.LevelDegree, TotalCredits: 360, DurationYears: 3},
			},
		},
	}

	for _, entry := range defaults {
		faculty := entry.faculty
		facultyID, err := facultyRepo.Create(ctx, &faculty)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrFacultyAlreadyExists):
			facultyID, err = findFacultyID(ctx, facultyRepo, faculty.Code)
			if err != nil {
				lgr.Error().Err(err).Str("code", faculty.Code).Msg("Error resolving existing faculty")
				finalErr = errors.Join(finalErr, err)
				continue
			}
		default:
			lgr.Error().Err(err).Str("code", faculty.Code).Msg("Error creating default faculty")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, programme := range entry.programmes {
			programme.FacultyID = facultyID
			if _, err := programmeRepo.Create(ctx, &programme); err != nil && !errors.Is(err, apperrors.ErrProgrammeAlreadyExists) {
				lgr.Error().Err(err).Str("code", programme.Code).Msg("Error creating default programme")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

func findFacultyID(ctx context.Context, repo *appRepos.FacultyRepository, code string) (int64, error) {
	faculties, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, f := range faculties {
		if f.Code == code {
			return f.ID, nil
		}
	}
	return 0, apperrors.ErrFacultyNotFound
}

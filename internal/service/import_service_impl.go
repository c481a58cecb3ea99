package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timeledger/internal/db"
	"github.com/alexanderramin/timeledger/internal/importer"
	"github.com/alexanderramin/timeledger/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService loads exports through uow so a file is stored entirely or
// not at all.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", startedAt, fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		employees := repository.NewSQLiteEmployeeRepo(tx)
		events := repository.NewSQLiteClockEventRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)

		for _, e := range converted.Employees {
			if err := employees.Create(ctx, e); err != nil {
				return fmt.Errorf("creating employee %s: %w", e.ID, err)
			}
		}
		for _, e := range converted.Events {
			if err := events.Create(ctx, e); err != nil {
				return fmt.Errorf("creating time entry %s: %w", e.ID, err)
			}
		}
		for _, t := range converted.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		for _, a := range converted.Assignments {
			if err := assignments.Create(ctx, a); err != nil {
				return fmt.Errorf("creating assignment %s/%s: %w", a.TaskID, a.SubjectID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{
		EmployeeCount:   len(converted.Employees),
		EventCount:      len(converted.Events),
		TaskCount:       len(converted.Tasks),
		AssignmentCount: len(converted.Assignments),
	}
	fields["employees"] = result.EmployeeCount
	fields["events"] = result.EventCount
	return result, nil
}

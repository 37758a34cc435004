package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nkminh14/uniconsole/core/resource"
)

type (
	Repository = resource.Repository[Teacher]

	// SubjectFinder lists the teachers qualified for a subject.
	SubjectFinder interface {
		TeachersBySubject(ctx context.Context, subjectID int) ([]Teacher, error)
	}

	Service struct {
		*resource.Service[Teacher]
		finder SubjectFinder
	}
)

func NewService(repo Repository, finder SubjectFinder) *Service {
	return &Service{
		Service: resource.NewService[Teacher]("giảng viên", repo, Columns, SearchTypes),
		finder:  finder,
	}
}

// BySubject returns the teachers of a subject; no subject means no teachers.
func (svc *Service) BySubject(ctx context.Context, subjectID int) ([]Teacher, error) {
	if subjectID <= 0 || svc.finder == nil {
		return []Teacher{}, nil
	}
	teachers, err := svc.finder.TeachersBySubject(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrapf(err, "listing teachers of subject %d", subjectID)
	}
	return teachers, nil
}

// Contains reports whether id is one of teachers.
func Contains(teachers []Teacher, id int) bool {
	for _, t := range teachers {
		if t.TeacherID == id {
			return true
		}
	}
	return false
}

package student

import (
	"github.com/nkminh14/uniconsole/core/resource"
)

type (
	Repository = resource.Repository[Student]
	Service    = resource.Service[Student]
)

func NewService(repo Repository) *Service {
	return resource.NewService[Student]("sinh viên", repo, Columns, SearchTypes)
}

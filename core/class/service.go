package class

import (
	"github.com/nkminh14/uniconsole/core/resource"
)

type (
	Repository = resource.Repository[Class]
	Service    = resource.Service[Class]
)

func NewService(repo Repository) *Service {
	return resource.NewService[Class]("lớp học", repo, Columns, SearchTypes)
}

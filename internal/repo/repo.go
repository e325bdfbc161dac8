package repo

import (
	"github.com/GlebRadaev/pointledger/internal/pg"
	detailrepo "github.com/GlebRadaev/pointledger/internal/repo/detail-repo"
	eventrepo "github.com/GlebRadaev/pointledger/internal/repo/event-repo"
	"github.com/GlebRadaev/pointledger/internal/service/pointservice"
)

type Repositories struct {
	EventRepo  pointservice.EventRepo
	DetailRepo pointservice.DetailRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		EventRepo:  eventrepo.New(conn),
		DetailRepo: detailrepo.New(conn),
	}
}

package source

import (
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records one observation per outbound request.
	Metrics interface {
		Observe(category model.Category, err error, started time.Time)
	}
)

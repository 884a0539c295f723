package domain

import (
	"context"
	"time"
)

type Review struct {
	ID          int
	ServiceID   int
	ServiceName string
	UserName    string
	Rating      int
	Comment     string
	Date        time.Time
}

type ReviewRepository interface {
	GetAll(ctx context.Context) ([]Review, error)
	Create(ctx context.Context, review *Review) error
}

package bot

import (
	"context"
	"database/sql"

	"github.com/iteachuz/enrollbot/internal/registration"
	"github.com/iteachuz/enrollbot/internal/storage"
)

// recorder adapts the registrations repository to the flow's Recorder.
type recorder struct {
	repo *storage.Registrations
}

func (r *recorder) Create(ctx context.Context, rec registration.Record) error {
	row := storage.Registration{
		TgUserID:  rec.TgUserID,
		Username:  nullable(rec.Username),
		FirstName: nullable(rec.FirstName),
		LastName:  nullable(rec.LastName),
		FullName:  rec.FullName,
		Age:       rec.Age,
		Phone:     rec.Phone,
		Course:    rec.Course,
		Level:     nullable(rec.Level),
		Section:   rec.Section,
	}
	return r.repo.Create(ctx, &row)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package pgrepo

import (
	"context"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type CheckInRepository struct {
	conn uow.DBTX
}

func NewCheckInRepository(conn uow.DBTX) *CheckInRepository {
	return &CheckInRepository{conn: conn}
}

const checkInColumns = `id, user_id, venue_id, started_at, ended_at, end_reason`

// FindOpenAtVenue ищет открытый (ended_at IS NULL) чекин юзера именно в этом заведении.
func (c *CheckInRepository) FindOpenAtVenue(ctx context.Context, userID, venueID int64) (*domain.CheckIn, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT `+checkInColumns+`
		FROM check_ins
		WHERE user_id = $1 AND venue_id = $2 AND ended_at IS NULL`, userID, venueID)
	checkIn, err := scanCheckIn(row)
	if err != nil {
		return nil, convertErr(err, "finding open check-in of user %d at venue %d", userID, venueID)
	}
	return checkIn, nil
}

// FindOpen ищет открытый чекин юзера в любом заведении.
func (c *CheckInRepository) FindOpen(ctx context.Context, userID int64) (*domain.CheckIn, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT `+checkInColumns+`
		FROM check_ins
		WHERE user_id = $1 AND ended_at IS NULL`, userID)
	checkIn, err := scanCheckIn(row)
	if err != nil {
		return nil, convertErr(err, "finding open check-in of user %d", userID)
	}
	return checkIn, nil
}

// CloseOpen закрывает все открытые чекины юзера с указанием причины. Возвращает число закрытых
// (в норме 0 или 1 — открытый чекин может быть максимум один).
func (c *CheckInRepository) CloseOpen(ctx context.Context, userID int64, reason string, at time.Time) (int64, error) {
	tag, err := c.conn.Exec(ctx, `
		UPDATE check_ins SET ended_at = $3, end_reason = $2
		WHERE user_id = $1 AND ended_at IS NULL`, userID, reason, at)
	if err != nil {
		return 0, convertErr(err, "closing open check-ins of user %d", userID)
	}
	return tag.RowsAffected(), nil
}

func (c *CheckInRepository) Create(ctx context.Context, userID, venueID int64, at time.Time) (*domain.CheckIn, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO check_ins (user_id, venue_id, started_at)
		VALUES ($1, $2, $3)
		RETURNING `+checkInColumns, userID, venueID, at)
	checkIn, err := scanCheckIn(row)
	if err != nil {
		return nil, convertErr(err, "creating check-in of user %d at venue %d", userID, venueID)
	}
	return checkIn, nil
}

func scanCheckIn(row rowScanner) (*domain.CheckIn, error) {
	var checkIn domain.CheckIn
	if err := row.Scan(
		&checkIn.ID, &checkIn.UserID, &checkIn.VenueID,
		&checkIn.StartedAt, &checkIn.EndedAt, &checkIn.EndReason,
	); err != nil {
		return nil, err
	}
	return &checkIn, nil
}

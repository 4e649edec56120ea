package pgrepo

import (
	"context"
	"time"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type VenueRepository struct {
	conn uow.DBTX
}

func NewVenueRepository(conn uow.DBTX) *VenueRepository {
	return &VenueRepository{conn: conn}
}

const venueColumns = `id, created_at, updated_at, name, municipality_id, zone_id, manager_id,
	alcohol_cutoff_override_mins, is_enabled, paused_at, boost_active_until, plan,
	subscription_started_at, subscription_ends_at`

func (v *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	row := v.conn.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	venue, err := scanVenue(row)
	if err != nil {
		return nil, convertErr(err, "getting venue %d", id)
	}
	return venue, nil
}

func (v *VenueRepository) GetByManagerID(ctx context.Context, managerID int64) (*domain.Venue, error) {
	row := v.conn.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE manager_id = $1`, managerID)
	venue, err := scanVenue(row)
	if err != nil {
		return nil, convertErr(err, "getting venue by manager %d", managerID)
	}
	return venue, nil
}

// SetEnabled включает/выключает заведение. При выключении проставляется pausedAt,
// при включении метка паузы очищается.
func (v *VenueRepository) SetEnabled(ctx context.Context, venueID int64, enabled bool, pausedAt *time.Time) error {
	tag, err := v.conn.Exec(ctx, `
		UPDATE venues SET is_enabled = $2, paused_at = $3, updated_at = now()
		WHERE id = $1`, venueID, enabled, pausedAt)
	if err != nil {
		return convertErr(err, "toggling venue %d", venueID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "toggling venue %d", venueID)
	}
	return nil
}

func (v *VenueRepository) UpdatePlan(ctx context.Context, args repoargs.VenuePlanUpdate) error {
	tag, err := v.conn.Exec(ctx, `
		UPDATE venues SET plan = $2, subscription_started_at = $3, subscription_ends_at = $4, updated_at = now()
		WHERE id = $1`, args.VenueID, args.Plan, args.StartedAt, args.EndsAt)
	if err != nil {
		return convertErr(err, "updating plan of venue %d", args.VenueID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating plan of venue %d", args.VenueID)
	}
	return nil
}

func (v *VenueRepository) DetachManager(ctx context.Context, venueID int64) error {
	if _, err := v.conn.Exec(ctx,
		`UPDATE venues SET manager_id = NULL, updated_at = now() WHERE id = $1`, venueID); err != nil {
		return convertErr(err, "detaching manager of venue %d", venueID)
	}
	return nil
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	var venue domain.Venue
	if err := row.Scan(
		&venue.ID, &venue.CreatedAt, &venue.UpdatedAt, &venue.Name,
		&venue.MunicipalityID, &venue.ZoneID, &venue.ManagerID,
		&venue.AlcoholCutoffOverrideMins, &venue.IsEnabled, &venue.PausedAt,
		&venue.BoostActiveUntil, &venue.Plan,
		&venue.SubscriptionStartedAt, &venue.SubscriptionEndsAt,
	); err != nil {
		return nil, err
	}
	return &venue, nil
}

package pgrepo

import (
	"context"

	"github.com/clicks-pr/clicks-core/internal/domain"
	"github.com/clicks-pr/clicks-core/internal/repository/repoargs"
	"github.com/clicks-pr/clicks-core/pkg/uow"
)

type MunicipalityRepository struct {
	conn uow.DBTX
}

func NewMunicipalityRepository(conn uow.DBTX) *MunicipalityRepository {
	return &MunicipalityRepository{conn: conn}
}

// Колонки дневных переопределений идут парами воскресенье..суббота — порядок совпадает
// с индексами time.Weekday.
const municipalityColumns = `id, created_at, updated_at, name, default_start_mins, default_cutoff_mins,
	sun_start_mins, mon_start_mins, tue_start_mins, wed_start_mins, thu_start_mins, fri_start_mins, sat_start_mins,
	sun_cutoff_mins, mon_cutoff_mins, tue_cutoff_mins, wed_cutoff_mins, thu_cutoff_mins, fri_cutoff_mins, sat_cutoff_mins`

func (m *MunicipalityRepository) GetByID(ctx context.Context, id int64) (*domain.Municipality, error) {
	row := m.conn.QueryRow(ctx, `SELECT `+municipalityColumns+` FROM municipalities WHERE id = $1`, id)
	muni, err := scanMunicipality(row)
	if err != nil {
		return nil, convertErr(err, "getting municipality %d", id)
	}
	return muni, nil
}

func (m *MunicipalityRepository) List(ctx context.Context) ([]domain.Municipality, error) {
	rows, err := m.conn.Query(ctx, `SELECT `+municipalityColumns+` FROM municipalities ORDER BY name`)
	if err != nil {
		return nil, convertErr(err, "listing municipalities")
	}
	defer rows.Close()

	var munis []domain.Municipality
	for rows.Next() {
		muni, scanErr := scanMunicipality(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing municipalities")
		}
		munis = append(munis, *muni)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing municipalities")
	}
	return munis, nil
}

func (m *MunicipalityRepository) UpdateWindow(ctx context.Context, args repoargs.MunicipalityWindowUpdate) error {
	tag, err := m.conn.Exec(ctx, `
		UPDATE municipalities SET
			default_start_mins = $2, default_cutoff_mins = $3,
			sun_start_mins = $4,  mon_start_mins = $5,  tue_start_mins = $6,  wed_start_mins = $7,
			thu_start_mins = $8,  fri_start_mins = $9,  sat_start_mins = $10,
			sun_cutoff_mins = $11, mon_cutoff_mins = $12, tue_cutoff_mins = $13, wed_cutoff_mins = $14,
			thu_cutoff_mins = $15, fri_cutoff_mins = $16, sat_cutoff_mins = $17,
			updated_at = now()
		WHERE id = $1`,
		args.ID, args.DefaultStartMins, args.DefaultCutoffMins,
		args.DayStartMins[0], args.DayStartMins[1], args.DayStartMins[2], args.DayStartMins[3],
		args.DayStartMins[4], args.DayStartMins[5], args.DayStartMins[6],
		args.DayCutoffMins[0], args.DayCutoffMins[1], args.DayCutoffMins[2], args.DayCutoffMins[3],
		args.DayCutoffMins[4], args.DayCutoffMins[5], args.DayCutoffMins[6])
	if err != nil {
		return convertErr(err, "updating window of municipality %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating window of municipality %d", args.ID)
	}
	return nil
}

func scanMunicipality(row rowScanner) (*domain.Municipality, error) {
	var muni domain.Municipality
	if err := row.Scan(
		&muni.ID, &muni.CreatedAt, &muni.UpdatedAt, &muni.Name,
		&muni.DefaultStartMins, &muni.DefaultCutoffMins,
		&muni.DayStartMins[0], &muni.DayStartMins[1], &muni.DayStartMins[2], &muni.DayStartMins[3],
		&muni.DayStartMins[4], &muni.DayStartMins[5], &muni.DayStartMins[6],
		&muni.DayCutoffMins[0], &muni.DayCutoffMins[1], &muni.DayCutoffMins[2], &muni.DayCutoffMins[3],
		&muni.DayCutoffMins[4], &muni.DayCutoffMins[5], &muni.DayCutoffMins[6],
	); err != nil {
		return nil, err
	}
	return &muni, nil
}

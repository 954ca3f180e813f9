package store

import (
	"context"
	"database/sql"

	internalerrors "github.com/gcbaptista/monument-search/internal/errors"
	"github.com/gcbaptista/monument-search/model"
	"github.com/gcbaptista/monument-search/services"
)

// monumentColumns and monumentJoins are shared by every query that returns
// monument rows, so all of them produce identically shaped rows for
// scanMonument.
const monumentColumns = `
	m.id, m.name, m.construction_year, m.latitude, m.longitude,
	t.id, t.name,
	a.id, a.street, a.house_number,
	d.id, d.name`

const monumentJoins = `
	FROM monuments m
	JOIN monument_types t ON t.id = m.type_id
	JOIN addresses a ON a.id = m.address_id
	JOIN districts d ON d.id = a.district_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanMonument maps one joined monument row into a typed model.Monument.
func scanMonument(row rowScanner) (model.Monument, error) {
	var (
		m           model.Monument
		year        sql.NullInt64
		lat, lon    sql.NullFloat64
		houseNumber sql.NullString
	)

	err := row.Scan(
		&m.ID, &m.Name, &year, &lat, &lon,
		&m.Type.ID, &m.Type.Name,
		&m.Address.ID, &m.Address.Street, &houseNumber,
		&m.Address.District.ID, &m.Address.District.Name,
	)
	if err != nil {
		return model.Monument{}, err
	}

	if year.Valid {
		m.ConstructionYear = int(year.Int64)
	}
	if lat.Valid {
		m.Latitude = lat.Float64
	}
	if lon.Valid {
		m.Longitude = lon.Float64
	}
	if houseNumber.Valid {
		m.Address.HouseNumber = houseNumber.String
	}
	return m, nil
}

// MonumentsByName returns every monument whose name contains the token,
// case-insensitively, in storage iteration order.
func (s *Store) MonumentsByName(ctx context.Context, token string) ([]services.FieldMatch, error) {
	const op = "monuments_by_name"

	query := `SELECT` + monumentColumns + monumentJoins + `
	WHERE instr(lower(m.name), lower(?)) > 0`

	rows, err := s.db.QueryContext(ctx, query, token)
	if err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	defer rows.Close()

	matches := make([]services.FieldMatch, 0)
	for rows.Next() {
		m, err := scanMonument(rows)
		if err != nil {
			return nil, internalerrors.NewStorageError(op, err)
		}
		matches = append(matches, services.FieldMatch{Monument: m, Value: m.Name})
	}
	if err := rows.Err(); err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	return matches, nil
}

// MonumentsByStreet returns every monument whose address street contains
// the token, case-insensitively.
func (s *Store) MonumentsByStreet(ctx context.Context, token string) ([]services.FieldMatch, error) {
	const op = "monuments_by_street"

	query := `SELECT` + monumentColumns + monumentJoins + `
	WHERE instr(lower(a.street), lower(?)) > 0`

	rows, err := s.db.QueryContext(ctx, query, token)
	if err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	defer rows.Close()

	matches := make([]services.FieldMatch, 0)
	for rows.Next() {
		m, err := scanMonument(rows)
		if err != nil {
			return nil, internalerrors.NewStorageError(op, err)
		}
		matches = append(matches, services.FieldMatch{Monument: m, Value: m.Address.Street})
	}
	if err := rows.Err(); err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	return matches, nil
}

// MonumentsByParticipant returns every monument one of whose participants'
// names contains the token, case-insensitively. A monument appears once per
// matching participant; the matched participant is attached to the returned
// snapshot.
func (s *Store) MonumentsByParticipant(ctx context.Context, token string) ([]services.FieldMatch, error) {
	const op = "monuments_by_participant"

	query := `SELECT` + monumentColumns + `,
	p.id, p.name, p.role` + monumentJoins + `
	JOIN monument_participants mp ON mp.monument_id = m.id
	JOIN participants p ON p.id = mp.participant_id
	WHERE instr(lower(p.name), lower(?)) > 0`

	rows, err := s.db.QueryContext(ctx, query, token)
	if err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	defer rows.Close()

	matches := make([]services.FieldMatch, 0)
	for rows.Next() {
		var (
			m           model.Monument
			year        sql.NullInt64
			lat, lon    sql.NullFloat64
			houseNumber sql.NullString
			participant model.Participant
			role        sql.NullString
		)
		err := rows.Scan(
			&m.ID, &m.Name, &year, &lat, &lon,
			&m.Type.ID, &m.Type.Name,
			&m.Address.ID, &m.Address.Street, &houseNumber,
			&m.Address.District.ID, &m.Address.District.Name,
			&participant.ID, &participant.Name, &role,
		)
		if err != nil {
			return nil, internalerrors.NewStorageError(op, err)
		}
		if year.Valid {
			m.ConstructionYear = int(year.Int64)
		}
		if lat.Valid {
			m.Latitude = lat.Float64
		}
		if lon.Valid {
			m.Longitude = lon.Float64
		}
		if houseNumber.Valid {
			m.Address.HouseNumber = houseNumber.String
		}
		if role.Valid {
			participant.Role = role.String
		}
		m.Participants = []model.Participant{participant}

		matches = append(matches, services.FieldMatch{Monument: m, Value: participant.Name})
	}
	if err := rows.Err(); err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	return matches, nil
}

// Monuments lists the full dataset in primary-key order. Participants are
// not joined here; use MonumentByID for a fully populated snapshot.
func (s *Store) Monuments(ctx context.Context) ([]model.Monument, error) {
	const op = "monuments"

	query := `SELECT` + monumentColumns + monumentJoins + `
	ORDER BY m.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	defer rows.Close()

	monuments := make([]model.Monument, 0)
	for rows.Next() {
		m, err := scanMonument(rows)
		if err != nil {
			return nil, internalerrors.NewStorageError(op, err)
		}
		monuments = append(monuments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	return monuments, nil
}

// MonumentByID fetches one monument with its participants.
func (s *Store) MonumentByID(ctx context.Context, id int64) (model.Monument, error) {
	const op = "monument_by_id"

	query := `SELECT` + monumentColumns + monumentJoins + `
	WHERE m.id = ?`

	m, err := scanMonument(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Monument{}, internalerrors.NewMonumentNotFoundError(id)
	}
	if err != nil {
		return model.Monument{}, internalerrors.NewStorageError(op, err)
	}

	participants, err := s.participantsOf(ctx, id)
	if err != nil {
		return model.Monument{}, internalerrors.NewStorageError(op, err)
	}
	m.Participants = participants
	return m, nil
}

func (s *Store) participantsOf(ctx context.Context, monumentID int64) ([]model.Participant, error) {
	query := `SELECT p.id, p.name, p.role
	FROM participants p
	JOIN monument_participants mp ON mp.participant_id = p.id
	WHERE mp.monument_id = ?
	ORDER BY p.id`

	rows, err := s.db.QueryContext(ctx, query, monumentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]model.Participant, 0)
	for rows.Next() {
		var p model.Participant
		var role sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &role); err != nil {
			return nil, err
		}
		if role.Valid {
			p.Role = role.String
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// MonumentsWithin returns every monument whose coordinates fall inside the
// bounding box, both bounds inclusive. Monuments without coordinates are
// never matched.
func (s *Store) MonumentsWithin(ctx context.Context, box services.BoundingBox) ([]model.Monument, error) {
	const op = "monuments_within"

	query := `SELECT` + monumentColumns + monumentJoins + `
	WHERE m.latitude IS NOT NULL AND m.longitude IS NOT NULL
	  AND m.latitude BETWEEN ? AND ?
	  AND m.longitude BETWEEN ? AND ?
	ORDER BY m.id`

	rows, err := s.db.QueryContext(ctx, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	defer rows.Close()

	monuments := make([]model.Monument, 0)
	for rows.Next() {
		m, err := scanMonument(rows)
		if err != nil {
			return nil, internalerrors.NewStorageError(op, err)
		}
		monuments = append(monuments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, internalerrors.NewStorageError(op, err)
	}
	return monuments, nil
}

// ConstructionYearRange returns the oldest and newest construction years in
// the dataset. If no monument carries a construction year, both bounds are
// zero.
func (s *Store) ConstructionYearRange(ctx context.Context) (services.YearRange, error) {
	const op = "construction_year_range"

	query := `SELECT MIN(construction_year), MAX(construction_year)
	FROM monuments
	WHERE construction_year IS NOT NULL`

	var oldest, newest sql.NullInt64
	if err := s.db.QueryRowContext(ctx, query).Scan(&oldest, &newest); err != nil {
		return services.YearRange{}, internalerrors.NewStorageError(op, err)
	}

	var r services.YearRange
	if oldest.Valid {
		r.Oldest = int(oldest.Int64)
	}
	if newest.Valid {
		r.Newest = int(newest.Int64)
	}
	return r, nil
}

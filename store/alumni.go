// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/alumni-portal/models"
	"github.com/danielhkuo/alumni-portal/validation"
)

const alumniColumns = `alumniid, firstname, lastname, primaryemail, phone,
	grad_major, alum_gradyear, mailing_list, linkedin`

func scanAlumni(row interface{ Scan(...any) error }) (models.Alumni, error) {
	var a models.Alumni
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
		&a.Major, &a.GradYear, &a.MailingList, &a.LinkedIn,
	)
	return a, err
}

// ListAlumni returns the directory ordered by id. A non-empty search keeps
// alumni whose last name or major contains it, ignoring case.
func (s *Store) ListAlumni(ctx context.Context, search string) ([]models.Alumni, error) {
	query := `SELECT ` + alumniColumns + ` FROM alumni`
	var args []any

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query += ` WHERE LOWER(lastname) LIKE ? ESCAPE '\'
			OR LOWER(COALESCE(grad_major, '')) LIKE ? ESCAPE '\'`
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY alumniid`

	list, err := queryList(ctx, s.conn, s.q(query), func(rows *sql.Rows) (models.Alumni, error) {
		return scanAlumni(rows)
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alumni: %w", err)
	}
	return list, nil
}

// GetAlumniByID returns one alumni or ErrNotFound.
func (s *Store) GetAlumniByID(ctx context.Context, id int64) (models.Alumni, error) {
	return getAlumni(ctx, s.conn, s.q, id)
}

func getAlumni(ctx context.Context, qr querier, q func(string) string, id int64) (models.Alumni, error) {
	a, err := scanAlumni(qr.QueryRowContext(ctx,
		q(`SELECT `+alumniColumns+` FROM alumni WHERE alumniid = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Alumni{}, fmt.Errorf("alumni %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Alumni{}, fmt.Errorf("failed to get alumni %d: %w", id, err)
	}
	return a, nil
}

// DegreesForAlumni returns an alumni's degrees in id order.
func (s *Store) DegreesForAlumni(ctx context.Context, alumniID int64) ([]models.Degree, error) {
	list, err := queryList(ctx, s.conn, s.q(`
		SELECT degreeid, alumniid, major, minor, school, honors, gradmonth, gradyear
		FROM degree
		WHERE alumniid = ?
		ORDER BY degreeid
	`), func(rows *sql.Rows) (models.Degree, error) {
		var d models.Degree
		err := rows.Scan(&d.ID, &d.AlumniID, &d.Major, &d.Minor, &d.School, &d.Honors, &d.GradMonth, &d.GradYear)
		return d, err
	}, alumniID)
	if err != nil {
		return nil, fmt.Errorf("failed to list degrees: %w", err)
	}
	return list, nil
}

// EmploymentForAlumni returns an alumni's employment history in id order.
func (s *Store) EmploymentForAlumni(ctx context.Context, alumniID int64) ([]models.Employment, error) {
	list, err := queryList(ctx, s.conn, s.q(`
		SELECT employmentid, alumniid, employername, title, industry, city, state, startyear, endyear
		FROM employment
		WHERE alumniid = ?
		ORDER BY employmentid
	`), func(rows *sql.Rows) (models.Employment, error) {
		var e models.Employment
		err := rows.Scan(&e.ID, &e.AlumniID, &e.EmployerName, &e.Title, &e.Industry,
			&e.City, &e.State, &e.StartYear, &e.EndYear)
		return e, err
	}, alumniID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment: %w", err)
	}
	return list, nil
}

// MembershipsForAlumni returns an alumni's association memberships in id order.
func (s *Store) MembershipsForAlumni(ctx context.Context, alumniID int64) ([]models.Membership, error) {
	list, err := queryList(ctx, s.conn, s.q(`
		SELECT membershipid, alumniid, orgname, role, startyear, endyear
		FROM alumni_membership
		WHERE alumniid = ?
		ORDER BY membershipid
	`), func(rows *sql.Rows) (models.Membership, error) {
		var m models.Membership
		err := rows.Scan(&m.ID, &m.AlumniID, &m.OrgName, &m.Role, &m.StartYear, &m.EndYear)
		return m, err
	}, alumniID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return list, nil
}

// GetAlumniProfile gathers an alumni and their related records. Giving
// history and total are only filled in when withGiving is set.
func (s *Store) GetAlumniProfile(ctx context.Context, id int64, withGiving bool) (models.AlumniProfile, error) {
	var p models.AlumniProfile
	var err error

	if p.Alumni, err = s.GetAlumniByID(ctx, id); err != nil {
		return models.AlumniProfile{}, err
	}
	if p.Degrees, err = s.DegreesForAlumni(ctx, id); err != nil {
		return models.AlumniProfile{}, err
	}
	if p.Employment, err = s.EmploymentForAlumni(ctx, id); err != nil {
		return models.AlumniProfile{}, err
	}
	if p.Memberships, err = s.MembershipsForAlumni(ctx, id); err != nil {
		return models.AlumniProfile{}, err
	}

	if withGiving {
		if p.Contributions, err = s.ContributionsForAlumni(ctx, id); err != nil {
			return models.AlumniProfile{}, err
		}
		var total float64
		for _, c := range p.Contributions {
			total += c.Amount
		}
		total = roundCents(total)
		p.TotalGiven = &total
	}

	return p, nil
}

// UpdateContact overwrites an alumni's email, phone and mailing list flag,
// and the LinkedIn link when one is given. It returns the updated record or
// ErrNotFound; invalid input is rejected before the store is touched.
func (s *Store) UpdateContact(ctx context.Context, id int64, req models.UpdateContactRequest) (models.Alumni, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.MailingList = strings.TrimSpace(req.MailingList)
	if req.LinkedIn != nil {
		link := strings.TrimSpace(*req.LinkedIn)
		req.LinkedIn = &link
	}

	if err := validation.Struct(req); err != nil {
		return models.Alumni{}, err
	}

	query := `UPDATE alumni SET primaryemail = ?, phone = ?, mailing_list = ?`
	args := []any{req.Email, req.Phone, req.MailingList}
	if req.LinkedIn != nil {
		query += `, linkedin = ?`
		args = append(args, nullIfEmpty(*req.LinkedIn))
	}
	query += ` WHERE alumniid = ?`
	args = append(args, id)

	var updated models.Alumni
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, s.q(query), args...)
		if err != nil {
			return fmt.Errorf("failed to update alumni %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update alumni %d: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("alumni %d: %w", id, ErrNotFound)
		}

		updated, err = getAlumni(ctx, tx, s.q, id)
		return err
	})
	if err != nil {
		return models.Alumni{}, err
	}
	return updated, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// escapeLike escapes LIKE wildcards so search text matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/danielhkuo/alumni-portal/models"
	"github.com/danielhkuo/alumni-portal/validation"
)

// ContributionsForAlumni returns an alumni's gifts with campaign names,
// most recent first.
func (s *Store) ContributionsForAlumni(ctx context.Context, alumniID int64) ([]models.ContributionDetail, error) {
	list, err := queryList(ctx, s.conn, s.q(`
		SELECT c.contributionid, c.contributiondate, c.amount, m.campaignid, m.campaignname
		FROM contribution c
		JOIN campaign m ON c.campaignid = m.campaignid
		WHERE c.alumniid = ?
		ORDER BY c.contributiondate DESC, c.contributionid DESC
	`), func(rows *sql.Rows) (models.ContributionDetail, error) {
		var d models.ContributionDetail
		err := rows.Scan(&d.ID, &d.Date, &d.Amount, &d.CampaignID, &d.CampaignName)
		return d, err
	}, alumniID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return list, nil
}

// AllContributions returns every gift with donor and campaign names,
// most recent first.
func (s *Store) AllContributions(ctx context.Context) ([]models.ContributionListing, error) {
	list, err := queryList(ctx, s.conn, `
		SELECT c.contributionid, c.contributiondate, a.alumniid, a.firstname, a.lastname,
		       m.campaignname, c.amount
		FROM contribution c
		JOIN alumni a ON c.alumniid = a.alumniid
		JOIN campaign m ON c.campaignid = m.campaignid
		ORDER BY c.contributiondate DESC, c.contributionid DESC
	`, func(rows *sql.Rows) (models.ContributionListing, error) {
		var l models.ContributionListing
		err := rows.Scan(&l.ID, &l.Date, &l.AlumniID, &l.FirstName, &l.LastName, &l.CampaignName, &l.Amount)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list all contributions: %w", err)
	}
	return list, nil
}

// CreateContribution records a gift. The alumni and campaign must exist
// (ErrReferenceViolation otherwise); the id is assigned by the store.
// Amounts are rounded to cents.
func (s *Store) CreateContribution(ctx context.Context, in models.NewContribution) (models.Contribution, error) {
	in.Date = strings.TrimSpace(in.Date)
	if err := validation.Struct(in); err != nil {
		return models.Contribution{}, err
	}

	amount := roundCents(in.Amount)
	if amount <= 0 {
		return models.Contribution{}, &validation.Error{Fields: []validation.FieldError{
			{Field: "amount", Error: "must be at least 0.01"},
		}}
	}

	out := models.Contribution{
		AlumniID:   in.AlumniID,
		CampaignID: in.CampaignID,
		Date:       in.Date,
		Amount:     amount,
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, s.q(`SELECT 1 FROM alumni WHERE alumniid = ?`), in.AlumniID)
		if err != nil {
			return fmt.Errorf("failed to check alumni: %w", err)
		}
		if !ok {
			return fmt.Errorf("alumni %d: %w", in.AlumniID, ErrReferenceViolation)
		}

		ok, err = exists(ctx, tx, s.q(`SELECT 1 FROM campaign WHERE campaignid = ?`), in.CampaignID)
		if err != nil {
			return fmt.Errorf("failed to check campaign: %w", err)
		}
		if !ok {
			return fmt.Errorf("campaign %d: %w", in.CampaignID, ErrReferenceViolation)
		}

		out.ID, err = s.insertContribution(ctx, tx, out)
		return err
	})
	if err != nil {
		return models.Contribution{}, err
	}
	return out, nil
}

// insertContribution is the only place contribution ids are assigned.
// The store generates them (AUTOINCREMENT / identity), so concurrent
// submissions can not collide the way a MAX(id)+1 read would.
func (s *Store) insertContribution(ctx context.Context, tx *sql.Tx, c models.Contribution) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, s.q(`
		INSERT INTO contribution (alumniid, campaignid, contributiondate, amount)
		VALUES (?, ?, ?, ?)
		RETURNING contributionid
	`), c.AlumniID, c.CampaignID, c.Date, c.Amount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contribution: %w", err)
	}
	return id, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/alumni-portal/models"
)

// SummaryStats returns the dashboard totals in one statement. Only Active
// campaigns are counted. Empty tables give zeros.
func (s *Store) SummaryStats(ctx context.Context) (models.SummaryStats, error) {
	var st models.SummaryStats
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT
			(SELECT COUNT(*) FROM alumni),
			(SELECT COUNT(DISTINCT employername) FROM employment),
			(SELECT COUNT(*) FROM campaign WHERE status = ?),
			(SELECT COALESCE(SUM(amount), 0) FROM contribution)
	`), models.CampaignActive).Scan(
		&st.TotalAlumni, &st.TotalEmployers, &st.TotalCampaigns, &st.TotalContributions,
	)
	if err != nil {
		return models.SummaryStats{}, fmt.Errorf("failed to compute summary stats: %w", err)
	}
	st.TotalContributions = roundCents(st.TotalContributions)
	return st, nil
}

// EmployerSummary returns one row per employer and industry with the number
// of distinct alumni there, largest first.
func (s *Store) EmployerSummary(ctx context.Context) ([]models.EmployerSummary, error) {
	list, err := queryList(ctx, s.conn, `
		SELECT employername, industry, COUNT(DISTINCT alumniid) AS num_alumni
		FROM employment
		GROUP BY employername, industry
		ORDER BY num_alumni DESC, employername
	`, func(rows *sql.Rows) (models.EmployerSummary, error) {
		var e models.EmployerSummary
		err := rows.Scan(&e.EmployerName, &e.Industry, &e.NumAlumni)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize employers: %w", err)
	}
	return list, nil
}

// ListCampaigns returns every campaign with the amount raised so far.
func (s *Store) ListCampaigns(ctx context.Context) ([]models.CampaignSummary, error) {
	list, err := queryList(ctx, s.conn, `
		SELECT m.campaignid, m.campaignname, m.goalamount, m.status,
		       COALESCE(SUM(c.amount), 0), COUNT(c.contributionid)
		FROM campaign m
		LEFT JOIN contribution c ON c.campaignid = m.campaignid
		GROUP BY m.campaignid, m.campaignname, m.goalamount, m.status
		ORDER BY m.campaignid
	`, func(rows *sql.Rows) (models.CampaignSummary, error) {
		var c models.CampaignSummary
		err := rows.Scan(&c.ID, &c.Name, &c.GoalAmount, &c.Status, &c.Raised, &c.Contributions)
		c.Raised = roundCents(c.Raised)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return list, nil
}

// GetCampaign returns one campaign or ErrNotFound.
func (s *Store) GetCampaign(ctx context.Context, id int64) (models.Campaign, error) {
	var c models.Campaign
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT campaignid, campaignname, goalamount, status
		FROM campaign
		WHERE campaignid = ?
	`), id).Scan(&c.ID, &c.Name, &c.GoalAmount, &c.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Campaign{}, fmt.Errorf("campaign %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Campaign{}, fmt.Errorf("failed to get campaign %d: %w", id, err)
	}
	return c, nil
}

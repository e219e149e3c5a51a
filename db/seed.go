// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// DemoLinkedIn is the profile link given to alumni 1001 by the seed.
const DemoLinkedIn = "https://www.linkedin.com/in/maya-johnson-demo"

// Init brings the schema up to date and inserts the demo rows once.
func Init(ctx context.Context, conn *sql.DB, dialect Dialect) error {
	if _, err := Migrate(ctx, conn, dialect); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if _, err := Seed(ctx, conn, dialect); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	return nil
}

// Seed inserts the demonstration rows when the alumni table is empty and
// reports whether it did. Running it again is a no-op apart from restoring
// the demo LinkedIn link if it was cleared.
func Seed(ctx context.Context, conn *sql.DB, dialect Dialect) (bool, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	var count int64
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM alumni").Scan(&count); err != nil {
		return false, fmt.Errorf("count alumni: %w", err)
	}

	seeded := false
	if count == 0 {
		for _, stmt := range seedStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return false, fmt.Errorf("insert seed rows: %w", err)
			}
		}

		// Explicit ids do not advance a Postgres identity sequence
		if dialect == Postgres {
			_, err := tx.ExecContext(ctx, `
				SELECT setval(pg_get_serial_sequence('contribution', 'contributionid'),
				              (SELECT MAX(contributionid) FROM contribution))`)
			if err != nil {
				return false, fmt.Errorf("advance contribution sequence: %w", err)
			}
		}
		seeded = true
	}

	_, err = tx.ExecContext(ctx, Rebind(dialect, `
		UPDATE alumni
		SET linkedin = ?
		WHERE alumniid = 1001
		  AND (linkedin IS NULL OR linkedin = '')`), DemoLinkedIn)
	if err != nil {
		return false, fmt.Errorf("set demo linkedin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}

	if seeded {
		log.Info().Msg("demo data seeded")
	}
	return seeded, nil
}

var seedStatements = []string{
	`INSERT INTO alumni (alumniid, firstname, lastname, primaryemail, phone, grad_major, alum_gradyear, mailing_list)
	VALUES
		(1001, 'Maya',   'Johnson',  'maya.johnson@email.com',    '202-555-7821', 'Finance',               2018, 'Yes'),
		(1002, 'Jordan', 'Smith',    'jordan.smith@email.com',    '404-555-6719', 'Marketing',             2019, 'Yes'),
		(1003, 'Amira',  'Patel',    'amira.patel@email.com',     '312-555-2190', 'Computer Info Systems', 2020, 'No'),
		(1004, 'Isaiah', 'Thompson', 'isaiah.thompson@email.com', '443-555-9898', 'Finance',               2017, 'Yes'),
		(1005, 'Nia',    'Brown',    'nia.brown@email.com',       '703-555-3104', 'Supply Chain',          2021, 'Yes')`,

	`INSERT INTO degree (degreeid, alumniid, major, minor, school, honors, gradmonth, gradyear)
	VALUES
		(2001, 1001, 'Finance',               'None',       'Howard University School of Business', 'Cum Laude',       'May', 2018),
		(2002, 1002, 'Marketing',             'None',       'Howard University School of Business', NULL,              'May', 2019),
		(2003, 1003, 'Computer Info Systems', 'Math',       'Howard University School of Business', 'Magna Cum Laude', 'May', 2020),
		(2004, 1004, 'Finance',               'Accounting', 'Howard University School of Business', NULL,              'May', 2017),
		(2005, 1005, 'Supply Chain',          'None',       'Howard University School of Business', NULL,              'May', 2021)`,

	`INSERT INTO employment (employmentid, alumniid, employername, title, industry, city, state, startyear, endyear)
	VALUES
		(3001, 1001, 'Deloitte',         'Consultant',     'Consulting',         'Washington',    'DC', 2018, NULL),
		(3002, 1002, 'Procter & Gamble', 'Brand Manager',  'CPG',                'Cincinnati',    'OH', 2019, NULL),
		(3003, 1003, 'Google',           'Analyst',        'Technology',         'Mountain View', 'CA', 2020, NULL),
		(3004, 1004, 'Bank of America',  'Risk Analyst',   'Financial Services', 'Charlotte',     'NC', 2017, NULL),
		(3005, 1005, 'Amazon',           'Operations Mgr', 'E-commerce',         'Seattle',       'WA', 2021, NULL)`,

	`INSERT INTO alumni_membership (membershipid, alumniid, orgname, role, startyear, endyear)
	VALUES
		(4001, 1001, 'HU Finance Alumni Network', 'Mentor', 2020, NULL),
		(4002, 1003, 'Tech Alumni Council',       'Member', 2021, NULL)`,

	`INSERT INTO campaign (campaignid, campaignname, goalamount, status)
	VALUES
		(5001, 'Student Scholarship Fund', 50000, 'Active'),
		(5002, 'Study Abroad Support',     30000, 'Active')`,

	`INSERT INTO contribution (contributionid, alumniid, campaignid, contributiondate, amount)
	VALUES
		(9001, 1001, 5001, '2024-01-15', 1500.00),
		(9002, 1002, 5001, '2024-03-10',  750.00),
		(9003, 1003, 5002, '2024-05-01', 1000.00)`,
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdateContactRequest: email, phone, mailing_list, optional linkedin
  - CreateContributionRequest: amount, date
  - NewContribution: a complete submission handed to the store

# Response Types

  - CreateContributionResponse: contribution, message
  - HealthResponse: status, database
  - ErrorResponse: error, message, fields

# Domain Types

One type per table, plus the joined and aggregated shapes the pages need:

  - Alumni, Degree, Employment, Membership, Campaign, Contribution
  - ContributionDetail: a gift with its campaign name
  - ContributionListing: a gift with donor and campaign names
  - CampaignSummary: a campaign with the amount raised
  - EmployerSummary: alumni count per employer and industry
  - SummaryStats: dashboard totals
  - AlumniProfile: an alumni with every related list

Nullable columns are pointers and are omitted from JSON when empty.

# Constants

	MailingListYes = "Yes"
	MailingListNo  = "No"

	CampaignActive = "Active"
	CampaignClosed = "Closed"
*/
package models

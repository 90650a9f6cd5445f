package googleads

import "fmt"

const campaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, ` +
	`campaign_budget.amount_micros, campaign.start_date, campaign.end_date ` +
	`FROM campaign WHERE campaign.status != 'REMOVED' ORDER BY campaign.name ASC`

const accessibleAccountsQuery = `SELECT customer_client.id, customer_client.descriptive_name, ` +
	`customer_client.currency_code, customer_client.manager ` +
	`FROM customer_client WHERE customer_client.status = 'ENABLED'`

func dailyMetricsQuery(startDate, endDate string) string {
	return fmt.Sprintf(`SELECT segments.date, metrics.impressions, metrics.clicks, metrics.cost_micros, `+
		`metrics.conversions, metrics.ctr, metrics.average_cpc, metrics.conversions_value `+
		`FROM customer WHERE segments.date BETWEEN '%s' AND '%s' ORDER BY segments.date ASC`, startDate, endDate)
}

func campaignMetricsQuery(startDate, endDate string) string {
	return fmt.Sprintf(`SELECT campaign.id, campaign.name, segments.date, metrics.impressions, metrics.clicks, `+
		`metrics.cost_micros, metrics.conversions, metrics.ctr, metrics.average_cpc, metrics.search_impression_share `+
		`FROM campaign WHERE segments.date BETWEEN '%s' AND '%s' AND campaign.status != 'REMOVED' `+
		`ORDER BY segments.date ASC`, startDate, endDate)
}

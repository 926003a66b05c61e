package constants

const (
	MonthlyExpenseSummary = `
	SELECT to_char(created_at, 'YYYY-MM') AS month,
	       account,
	       SUM(quantity) AS total,
	       COUNT(*) AS count
	FROM expenses
	WHERE user_id = $1
	GROUP BY month, account
	ORDER BY month DESC, account ASC
	`
)

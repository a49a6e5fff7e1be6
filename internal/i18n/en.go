package i18n

var en = map[string]string{
	"app.title":        "Household expenses",
	"app.nav_overview": "Overview",
	"app.nav_person":   "Person detail",
	"app.nav_file":     "File analysis",
	"app.reload":       "Reload data",

	"common.all":                      "All",
	"common.amount":                   "Amount",
	"common.average":                  "Average",
	"common.category":                 "Category",
	"common.count":                    "Count",
	"common.cumulative_expenses_euro": "Cumulative expenses (€)",
	"common.date":                     "Date",
	"common.expenses_euro":            "Expenses (€)",
	"common.filters":                  "Filters",
	"common.max":                      "Max",
	"common.month":                    "Month",
	"common.notes":                    "Notes",
	"common.person":                   "Person",
	"common.select_category":          "Category",
	"common.select_month":             "Month",
	"common.select_person":            "Person",
	"common.select_year":              "Year",
	"common.apply":                    "Apply",
	"common.total":                    "Total",
	"common.total_expenses":           "Total expenses",
	"common.transactions":             "Transactions",
	"common.file":                     "File",
	"common.row":                      "Row",
	"common.reason":                   "Reason",
	"common.value":                    "Value",
	"common.share":                    "Share",
	"common.deviation":                "Deviation from average",
	"common.rows":                     "Rows",
	"common.status":                   "Status",
	"common.duplicates":               "Duplicates",

	"errors.could_not_load":    "Could not load {filename}",
	"errors.no_data":           "No data available. Add CSV exports to the data directory.",
	"errors.no_data_filters":   "No data for the selected filters.",
	"errors.no_files":          "No CSV file found in the data directory.",
	"errors.no_persons":        "No person found in the data.",
	"errors.pipeline":          "The data directory could not be read: {reason}",
	"errors.skipped_rows":      "Skipped rows",
	"errors.skipped_rows_hint": "{count} rows were ignored because their date or amount could not be read.",
	"errors.duplicates":        "{count} duplicate rows found in several exports were counted once.",
	"errors.file_failed":       "{filename} could not be read: {reason}",
	"errors.not_found":         "Page not found.",
	"errors.unknown_file":      "Unknown file {filename}.",

	"overview.title":                     "Expense overview",
	"overview.year_overview":             "Overview {year}",
	"overview.balance_summary":           "Balance",
	"overview.balance":                   "Balance: {text}",
	"overview.balanced":                  "Everyone spent the same amount.",
	"overview.owes":                      "{debtor} owes {creditor} {amount}",
	"overview.spent_more":                "{person} spent {amount} more than the average",
	"overview.spent_less":                "{person} spent {amount} less than the average",
	"overview.monthly_expenses":          "Monthly expenses",
	"overview.total_per_month":           "Total per month",
	"overview.expenses_per_person_month": "Expenses per person and month",
	"overview.cumulative_over_time":      "Cumulative expenses over time",
	"overview.cumulative_per_person":     "Cumulative expenses per person",
	"overview.person_cumulative":         "{person} cumulative",
	"overview.distribution_by_category":  "Distribution by category",
	"overview.expenses_by_category":      "Expenses by category",
	"overview.detailed_monthly":          "Detailed monthly view",
	"overview.month_total":               "Total for {month}",
	"overview.month_balance":             "Balance for {month}",
	"overview.expense_details":           "Expense details",

	"person.title":                     "Person detail",
	"person.expenses_year":             "{person}: expenses in {year}",
	"person.num_transactions":          "Number of transactions",
	"person.avg_per_transaction":       "Average per transaction",
	"person.comparison":                "Comparison with the others",
	"person.total_by_person":           "Total by person in {year}",
	"person.monthly_breakdown":         "Monthly breakdown",
	"person.monthly_expenses":          "Monthly expenses of {person}",
	"person.expenses_by_category":      "Expenses by category",
	"person.category_distribution":     "Category distribution",
	"person.category_evolution":        "Category evolution",
	"person.expenses_by_category_time": "Expenses of {person} by category over time",
	"person.top_expenses":              "Top 10 expenses",
	"person.all_transactions":          "All transactions",

	"file.title":                  "File analysis",
	"file.file_selection":         "File selection",
	"file.select_file":            "Select a file",
	"file.analysis":               "Analysis of {filename}",
	"file.date_range":             "From {start} to {end}",
	"file.summary":                "Summary",
	"file.balance":                "Balance: {text}",
	"file.balanced":               "Everyone spent the same amount.",
	"file.owes":                   "{debtor} owes {creditor} {amount}",
	"file.by_person":              "By person",
	"file.total_by_person":        "Total by person",
	"file.expenses_per_person":    "Expenses per person",
	"file.by_category":            "By category",
	"file.expenses_by_category":   "Expenses by category",
	"file.category_distribution":  "Category distribution",
	"file.category_per_person":    "Categories per person",
	"file.expenses_by_cat_person": "Expenses by category and person",
	"file.expenses_over_time":     "Expenses over time",
	"file.daily_expenses":         "Daily expenses",
	"file.cumulative_expenses":    "Cumulative expenses",
	"file.cumulative_per_person":  "Cumulative expenses per person",
	"file.top_expenses":           "Top expenses",
	"file.top_expenses_slider":    "Number of expenses",
	"file.all_transactions":       "All transactions",
	"file.filter_by_category":     "Filter by category",
	"file.filter_by_person":       "Filter by person",
	"file.statistics":             "Statistics",

	"months.1":  "January",
	"months.2":  "February",
	"months.3":  "March",
	"months.4":  "April",
	"months.5":  "May",
	"months.6":  "June",
	"months.7":  "July",
	"months.8":  "August",
	"months.9":  "September",
	"months.10": "October",
	"months.11": "November",
	"months.12": "December",
}

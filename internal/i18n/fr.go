package i18n

var fr = map[string]string{
	"app.title":        "Dépenses du foyer",
	"app.nav_overview": "Vue d'ensemble",
	"app.nav_person":   "Détail par personne",
	"app.nav_file":     "Analyse de fichier",
	"app.reload":       "Recharger les données",

	"common.all":                      "Tous",
	"common.amount":                   "Montant",
	"common.average":                  "Moyenne",
	"common.category":                 "Catégorie",
	"common.count":                    "Nombre",
	"common.cumulative_expenses_euro": "Dépenses cumulées (€)",
	"common.date":                     "Date",
	"common.expenses_euro":            "Dépenses (€)",
	"common.filters":                  "Filtres",
	"common.max":                      "Max",
	"common.month":                    "Mois",
	"common.notes":                    "Notes",
	"common.person":                   "Personne",
	"common.select_category":          "Catégorie",
	"common.select_month":             "Mois",
	"common.select_person":            "Personne",
	"common.select_year":              "Année",
	"common.apply":                    "Appliquer",
	"common.total":                    "Total",
	"common.total_expenses":           "Dépenses totales",
	"common.transactions":             "Transactions",
	"common.file":                     "Fichier",
	"common.row":                      "Ligne",
	"common.reason":                   "Raison",
	"common.value":                    "Valeur",
	"common.share":                    "Part",
	"common.deviation":                "Écart à la moyenne",
	"common.rows":                     "Lignes",
	"common.status":                   "État",
	"common.duplicates":               "Doublons",

	"errors.could_not_load":    "Impossible de charger {filename}",
	"errors.no_data":           "Aucune donnée disponible. Ajoutez des exports CSV dans le dossier de données.",
	"errors.no_data_filters":   "Aucune donnée pour les filtres sélectionnés.",
	"errors.no_files":          "Aucun fichier CSV trouvé dans le dossier de données.",
	"errors.no_persons":        "Aucune personne trouvée dans les données.",
	"errors.pipeline":          "Le dossier de données n'a pas pu être lu : {reason}",
	"errors.skipped_rows":      "Lignes ignorées",
	"errors.skipped_rows_hint": "{count} lignes ont été ignorées car leur date ou leur montant est illisible.",
	"errors.duplicates":        "{count} lignes en double présentes dans plusieurs exports ont été comptées une seule fois.",
	"errors.file_failed":       "{filename} n'a pas pu être lu : {reason}",
	"errors.not_found":         "Page introuvable.",
	"errors.unknown_file":      "Fichier inconnu : {filename}.",

	"overview.title":                     "Vue d'ensemble des dépenses",
	"overview.year_overview":             "Aperçu {year}",
	"overview.balance_summary":           "Équilibre",
	"overview.balance":                   "Équilibre : {text}",
	"overview.balanced":                  "Tout le monde a dépensé le même montant.",
	"overview.owes":                      "{debtor} doit {amount} à {creditor}",
	"overview.spent_more":                "{person} a dépensé {amount} de plus que la moyenne",
	"overview.spent_less":                "{person} a dépensé {amount} de moins que la moyenne",
	"overview.monthly_expenses":          "Dépenses mensuelles",
	"overview.total_per_month":           "Total par mois",
	"overview.expenses_per_person_month": "Dépenses par personne et par mois",
	"overview.cumulative_over_time":      "Dépenses cumulées dans le temps",
	"overview.cumulative_per_person":     "Dépenses cumulées par personne",
	"overview.person_cumulative":         "{person} cumulé",
	"overview.distribution_by_category":  "Répartition par catégorie",
	"overview.expenses_by_category":      "Dépenses par catégorie",
	"overview.detailed_monthly":          "Vue mensuelle détaillée",
	"overview.month_total":               "Total pour {month}",
	"overview.month_balance":             "Équilibre pour {month}",
	"overview.expense_details":           "Détail des dépenses",

	"person.title":                     "Détail par personne",
	"person.expenses_year":             "{person} : dépenses en {year}",
	"person.num_transactions":          "Nombre de transactions",
	"person.avg_per_transaction":       "Moyenne par transaction",
	"person.comparison":                "Comparaison avec les autres",
	"person.total_by_person":           "Total par personne en {year}",
	"person.monthly_breakdown":         "Répartition mensuelle",
	"person.monthly_expenses":          "Dépenses mensuelles de {person}",
	"person.expenses_by_category":      "Dépenses par catégorie",
	"person.category_distribution":     "Répartition par catégorie",
	"person.category_evolution":        "Évolution des catégories",
	"person.expenses_by_category_time": "Dépenses de {person} par catégorie dans le temps",
	"person.top_expenses":              "10 plus grosses dépenses",
	"person.all_transactions":          "Toutes les transactions",

	"file.title":                  "Analyse de fichier",
	"file.file_selection":         "Choix du fichier",
	"file.select_file":            "Choisir un fichier",
	"file.analysis":               "Analyse de {filename}",
	"file.date_range":             "Du {start} au {end}",
	"file.summary":                "Résumé",
	"file.balance":                "Équilibre : {text}",
	"file.balanced":               "Tout le monde a dépensé le même montant.",
	"file.owes":                   "{debtor} doit {amount} à {creditor}",
	"file.by_person":              "Par personne",
	"file.total_by_person":        "Total par personne",
	"file.expenses_per_person":    "Dépenses par personne",
	"file.by_category":            "Par catégorie",
	"file.expenses_by_category":   "Dépenses par catégorie",
	"file.category_distribution":  "Répartition par catégorie",
	"file.category_per_person":    "Catégories par personne",
	"file.expenses_by_cat_person": "Dépenses par catégorie et par personne",
	"file.expenses_over_time":     "Dépenses dans le temps",
	"file.daily_expenses":         "Dépenses quotidiennes",
	"file.cumulative_expenses":    "Dépenses cumulées",
	"file.cumulative_per_person":  "Dépenses cumulées par personne",
	"file.top_expenses":           "Plus grosses dépenses",
	"file.top_expenses_slider":    "Nombre de dépenses",
	"file.all_transactions":       "Toutes les transactions",
	"file.filter_by_category":     "Filtrer par catégorie",
	"file.filter_by_person":       "Filtrer par personne",
	"file.statistics":             "Statistiques",

	"months.1":  "Janvier",
	"months.2":  "Février",
	"months.3":  "Mars",
	"months.4":  "Avril",
	"months.5":  "Mai",
	"months.6":  "Juin",
	"months.7":  "Juillet",
	"months.8":  "Août",
	"months.9":  "Septembre",
	"months.10": "Octobre",
	"months.11": "Novembre",
	"months.12": "Décembre",
}

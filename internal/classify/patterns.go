package classify

import "regexp"

// Folder keys route categories into the output tree. FolderKeyVersion files
// land directly in the version folder instead of a category subfolder.
const (
	FolderKeyITC     = "itc"
	FolderKeyGSTR3B  = "gstr3b"
	FolderKeySales   = "sales"
	FolderKeyVersion = "version"
)

// Category names as they appear in completeness analysis and reports.
const (
	CategoryGSTR2BReco   = "GSTR-2B Reco"
	CategoryIMSReco      = "IMS Reco"
	CategoryGSTR3BExport = "GSTR-3B Export"
	CategorySales        = "Sales"
	CategorySalesReco    = "Sales Reco"
	CategoryAnnualReport = "Annual Report"
)

// Category describes one recognized document type.
type Category struct {
	Name      string
	FolderKey string
	// Repeatable categories may hold several files per client without
	// counting as duplicates (monthly GSTR-3B filings).
	Repeatable bool
}

// Categories returns the expected category set in its canonical order.
// Folder creation and report output follow this order so runs are
// reproducible.
func Categories() []Category {
	return []Category{
		{Name: CategoryGSTR2BReco, FolderKey: FolderKeyITC},
		{Name: CategoryIMSReco, FolderKey: FolderKeyITC},
		{Name: CategoryGSTR3BExport, FolderKey: FolderKeyGSTR3B, Repeatable: true},
		{Name: CategorySales, FolderKey: FolderKeySales},
		{Name: CategorySalesReco, FolderKey: FolderKeySales},
		{Name: CategoryAnnualReport, FolderKey: FolderKeyVersion},
	}
}

// CategoryByName returns the category definition for name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Rule is one entry of the ordered pattern bank. Slots name the capture
// groups in order; the slots "client" and "jurisdiction" feed the registry,
// everything else lands in the metadata map.
type Rule struct {
	Name      string
	Category  string
	FolderKey string
	Slots     []string
	Example   string
	pattern   *regexp.Regexp
}

// Bank returns the pattern bank in match order. First match wins.
func Bank() []Rule {
	return bank
}

var bank = []Rule{
	{
		Name:      "GSTR-2B-Reco",
		Category:  CategoryGSTR2BReco,
		FolderKey: FolderKeyITC,
		Slots:     []string{"client", "jurisdiction", "period"},
		Example:   "GSTR-2B-Reco-ClientName-State-Period.xlsx",
		pattern:   regexp.MustCompile(`(?i)^GSTR-2B-Reco-([^-]+)-([^-]+)-(.+)\.xlsx?$`),
	},
	{
		Name:      "ImsReco",
		Category:  CategoryIMSReco,
		FolderKey: FolderKeyITC,
		Slots:     []string{"client", "jurisdiction", "date"},
		Example:   "ImsReco-ClientName-State-DDMMYYYY.xlsx",
		pattern:   regexp.MustCompile(`(?i)^ImsReco-([^-]+)-([^-]+)-(\d{8})\.xlsx?$`),
	},
	{
		Name:      "GSTR3B",
		Category:  CategoryGSTR3BExport,
		FolderKey: FolderKeyGSTR3B,
		Slots:     []string{"client", "jurisdiction", "month"},
		Example:   "GSTR3B-ClientName-State-Month.xlsx",
		pattern:   regexp.MustCompile(`(?i)^GSTR3B-([^-]+)-([^-]+)-([^-]+)\.xlsx?$`),
	},
	{
		Name:      "Sales",
		Category:  CategorySales,
		FolderKey: FolderKeySales,
		Slots:     []string{"client", "jurisdiction", "start_month", "end_month"},
		Example:   "Sales-ClientName-State-StartMonth-EndMonth.xlsx",
		pattern:   regexp.MustCompile(`(?i)^Sales-([^-]+)-([^-]+)-([^-]+)-([^-]+)\.xlsx?$`),
	},
	{
		Name:      "SalesReco",
		Category:  CategorySalesReco,
		FolderKey: FolderKeySales,
		Slots:     []string{"client", "jurisdiction", "period"},
		Example:   "SalesReco-ClientName-State-Period.xlsx",
		pattern:   regexp.MustCompile(`(?i)^SalesReco-([^-]+)-([^-]+)-(.+)\.xlsx?$`),
	},
	{
		Name:      "AnnualReport",
		Category:  CategoryAnnualReport,
		FolderKey: FolderKeyVersion,
		Slots:     []string{"client", "jurisdiction", "year"},
		Example:   "AnnualReport-ClientName-State-Year.xlsx",
		pattern:   regexp.MustCompile(`(?i)^AnnualReport-([^-]+)-([^-]+)-(.+)\.xlsx?$`),
	},
}

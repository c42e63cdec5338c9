package report

import (
	"strings"

	"gstsort/internal/classify"
	"gstsort/internal/record"
	"gstsort/internal/registry"
	"gstsort/internal/topology"
)

// Report types understood by the link-value assembler.
const (
	ReportITC   = "ITC"
	ReportSales = "Sales"
)

// LinkValues flattens a client's organized layout into the key/value pairs
// the external spreadsheet renderer substitutes into hyperlink formulas.
// Keys for absent files are present with empty values so templates always
// resolve. Filenames are emitted without their extension.
func LinkValues(client *registry.ClientRecord, folders *topology.FolderMap, reportType string) map[string]string {
	values := make(map[string]string)
	switch reportType {
	case ReportITC:
		gstr3b, _ := folders.CategoryPath(classify.FolderKeyGSTR3B)
		itc, _ := folders.CategoryPath(classify.FolderKeyITC)
		values["gstr3bFolder"] = gstr3b
		setLink(values, "annual", client, classify.CategoryAnnualReport, folders.Version)
		setLink(values, "gstr2b", client, classify.CategoryGSTR2BReco, itc)
		setLink(values, "ims", client, classify.CategoryIMSReco, itc)
	case ReportSales:
		sales, _ := folders.CategoryPath(classify.FolderKeySales)
		setLink(values, "sales", client, classify.CategorySales, sales)
		setLink(values, "annual", client, classify.CategoryAnnualReport, folders.Version)
		setLink(values, "salesReco", client, classify.CategorySalesReco, sales)
	}
	return values
}

// setLink fills "<prefix>Folder" and "<prefix>Filename" from the first file
// in the category, or empty strings when the client has none.
func setLink(values map[string]string, prefix string, client *registry.ClientRecord, category, folder string) {
	files := client.CategoryFiles(category)
	if len(files) == 0 {
		values[prefix+"Folder"] = ""
		values[prefix+"Filename"] = ""
		return
	}
	values[prefix+"Folder"] = folder
	values[prefix+"Filename"] = stemOf(files[0])
}

func stemOf(file *record.FileRecord) string {
	name := file.DisplayName()
	if idx := strings.LastIndex(name, "."); idx > 0 {
		return name[:idx]
	}
	return name
}

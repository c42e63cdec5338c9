package report

import (
	"time"

	"gstsort/internal/materialize"
	"gstsort/internal/record"
	"gstsort/internal/registry"
	"gstsort/internal/topology"
)

// ClientStatusRow is one client's line in the run summary.
type ClientStatusRow struct {
	Client       string
	Jurisdiction string
	Code         string
	Files        int
	Size         int64
	Completeness float64
	Status       string
}

// FileMappingRow records where one file landed.
type FileMappingRow struct {
	Client        string
	Filename      string
	SanitizedName string
	Category      string
	Destination   string
	Status        materialize.Status
}

// ErrorRow records one failed placement.
type ErrorRow struct {
	Client   string
	Filename string
	Detail   string
}

// RunSummary aggregates everything a run produced, for console rendering
// and the run log.
type RunSummary struct {
	Mode       topology.Mode
	Timestamp  time.Time
	RunFolder  string
	Clients    []ClientStatusRow
	Files      []FileMappingRow
	Errors     []ErrorRow
	Variations []record.Variation

	Copied  int
	Skipped int
	Failed  int
}

// AddClient appends a client's status row and its placement results.
func (s *RunSummary) AddClient(client *registry.ClientRecord, results []materialize.Result) {
	s.Clients = append(s.Clients, ClientStatusRow{
		Client:       client.Client,
		Jurisdiction: client.Jurisdiction,
		Code:         client.Code,
		Files:        client.FileCount,
		Size:         client.TotalSize,
		Completeness: client.Completeness,
		Status:       client.Status,
	})
	for _, result := range results {
		s.Files = append(s.Files, FileMappingRow{
			Client:        client.Key,
			Filename:      result.Filename,
			SanitizedName: result.SanitizedName,
			Category:      result.Category,
			Destination:   result.Destination,
			Status:        result.Status,
		})
		switch result.Status {
		case materialize.StatusSuccess:
			s.Copied++
		case materialize.StatusSkipped:
			s.Skipped++
		case materialize.StatusFailed:
			s.Failed++
			detail := ""
			if result.Err != nil {
				detail = result.Err.Error()
			}
			s.Errors = append(s.Errors, ErrorRow{
				Client:   client.Key,
				Filename: result.Filename,
				Detail:   detail,
			})
		}
	}
}

// AddError records a client-level failure that produced no placements.
func (s *RunSummary) AddError(clientKey, detail string) {
	s.Errors = append(s.Errors, ErrorRow{Client: clientKey, Detail: detail})
}
